package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"banking-console/internal/bankapi"
	"banking-console/internal/client/interceptors"
	"banking-console/internal/config"
	"banking-console/internal/db"
	dbmigrate "banking-console/internal/db/migrate"
	"banking-console/internal/guard"
	"banking-console/internal/logging"
	"banking-console/internal/notify"
	"banking-console/internal/platform/rbac"
	"banking-console/internal/security"
	"banking-console/internal/session"
	"banking-console/internal/session/repository"
	"banking-console/internal/telemetry/otel"
)

// App wires the console's services together for the lifetime of a command.
type App struct {
	Config   *config.Config
	Log      *slog.Logger
	Notifier *notify.Service
	Nav      *ConsoleNavigator
	Sessions *session.Store
	Roles    *rbac.Evaluator
	Guard    *guard.Guard
	API      *bankapi.Client

	closers []func(ctx context.Context) error
}

// storeTokenSource and storeInvalidator break the construction cycle
// between the session store and the interceptor chain: the chain is built
// before the store exists and resolves it lazily.
type storeTokenSource struct{ store **session.Store }

func (s storeTokenSource) Token() string {
	if *s.store == nil {
		return ""
	}
	return (*s.store).Token()
}

type storeInvalidator struct{ store **session.Store }

func (s storeInvalidator) Logout(ctx context.Context) {
	if *s.store != nil {
		(*s.store).Logout(ctx)
	}
}

// NewApp builds the full service graph from configuration.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	notifier := notify.NewService()
	notifier.Subscribe(renderNotification)
	nav := NewConsoleNavigator(log)

	stateDir, err := cfg.ResolveStateDir()
	if err != nil {
		return nil, err
	}
	app := &App{Config: cfg, Log: log, Notifier: notifier, Nav: nav}

	dbPath := filepath.Join(stateDir, "state.db")
	conn, err := db.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening state database: %w", err)
	}
	app.closers = append(app.closers, func(context.Context) error { return conn.Close() })
	if err := dbmigrate.Up(dbPath); err != nil {
		app.Close(ctx)
		return nil, err
	}

	keeper, err := security.NewKeeper(filepath.Join(stateDir, "state.key"))
	if err != nil {
		app.Close(ctx)
		return nil, err
	}

	providers, err := otel.NewProviders(ctx, cfg.OTLPEndpoint, "bank-console", cfg.OTLPInsecure)
	if err != nil {
		app.Close(ctx)
		return nil, fmt.Errorf("initializing telemetry: %w", err)
	}
	app.closers = append(app.closers, providers.Shutdown)

	durable := repository.NewSQLiteTier(conn, keeper)
	ephemeral := repository.NewMemoryTier()

	var pipeline http.RoundTripper = http.DefaultTransport
	pipeline = interceptors.NewAuthTransport(pipeline, storeTokenSource{store: &app.Sessions})
	pipeline = interceptors.NewTelemetryTransport(pipeline, providers.TracerProvider, providers.MeterProvider)
	pipeline = interceptors.NewFailureTransport(pipeline, storeInvalidator{store: &app.Sessions}, notifier, nav)

	app.API = bankapi.NewClient(cfg.APIBaseURL, pipeline, cfg.Timeout(), log)
	app.Sessions = session.NewStore(app.API, durable, ephemeral, nav, log)
	app.Roles = rbac.NewEvaluator(app.Sessions)
	app.Guard = guard.New(app.Sessions, app.Roles, notifier)

	app.Sessions.Restore(ctx)
	return app, nil
}

// Close releases the app's resources in reverse construction order.
func (a *App) Close(ctx context.Context) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			a.Log.Warn("shutdown step failed", "error", err)
		}
	}
	a.closers = nil
}

// Enter runs the route guard for the destination. On success the route
// becomes current; on refusal the guard's redirect is followed and false
// returned.
func (a *App) Enter(route guard.Route) bool {
	decision := a.Guard.CanActivate(route)
	if decision.Allowed {
		a.Nav.SetCurrent(route.Path)
		return true
	}
	a.Nav.Navigate(decision.RedirectTo)
	return false
}

// renderNotification prints a notification to the terminal.
func renderNotification(n notify.Notification) {
	fmt.Fprintf(os.Stderr, "[%s] %s\n", n.Level, n.Message)
}
