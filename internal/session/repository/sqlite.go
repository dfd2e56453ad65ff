package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"banking-console/internal/security"
	"banking-console/internal/session/domain"
)

// SQLiteTier persists the session across process restarts. The payload is
// sealed before it touches disk so the bearer token is never stored in the
// clear. A single-row table keeps the tier a one-slot store.
type SQLiteTier struct {
	conn   *sql.DB
	keeper *security.Keeper
}

func NewSQLiteTier(conn *sql.DB, keeper *security.Keeper) *SQLiteTier {
	return &SQLiteTier{conn: conn, keeper: keeper}
}

func (t *SQLiteTier) Load(ctx context.Context) (*domain.Session, error) {
	var sealed []byte
	row := t.conn.QueryRowContext(ctx, `SELECT payload FROM session WHERE slot = 1`)
	if err := row.Scan(&sealed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading session: %w", err)
	}
	plaintext, err := t.keeper.Open(sealed)
	if err != nil {
		return nil, fmt.Errorf("opening session payload: %w", err)
	}
	var s domain.Session
	if err := json.Unmarshal(plaintext, &s); err != nil {
		return nil, fmt.Errorf("decoding session payload: %w", err)
	}
	return &s, nil
}

func (t *SQLiteTier) Save(ctx context.Context, s *domain.Session) error {
	plaintext, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	sealed, err := t.keeper.Seal(plaintext)
	if err != nil {
		return fmt.Errorf("sealing session: %w", err)
	}
	_, err = t.conn.ExecContext(ctx, `
		INSERT INTO session (slot, payload, updated_at) VALUES (1, ?, ?)
		ON CONFLICT (slot) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		sealed, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

func (t *SQLiteTier) Clear(ctx context.Context) error {
	if _, err := t.conn.ExecContext(ctx, `DELETE FROM session WHERE slot = 1`); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}
