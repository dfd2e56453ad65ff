// Package notify fans user-facing notifications out to registered sinks.
package notify

import (
	"sync"

	"github.com/google/uuid"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelDanger  Level = "danger"
)

type Notification struct {
	ID      string
	Message string
	Level   Level
}

// Service delivers notifications to every subscribed sink in subscription
// order.
type Service struct {
	mu    sync.Mutex
	sinks []func(Notification)
}

func NewService() *Service {
	return &Service{}
}

// Subscribe registers a sink for future notifications.
func (s *Service) Subscribe(fn func(Notification)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sinks = append(s.sinks, fn)
}

func (s *Service) Show(level Level, message string) {
	n := Notification{ID: uuid.NewString(), Message: message, Level: level}
	s.mu.Lock()
	sinks := make([]func(Notification), len(s.sinks))
	copy(sinks, s.sinks)
	s.mu.Unlock()
	for _, fn := range sinks {
		fn(n)
	}
}

func (s *Service) Success(message string) { s.Show(LevelSuccess, message) }
func (s *Service) Info(message string)    { s.Show(LevelInfo, message) }
func (s *Service) Warning(message string) { s.Show(LevelWarning, message) }
func (s *Service) Danger(message string)  { s.Show(LevelDanger, message) }
