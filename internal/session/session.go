package session

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Session is one mount of a game, from menu selection until the player
// leaves it.
type Session struct {
	ID        ID
	GameID    string
	Mode      Mode
	StartedAt time.Time

	logger   *log.Logger
	done     chan struct{}
	doneOnce sync.Once
}

// New starts a session for gameID. A nil logger discards output.
func New(gameID string, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Session{
		ID:        NewID(),
		GameID:    gameID,
		Mode:      ModeFor(gameID),
		StartedAt: time.Now(),
		logger:    logger,
		done:      make(chan struct{}),
	}
	s.logger.Info("session started", "session", s.ID.Short(), "game", gameID, "mode", s.Mode)
	return s
}

// End marks the session as finished. Safe to call more than once.
func (s *Session) End() {
	s.doneOnce.Do(func() {
		close(s.done)
		s.logger.Info("session ended",
			"session", s.ID.Short(),
			"game", s.GameID,
			"duration", s.Elapsed().Round(time.Second),
		)
	})
}

// Ended reports whether End has been called.
func (s *Session) Ended() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Elapsed returns how long the session has been running.
func (s *Session) Elapsed() time.Duration {
	return time.Since(s.StartedAt)
}
