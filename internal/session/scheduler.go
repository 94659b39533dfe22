package session

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Scheduler owns the tick stream of a mounted game.
//
// Every Start hands out a new epoch and every tick message carries the
// epoch it was scheduled under. After Stop, or after a newer Start, ticks
// from the old stream fail Accept and are dropped without rescheduling,
// so a torn-down game can never be stepped again.
type Scheduler struct {
	interval time.Duration
	epoch    uint64
	running  bool
	logger   *log.Logger
}

// NewScheduler creates a stopped scheduler ticking tickRate times a second.
func NewScheduler(tickRate int, logger *log.Logger) *Scheduler {
	if tickRate <= 0 {
		tickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Scheduler{
		interval: time.Second / time.Duration(tickRate),
		logger:   logger,
	}
}

// Start begins a new tick stream and returns its epoch.
func (s *Scheduler) Start() uint64 {
	s.epoch++
	s.running = true
	s.logger.Debug("scheduler started", "epoch", s.epoch, "interval", s.interval)
	return s.epoch
}

// Stop invalidates the current tick stream.
func (s *Scheduler) Stop() {
	if !s.running {
		return
	}
	s.epoch++
	s.running = false
	s.logger.Debug("scheduler stopped", "epoch", s.epoch)
}

// Accept reports whether a tick scheduled under epoch may still be applied.
func (s *Scheduler) Accept(epoch uint64) bool {
	return s.running && epoch == s.epoch
}

// Running reports whether a tick stream is active.
func (s *Scheduler) Running() bool {
	return s.running
}

// Epoch returns the current epoch.
func (s *Scheduler) Epoch() uint64 {
	return s.epoch
}

// Interval returns the time between ticks.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}
