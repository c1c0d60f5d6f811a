// Package latency simulates backend round-trip time for domain services.
package latency

import (
	"context"
	"time"

	"github.com/sensorfactory/nexus/internal/config"
)

// Simulator delays reads and writes by fixed durations.
type Simulator struct {
	read  time.Duration
	write time.Duration
}

// New creates a Simulator from config.
func New(cfg config.LatencyConfig) *Simulator {
	return &Simulator{read: cfg.Read, write: cfg.Write}
}

// None returns a Simulator that never waits.
func None() *Simulator { return &Simulator{} }

// Read waits the read delay.
func (s *Simulator) Read(ctx context.Context) error { return Wait(ctx, s.read) }

// Write waits the write delay.
func (s *Simulator) Write(ctx context.Context) error { return Wait(ctx, s.write) }

// Wait blocks for d or until ctx is done, whichever comes first.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
