// Package memory provides an in-process implementation of every repository
// interface. It stands in for the real database in demo deployments and in
// tests, and can simulate remote-gateway latency.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/contempsico/portal-be/types"
)

// Store keeps one table per entity behind a single mutex. Tables are
// slices, not maps, so list order is stable: newest-first for content
// entities, matching how the portal displays them.
type Store struct {
	mu      sync.RWMutex
	latency time.Duration

	users         []*types.User
	announcements []*types.Announcement
	events        []*types.CalendarEvent
	tasks         []*types.Task
	trainings     []*types.TrainingMaterial
	regulations   []*types.RegulationSection
	links         []*types.UsefulLink
	services      []*types.ServicePrice
	psychologists []*types.Psychologist
}

// NewStore creates an empty store. A non-zero latency is applied to every
// operation to mimic a remote gateway.
func NewStore(latency time.Duration) *Store {
	return &Store{latency: latency}
}

// wait simulates network latency, honoring context cancellation.
func (s *Store) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	select {
	case <-time.After(s.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
