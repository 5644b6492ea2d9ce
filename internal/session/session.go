// Package session holds the state of one pass through the interaction loop:
// the chosen filters, the filtered dataset and the pager over it. A new
// Session is created for every pass so nothing leaks between them.
package session

import (
	"context"
	"fmt"

	"github.com/specialistvlad/bikeshare/internal/ctxlog"
	"github.com/specialistvlad/bikeshare/internal/filter"
	"github.com/specialistvlad/bikeshare/internal/pager"
	"github.com/specialistvlad/bikeshare/internal/trip"
)

// DatasetLoader loads the full dataset of a city.
type DatasetLoader interface {
	Load(ctx context.Context, city string) (*trip.Dataset, error)
}

// Session is one iteration of the interaction loop.
type Session struct {
	ID       int
	Criteria filter.Criteria

	dataset *trip.Dataset
	pager   *pager.Pager
}

// New starts a session for the given criteria.
func New(id int, criteria filter.Criteria) *Session {
	return &Session{ID: id, Criteria: criteria}
}

// Load reads the city's dataset and applies the session's filters.
func (s *Session) Load(ctx context.Context, loader DatasetLoader) error {
	logger := ctxlog.FromContext(ctx).With("session", s.ID)

	full, err := loader.Load(ctx, s.Criteria.City)
	if err != nil {
		return fmt.Errorf("session %d: %w", s.ID, err)
	}
	s.dataset = filter.Apply(ctx, full, s.Criteria)
	s.pager = pager.New(s.dataset)

	logger.Info("Session dataset ready.", "city", s.Criteria.City, "month", s.Criteria.Month, "day", s.Criteria.Day, "trips", s.dataset.Len())
	return nil
}

// Dataset returns the filtered dataset, or nil before Load succeeds.
func (s *Session) Dataset() *trip.Dataset {
	return s.dataset
}

// Pager returns the session's pager, or nil before Load succeeds.
func (s *Session) Pager() *pager.Pager {
	return s.pager
}
