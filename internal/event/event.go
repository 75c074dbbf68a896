// Package event gives read-only access to the Paralympic Games records.
package event

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"paralympics-api/pkg/model"
)

// ErrNotFound is returned when no event has the requested id
var ErrNotFound = errors.New("event not found")

const selectEvent = `
    SELECT id, type, year,
           COALESCE(country, '') AS country,
           COALESCE(host, '') AS host,
           COALESCE(noc, '') AS noc,
           COALESCE(start_date, '') AS start_date,
           COALESCE(end_date, '') AS end_date,
           COALESCE(disabilities_included, '') AS disabilities_included,
           COALESCE(countries, 0) AS countries,
           COALESCE(events, 0) AS events,
           COALESCE(sports, 0) AS sports,
           COALESCE(participants_m, 0) AS participants_m,
           COALESCE(participants_f, 0) AS participants_f,
           COALESCE(participants, 0) AS participants,
           COALESCE(highlights, '') AS highlights,
           COALESCE(url, '') AS url
    FROM events`

// EventService handles event lookups
type EventService struct {
	db *sqlx.DB
}

// NewEventService creates a new event service
func NewEventService(db *sqlx.DB) *EventService {
	return &EventService{db: db}
}

// GetEvents returns all events ordered by id
func (s *EventService) GetEvents(ctx context.Context) ([]model.Event, error) {
	events := []model.Event{}
	if err := s.db.SelectContext(ctx, &events, selectEvent+" ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// GetEvent returns a single event by id
func (s *EventService) GetEvent(ctx context.Context, id int) (*model.Event, error) {
	var ev model.Event
	err := s.db.GetContext(ctx, &ev, s.db.Rebind(selectEvent+" WHERE id = ?"), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get event %d: %w", id, err)
	}
	return &ev, nil
}
