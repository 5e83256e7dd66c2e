// Package repository reads seed events from PostgreSQL.
// It uses pgx directly (no ORM).
package repository

import (
	"context"
	"fmt"

	"github.com/Shivanand-hulikatti/community-events/internal/model"
	"github.com/jackc/pgx/v5"
)

// Querier is the subset of *pgxpool.Pool the repository needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// EventRepository loads the seed list from the events table.
type EventRepository struct {
	db Querier
}

// NewEventRepository constructs an EventRepository.
func NewEventRepository(db Querier) *EventRepository {
	return &EventRepository{db: db}
}

// List returns all events ordered by id.
func (r *EventRepository) List(ctx context.Context) ([]model.Event, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, to_char(date, 'YYYY-MM-DD'), seats, category
		 FROM events
		 ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Date, &e.Seats, &e.Category); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}
