package event

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type EventRepo interface {
	// Store persists a new event and returns its generated id.
	Store(ctx context.Context, event Event) (int64, error)
	GetAll(ctx context.Context) ([]Event, error)
	GetById(ctx context.Context, id int64) (Event, error)
	Delete(ctx context.Context, id int64) error
}

type EventRepoImpl struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) *EventRepoImpl {
	return &EventRepoImpl{db: db}
}

func (r *EventRepoImpl) Store(ctx context.Context, event Event) (int64, error) {
	query := `INSERT INTO events (title, start_time, end_time) VALUES ($1, $2, $3) RETURNING id`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return 0, err
	}
	defer stmt.Close()

	var id int64
	if err := stmt.QueryRowContext(ctx, event.Title, event.Start, event.End).Scan(&id); err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return 0, err
	}

	return id, nil
}

func (r *EventRepoImpl) GetAll(ctx context.Context) ([]Event, error) {
	// No ORDER BY: listing order is whatever the engine returns and callers
	// must not rely on it.
	query := `SELECT id, title, start_time, end_time FROM events`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query events: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	events := make([]Event, 0, 10)
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Start, &e.End); err != nil {
			err := fmt.Errorf("could not scan row: %w", err)
			log.Error(err)
			return nil, err
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return events, nil
}

func (r *EventRepoImpl) GetById(ctx context.Context, id int64) (Event, error) {
	query := `SELECT id, title, start_time, end_time FROM events WHERE id = $1`

	var e Event
	err := r.db.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.Title, &e.Start, &e.End)
	if errors.Is(err, sql.ErrNoRows) {
		return Event{}, ErrNotFound
	}
	if err != nil {
		err := fmt.Errorf("could not query event %d: %w", id, err)
		log.Error(err)
		return Event{}, err
	}

	return e, nil
}

// Delete removes the event with the given id. Deleting an id that does not
// exist is not an error.
func (r *EventRepoImpl) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM events WHERE id = $1`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(ctx, id); err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return err
	}
	return nil
}
