package repository

import (
	"context"

	"chershare/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EventJournal appends observability events for off-system indexers.
// Rows are never read back by the engine.
type EventJournal struct {
	db *pgxpool.Pool
}

func NewEventJournal(db *pgxpool.Pool) *EventJournal {
	return &EventJournal{db: db}
}

func (j *EventJournal) Append(ctx context.Context, kind string, payload []byte) error {
	_, err := j.db.Exec(ctx,
		`INSERT INTO event_journal (id, kind, payload, recorded_at)
		 VALUES ($1, $2, $3, now())`,
		uuid.New(), kind, payload,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append event", err)
	}
	return nil
}
