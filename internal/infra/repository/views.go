package repository

import (
	"context"

	"chershare/internal/infra"
	"chershare/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingViewRepository struct {
	db *pgxpool.Pool
}

func NewBookingViewRepository(db *pgxpool.Pool) *BookingViewRepository {
	return &BookingViewRepository{db: db}
}

func (r *BookingViewRepository) Insert(ctx context.Context, view queries.BookingView) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO booking_views (resource_id, booking_id, booker_id, begin_ms, end_ms, price, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, now())`,
		view.ResourceID, view.BookingID, view.BookerID, view.BeginMs, view.EndMs, view.Price,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert booking view", err)
	}
	return nil
}

func (r *BookingViewRepository) Delete(ctx context.Context, resourceID string, bookingID uint64) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM booking_views WHERE resource_id = $1 AND booking_id = $2`,
		resourceID, bookingID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking view", err)
	}
	return nil
}

func (r *BookingViewRepository) ListByResource(ctx context.Context, resourceID string) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT resource_id, booking_id, booker_id, begin_ms, end_ms, price, created_at
		 FROM booking_views
		 WHERE resource_id = $1
		 ORDER BY begin_ms`,
		resourceID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking views", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		var v queries.BookingView
		if err := rows.Scan(&v.ResourceID, &v.BookingID, &v.BookerID, &v.BeginMs, &v.EndMs, &v.Price, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking view", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking views", err)
	}
	return views, nil
}

type ResourceViewRepository struct {
	db *pgxpool.Pool
}

func NewResourceViewRepository(db *pgxpool.Pool) *ResourceViewRepository {
	return &ResourceViewRepository{db: db}
}

func (r *ResourceViewRepository) Upsert(ctx context.Context, view queries.ResourceView) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO resource_views (name, account_id, owner, title, created_at)
		 VALUES ($1, $2, $3, $4, now())
		 ON CONFLICT (name) DO UPDATE
		 SET account_id = EXCLUDED.account_id, owner = EXCLUDED.owner, title = EXCLUDED.title`,
		view.Name, view.AccountID, view.Owner, view.Title,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert resource view", err)
	}
	return nil
}

func (r *ResourceViewRepository) FindByName(ctx context.Context, name string) (*queries.ResourceView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT name, account_id, owner, title, created_at
		 FROM resource_views WHERE name = $1`,
		name,
	)
	var v queries.ResourceView
	if err := row.Scan(&v.Name, &v.AccountID, &v.Owner, &v.Title, &v.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("resource view not found", err)
		}
		return nil, infra.WrapRepoErr("failed to find resource view", err)
	}
	return &v, nil
}
