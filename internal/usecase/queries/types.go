package queries

import (
	"context"
	"time"
)

// Read models (DTO for read side). These rows exist for external
// consumers; the in-memory aggregates stay authoritative.
type BookingView struct {
	BookingID  uint64    `json:"booking_id"`
	ResourceID string    `json:"resource_id"`
	BookerID   string    `json:"booker_id"`
	BeginMs    int64     `json:"begin_ms"`
	EndMs      int64     `json:"end_ms"`
	Price      uint64    `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
}

type ResourceView struct {
	Name      string    `json:"name"`
	AccountID string    `json:"account_id"`
	Owner     string    `json:"owner"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type BookingViewRepo interface {
	Insert(ctx context.Context, view BookingView) error
	Delete(ctx context.Context, resourceID string, bookingID uint64) error
	ListByResource(ctx context.Context, resourceID string) ([]*BookingView, error)
}

type ResourceViewRepo interface {
	Upsert(ctx context.Context, view ResourceView) error
	FindByName(ctx context.Context, name string) (*ResourceView, error)
}
