package response

import (
	"time"

	"chershare/internal/usecase/commands"
	"chershare/internal/usecase/queries"
)

type BookingResponse struct {
	BookingID uint64 `json:"bookingId"`
	Price     uint64 `json:"price"`
}

type CancellationResponse struct {
	BookingID uint64 `json:"bookingId"`
	Refund    uint64 `json:"refund"`
}

type QuoteResponse struct {
	Price uint64 `json:"price"`
}

type BookingListItem struct {
	BookingID  uint64    `json:"bookingId"`
	ResourceID string    `json:"resourceId"`
	BookerID   string    `json:"bookerId"`
	BeginMs    int64     `json:"beginMs"`
	EndMs      int64     `json:"endMs"`
	Price      uint64    `json:"price"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromBookResult(r *commands.BookResult) *BookingResponse {
	return &BookingResponse{
		BookingID: r.BookingID,
		Price:     uint64(r.Price),
	}
}

func FromCancelResult(r *commands.CancelResult) *CancellationResponse {
	return &CancellationResponse{
		BookingID: r.BookingID,
		Refund:    uint64(r.Refund),
	}
}

func FromBookingView(v *queries.BookingView) *BookingListItem {
	return &BookingListItem{
		BookingID:  v.BookingID,
		ResourceID: v.ResourceID,
		BookerID:   v.BookerID,
		BeginMs:    v.BeginMs,
		EndMs:      v.EndMs,
		Price:      v.Price,
		CreatedAt:  v.CreatedAt,
	}
}
