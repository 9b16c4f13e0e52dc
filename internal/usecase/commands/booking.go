package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"chershare/internal/domain/account"
	"chershare/internal/domain/booking"
	"chershare/internal/domain/pricing"
	"chershare/internal/domain/resource"
	"chershare/internal/events"
	"chershare/internal/pkg/clock"
	"chershare/internal/pkg/errs"
	"chershare/internal/platform"
	"chershare/internal/usecase/queries"
)

var (
	ErrResourceNotFound  = errs.New("resource not found")
	ErrInvalidInterval   = errs.New("invalid booking interval")
	ErrDurationTooShort  = errs.New("booking duration too short")
	ErrBookingCollision  = errs.New("booking collision")
	ErrInsufficientFunds = errs.New("insufficient attached funds")
	ErrBookingNotFound   = errs.New("booking not found")
	ErrCancelForbidden   = errs.New("cancellation forbidden")
	ErrPricingOverflow   = errs.New("pricing arithmetic overflow")
)

type BookParams struct {
	ResourceID    account.ID
	BeginMs       int64
	EndMs         int64
	AttachedFunds pricing.Amount
}

type BookResult struct {
	BookingID uint64
	Price     pricing.Amount
}

type CancelResult struct {
	BookingID uint64
	Refund    pricing.Amount
}

type BookingCommands interface {
	Book(ctx context.Context, caller account.ID, params BookParams) (*BookResult, error)
	Cancel(ctx context.Context, caller account.ID, resourceID account.ID, bookingID uint64) (*CancelResult, error)
}

type bookingCommandsImpl struct {
	registry *resource.Registry
	emitter  events.Emitter
	views    queries.BookingViewRepo
	treasury platform.Treasury
	clock    clock.Clock
}

func NewBookingCommands(
	registry *resource.Registry,
	emitter events.Emitter,
	views queries.BookingViewRepo,
	treasury platform.Treasury,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		registry: registry,
		emitter:  emitter,
		views:    views,
		treasury: treasury,
		clock:    clk,
	}
}

func (c *bookingCommandsImpl) Book(ctx context.Context, caller account.ID, params BookParams) (*BookResult, error) {
	res, err := c.registry.Get(params.ResourceID)
	if err != nil {
		return nil, errs.Mark(err, ErrResourceNotFound)
	}

	b, err := res.Book(caller, params.BeginMs, params.EndMs, params.AttachedFunds)
	if err != nil {
		return nil, markBookingErr(err)
	}

	c.emitter.Emit(ctx, events.BookingCreated{
		ID:         b.ID,
		ResourceID: params.ResourceID,
		BookerID:   caller,
		Start:      b.Interval.BeginMs,
		End:        b.Interval.EndMs,
		Price:      b.PriceCharged,
	})

	// The read model serves off-system indexers; a write failure must
	// not undo a committed booking.
	if viewErr := c.views.Insert(ctx, queries.BookingView{
		BookingID:  b.ID,
		ResourceID: params.ResourceID.String(),
		BookerID:   caller.String(),
		BeginMs:    b.Interval.BeginMs,
		EndMs:      b.Interval.EndMs,
		Price:      uint64(b.PriceCharged),
		CreatedAt:  time.Now(),
	}); viewErr != nil {
		slog.Warn("failed to insert booking view", "booking_id", b.ID, "error", viewErr)
	}

	return &BookResult{BookingID: b.ID, Price: b.PriceCharged}, nil
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, caller account.ID, resourceID account.ID, bookingID uint64) (*CancelResult, error) {
	res, err := c.registry.Get(resourceID)
	if err != nil {
		return nil, errs.Mark(err, ErrResourceNotFound)
	}

	b, refund, err := res.Cancel(caller, bookingID, c.clock.NowMs())
	if err != nil {
		return nil, markBookingErr(err)
	}

	if refund > 0 {
		if err := c.treasury.Transfer(ctx, caller, refund); err != nil {
			// The booking is already gone; surface the transfer fault
			// loudly rather than pretending the refund happened.
			slog.Error("refund transfer failed", "booking_id", bookingID, "error", err)
			return nil, errs.Wrap(err, "refund transfer failed")
		}
	}

	c.emitter.Emit(ctx, events.BookingCanceled{
		ID:         b.ID,
		ResourceID: resourceID,
		BookerID:   caller,
		Refund:     refund,
	})

	if viewErr := c.views.Delete(ctx, resourceID.String(), bookingID); viewErr != nil {
		slog.Warn("failed to delete booking view", "booking_id", bookingID, "error", viewErr)
	}

	return &CancelResult{BookingID: b.ID, Refund: refund}, nil
}

func markBookingErr(err error) error {
	switch {
	case errors.Is(err, booking.ErrInvalidInterval):
		return errs.Mark(err, ErrInvalidInterval)
	case errors.Is(err, resource.ErrDurationTooShort):
		return errs.Mark(err, ErrDurationTooShort)
	case errors.Is(err, booking.ErrCollision):
		return errs.Mark(err, ErrBookingCollision)
	case errors.Is(err, resource.ErrInsufficientFunds):
		return errs.Mark(err, ErrInsufficientFunds)
	case errors.Is(err, booking.ErrBookingNotFound):
		return errs.Mark(err, ErrBookingNotFound)
	case errors.Is(err, resource.ErrNotBooker):
		return errs.Mark(err, ErrCancelForbidden)
	case errors.Is(err, pricing.ErrArithmeticOverflow):
		return errs.Mark(err, ErrPricingOverflow)
	default:
		return err
	}
}
