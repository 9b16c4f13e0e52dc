package resource

import (
	"errors"
	"fmt"
	"sync"

	"chershare/internal/domain/account"
	"chershare/internal/domain/booking"
	"chershare/internal/domain/pricing"
	"chershare/internal/pkg/kv"
)

var (
	ErrDurationTooShort  = errors.New("booking shorter than the resource's minimum duration")
	ErrInsufficientFunds = errors.New("attached funds below the booking price")
	ErrNotBooker         = errors.New("only the booking's consumer may cancel it")
)

// InsufficientFundsError carries the exact shortfall so the caller can
// retry with correct funds. No funds are taken on this path.
type InsufficientFundsError struct {
	Required pricing.Amount
	Provided pricing.Amount
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: required %d, provided %d", e.Required, e.Provided)
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// Resource is the aggregate root owning one pricing policy, one
// booking ledger and its descriptive metadata. Calls are serialized by
// the mutex; each one runs to completion before the next, mirroring
// the host platform's one-call-at-a-time execution model.
type Resource struct {
	mu     sync.Mutex
	id     account.ID
	params InitParams
	ledger *booking.Ledger
}

// New initializes the aggregate once, on its own storage namespace.
// Re-initialization does not exist at this level: the registry refuses
// a second instance under the same id.
func New(id account.ID, params InitParams) (*Resource, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	ledger, err := booking.NewLedger(kv.NewStore())
	if err != nil {
		return nil, err
	}
	return &Resource{id: id, params: params, ledger: ledger}, nil
}

func (r *Resource) ID() account.ID {
	return r.id
}

// Params returns the metadata exactly as supplied at initialization.
func (r *Resource) Params() InitParams {
	p := r.params
	p.ImageURLs = append([]string(nil), r.params.ImageURLs...)
	p.Tags = append([]string(nil), r.params.Tags...)
	return p
}

// Book runs the all-or-nothing sequence: validate interval, enforce
// the minimum duration, probe for collisions, price the slot, verify
// attached funds, then commit record and index entries in one step.
// Any surplus above the price stays with the resource's balance.
func (r *Resource) Book(caller account.ID, beginMs, endMs int64, attached pricing.Amount) (booking.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	iv, err := booking.NewInterval(beginMs, endMs)
	if err != nil {
		return booking.Booking{}, err
	}
	if iv.DurationMs() < r.params.MinDurationMs {
		return booking.Booking{}, ErrDurationTooShort
	}
	if err := r.ledger.CheckNoCollision(iv); err != nil {
		return booking.Booking{}, err
	}
	price, err := r.params.Pricing.Price(iv.BeginMs, iv.EndMs)
	if err != nil {
		return booking.Booking{}, err
	}
	if attached < price {
		return booking.Booking{}, &InsufficientFundsError{Required: price, Provided: attached}
	}

	return r.ledger.Commit(iv, caller, price), nil
}

// Quote mirrors the price Book would charge, without touching state.
func (r *Resource) Quote(beginMs, endMs int64) (pricing.Amount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	iv, err := booking.NewInterval(beginMs, endMs)
	if err != nil {
		return 0, err
	}
	if iv.DurationMs() < r.params.MinDurationMs {
		return 0, ErrDurationTooShort
	}
	return r.params.Pricing.Price(iv.BeginMs, iv.EndMs)
}

// Cancel removes the booking and reports the refund owed per the
// policy's decay curve at nowMs. Record and index entries go together;
// the actual refund transfer is the caller's treasury concern.
func (r *Resource) Cancel(caller account.ID, bookingID uint64, nowMs int64) (booking.Booking, pricing.Amount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := r.ledger.Get(bookingID)
	if err != nil {
		return booking.Booking{}, 0, err
	}
	if b.ConsumerID != caller {
		return booking.Booking{}, 0, ErrNotBooker
	}
	refund, err := r.params.Pricing.Refund(b.Interval.BeginMs, b.Interval.EndMs, nowMs)
	if err != nil {
		return booking.Booking{}, 0, err
	}
	if err := r.ledger.Remove(bookingID); err != nil {
		return booking.Booking{}, 0, err
	}
	return b, refund, nil
}

// Bookings returns the number of committed bookings.
func (r *Resource) Bookings() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ledger.Len()
}
