package booking

import (
	"errors"

	"chershare/internal/domain/account"
	"chershare/internal/domain/pricing"
	"chershare/internal/pkg/kv"
)

var ErrBookingNotFound = errors.New("booking not found")

const prefixBookings = "bk"

// Ledger is the authoritative map from booking id to booking record.
// It owns the collision index and the monotonic id counter; records,
// counter and both index maps only ever change together, inside Commit
// or Remove, which is what makes the commit point atomic under the
// platform's run-to-completion call model.
type Ledger struct {
	bookings kv.ScalarMap[uint64, Booking]
	index    *Index
	nextID   uint64
}

func NewLedger(store *kv.Store) (*Ledger, error) {
	bookings, err := kv.NewScalarMap[uint64, Booking](store, prefixBookings)
	if err != nil {
		return nil, err
	}
	index, err := NewIndex(store)
	if err != nil {
		return nil, err
	}
	return &Ledger{bookings: bookings, index: index, nextID: 1}, nil
}

// CheckNoCollision probes the index without mutating anything.
func (l *Ledger) CheckNoCollision(iv Interval) error {
	return l.index.CheckNoCollision(iv)
}

// Commit allocates the next booking id and writes the record and both
// boundary entries. The caller has already validated the interval and
// checked for collisions; Commit is the single commit point.
func (l *Ledger) Commit(iv Interval, consumer account.ID, price pricing.Amount) Booking {
	b := Booking{
		ID:           l.nextID,
		Interval:     iv,
		ConsumerID:   consumer,
		PriceCharged: price,
	}
	l.nextID++
	l.bookings.Put(b.ID, b)
	l.index.insert(b.ID, iv)
	return b
}

func (l *Ledger) Get(id uint64) (Booking, error) {
	b, ok := l.bookings.Get(id)
	if !ok {
		return Booking{}, ErrBookingNotFound
	}
	return b, nil
}

// Remove deletes the record and both boundary entries together.
func (l *Ledger) Remove(id uint64) error {
	b, ok := l.bookings.Get(id)
	if !ok {
		return ErrBookingNotFound
	}
	l.bookings.Delete(id)
	l.index.remove(b.Interval)
	return nil
}

func (l *Ledger) Len() int {
	return l.bookings.Len()
}
