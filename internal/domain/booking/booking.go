package booking

import (
	"chershare/internal/domain/account"
	"chershare/internal/domain/pricing"
)

// Booking is a committed reservation of a slot. Immutable once the
// ledger has committed it; there is no reschedule operation.
type Booking struct {
	ID           uint64
	Interval     Interval
	ConsumerID   account.ID
	PriceCharged pricing.Amount
}
