package queries

import (
	"context"

	"chershare/internal/domain/account"
	"chershare/internal/domain/pricing"
	"chershare/internal/domain/resource"
	"chershare/internal/infra"
	"chershare/internal/pkg/errs"
)

var (
	ErrResourceNotFound = errs.New("resource not found")
	ErrQuoteFailed      = errs.New("quote failed")
)

type BookingQueries interface {
	// Quote mirrors exactly the price Book would charge; callers size
	// their attached funds from it.
	Quote(ctx context.Context, resourceID account.ID, beginMs, endMs int64) (pricing.Amount, error)
	ListByResource(ctx context.Context, resourceID account.ID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	registry *resource.Registry
	views    BookingViewRepo
}

func NewBookingQueries(registry *resource.Registry, views BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{registry: registry, views: views}
}

func (q *bookingQueriesImpl) Quote(_ context.Context, resourceID account.ID, beginMs, endMs int64) (pricing.Amount, error) {
	res, err := q.registry.Get(resourceID)
	if err != nil {
		return 0, errs.Mark(err, ErrResourceNotFound)
	}
	amount, err := res.Quote(beginMs, endMs)
	if err != nil {
		return 0, errs.Mark(err, ErrQuoteFailed)
	}
	return amount, nil
}

func (q *bookingQueriesImpl) ListByResource(ctx context.Context, resourceID account.ID) ([]*BookingView, error) {
	views, err := q.views.ListByResource(ctx, resourceID.String())
	if err != nil {
		// A missing read-model row is an empty listing, not a failure.
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return views, nil
}
