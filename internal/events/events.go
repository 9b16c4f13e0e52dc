// Package events defines the append-only observability events consumed
// by off-system indexers. The engine writes them and never reads them
// back.
package events

import (
	"context"

	"chershare/internal/domain/account"
	"chershare/internal/domain/pricing"
	"chershare/internal/domain/resource"
)

type Event interface {
	Kind() string
}

type Emitter interface {
	Emit(ctx context.Context, ev Event)
}

type ResourceCreated struct {
	Name       string              `json:"name"`
	Owner      account.ID          `json:"owner"`
	InitParams resource.InitParams `json:"init_params"`
}

func (ResourceCreated) Kind() string { return "resource_creation" }

type BookingCreated struct {
	ID         uint64         `json:"id"`
	ResourceID account.ID     `json:"resource_id"`
	BookerID   account.ID     `json:"booker_id"`
	Start      int64          `json:"start"`
	End        int64          `json:"end"`
	Price      pricing.Amount `json:"price"`
}

func (BookingCreated) Kind() string { return "booking_creation" }

type BookingCanceled struct {
	ID         uint64         `json:"id"`
	ResourceID account.ID     `json:"resource_id"`
	BookerID   account.ID     `json:"booker_id"`
	Refund     pricing.Amount `json:"refund"`
}

func (BookingCanceled) Kind() string { return "booking_cancellation" }

type ProvisioningFailed struct {
	Name    string         `json:"name"`
	Creator account.ID     `json:"creator"`
	Refund  pricing.Amount `json:"refund"`
	Reason  string         `json:"reason"`
}

func (ProvisioningFailed) Kind() string { return "provisioning_failure" }

// Recorder collects events in order for assertions in tests.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Emit(_ context.Context, ev Event) {
	r.Events = append(r.Events, ev)
}

func (r *Recorder) OfKind(kind string) []Event {
	var out []Event
	for _, ev := range r.Events {
		if ev.Kind() == kind {
			out = append(out, ev)
		}
	}
	return out
}
