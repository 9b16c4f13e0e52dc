// Package platform declares the host-platform collaborators the engine
// depends on but does not implement: fund transfer and the chained
// sub-account provisioning sequence. Both are specified at their
// interface only.
package platform

import (
	"context"

	"chershare/internal/domain/account"
	"chershare/internal/domain/pricing"
	"chershare/internal/domain/resource"

	"github.com/google/uuid"
)

// Treasury moves funds between platform accounts.
type Treasury interface {
	Transfer(ctx context.Context, to account.ID, amount pricing.Amount) error
}

// ProvisionRequest is the full context of one provisioning attempt. It
// travels with the outcome so the continuation needs no shared mutable
// state with the requesting call.
type ProvisionRequest struct {
	AttemptID     uuid.UUID
	Name          string
	AccountID     account.ID // full sub-account id to create
	Owner         account.ID
	Creator       account.ID
	InitParams    resource.InitParams
	AttachedFunds pricing.Amount
}

// Outcome resolves one attempt. Anything that is not an explicit
// success is a failure; the platform never reports partial progress of
// the chain's sub-steps.
type Outcome struct {
	Request ProvisionRequest
	Success bool
	Reason  string
}

// ResolveFunc is the confirmation continuation. The platform invokes
// it exactly once per Provision call, after every step of the external
// sequence has been attempted, as a logically separate call.
type ResolveFunc func(ctx context.Context, outcome Outcome)

// Provisioner runs the chained external sequence: reserve the
// sub-account, transfer the attached funds, deploy the resource image
// and invoke its initializer. Only the terminal outcome of the whole
// chain is observable.
type Provisioner interface {
	Provision(ctx context.Context, req ProvisionRequest, resolve ResolveFunc)
}
