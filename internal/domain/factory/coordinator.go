package factory

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"chershare/internal/domain/account"
	"chershare/internal/domain/pricing"
	"chershare/internal/domain/resource"
	"chershare/internal/events"
	"chershare/internal/platform"
	"chershare/internal/pkg/kv"

	"github.com/google/uuid"
)

var (
	ErrNameTaken       = errors.New("resource with that name already exists")
	ErrInvalidName     = errors.New("invalid resource name")
	ErrUnauthorized    = errors.New("only the factory owner can call this method")
	ErrDepositRequired = errors.New("a non-zero deposit is required")
	ErrSameOwner       = errors.New("new owner must differ from the caller")
)

const prefixNames = "t"

// Coordinator drives the create -> deploy -> init -> confirm workflow
// for new resource instances. A name enters the provisioned set only
// after the external sequence confirms success; any other outcome
// refunds the creator. Calls are serialized by the mutex; the
// confirmation continuation takes it again as its own call.
type Coordinator struct {
	mu sync.Mutex

	accountID account.ID
	owner     account.ID
	names     kv.Set

	storageCost     pricing.Amount
	ownerDepositMin pricing.Amount

	provisioner platform.Provisioner
	treasury    platform.Treasury
	emitter     events.Emitter
}

type Config struct {
	AccountID       account.ID
	Owner           account.ID
	StorageCost     pricing.Amount
	OwnerDepositMin pricing.Amount
}

func NewCoordinator(
	cfg Config,
	provisioner platform.Provisioner,
	treasury platform.Treasury,
	emitter events.Emitter,
) (*Coordinator, error) {
	names, err := kv.NewSet(kv.NewStore(), prefixNames)
	if err != nil {
		return nil, err
	}
	return &Coordinator{
		accountID:       cfg.AccountID,
		owner:           cfg.Owner,
		names:           names,
		storageCost:     cfg.StorageCost,
		ownerDepositMin: cfg.OwnerDepositMin,
		provisioner:     provisioner,
		treasury:        treasury,
		emitter:         emitter,
	}, nil
}

// CreateResource validates the request synchronously, then issues the
// chained external sequence and returns pending with the attempt id.
// The caller's attached funds travel with the request; they come back
// through ResolveCreate on failure.
func (c *Coordinator) CreateResource(
	ctx context.Context,
	caller account.ID,
	name string,
	owner account.ID,
	params resource.InitParams,
	attached pricing.Amount,
) (uuid.UUID, error) {
	c.mu.Lock()
	if !account.IsValidName(name) {
		c.mu.Unlock()
		return uuid.Nil, ErrInvalidName
	}
	if err := params.Validate(); err != nil {
		c.mu.Unlock()
		return uuid.Nil, err
	}
	if c.names.Contains(name) {
		c.mu.Unlock()
		return uuid.Nil, ErrNameTaken
	}
	subID, err := c.accountID.Sub(name)
	if err != nil {
		c.mu.Unlock()
		return uuid.Nil, ErrInvalidName
	}
	req := platform.ProvisionRequest{
		AttemptID:     uuid.New(),
		Name:          name,
		AccountID:     subID,
		Owner:         owner,
		Creator:       caller,
		InitParams:    params,
		AttachedFunds: attached,
	}
	c.mu.Unlock()

	// The request is now pending; everything after this point is
	// decided by the external sequence and delivered to ResolveCreate.
	c.provisioner.Provision(ctx, req, c.ResolveCreate)
	return req.AttemptID, nil
}

// ResolveCreate is the confirmation continuation. The platform invokes
// it exactly once per attempt; a duplicate confirmation for an already
// provisioned name is ignored with a warning. Any non-success outcome is
// a failure: the creator is refunded and no name is registered, so a
// retry with the same name stays possible.
func (c *Coordinator) ResolveCreate(ctx context.Context, outcome platform.Outcome) {
	c.mu.Lock()
	defer c.mu.Unlock()

	req := outcome.Request
	if outcome.Success {
		if c.names.Contains(req.Name) {
			slog.Warn("ignoring duplicate provisioning confirmation",
				"name", req.Name, "attempt_id", req.AttemptID)
			return
		}
		c.names.Add(req.Name)
		c.emitter.Emit(ctx, events.ResourceCreated{
			Name:       req.Name,
			Owner:      req.Owner,
			InitParams: req.InitParams,
		})
		return
	}

	refund := req.AttachedFunds.SaturatingSub(c.storageCost)
	if refund > 0 {
		if err := c.treasury.Transfer(ctx, req.Creator, refund); err != nil {
			slog.Error("refund transfer failed",
				"creator", req.Creator, "amount", uint64(refund), "error", err)
		}
	}
	c.emitter.Emit(ctx, events.ProvisioningFailed{
		Name:    req.Name,
		Creator: req.Creator,
		Refund:  refund,
		Reason:  outcome.Reason,
	})
}

// SetOwner hands the factory to a new owner. Owner-only, requires the
// minimal attached-funds sentinel, and refuses a no-op transfer.
func (c *Coordinator) SetOwner(caller, newOwner account.ID, attached pricing.Amount) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if attached < c.ownerDepositMin {
		return ErrDepositRequired
	}
	if caller != c.owner {
		return ErrUnauthorized
	}
	if newOwner == caller {
		return ErrSameOwner
	}
	c.owner = newOwner
	return nil
}

// Contains reports whether a resource with this name has been
// successfully provisioned by this factory.
func (c *Coordinator) Contains(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.names.Contains(name)
}

func (c *Coordinator) Owner() account.ID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.owner
}

func (c *Coordinator) AccountID() account.ID {
	return c.accountID
}
