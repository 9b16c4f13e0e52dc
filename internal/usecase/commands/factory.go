package commands

import (
	"context"
	"errors"

	"chershare/internal/domain/account"
	"chershare/internal/domain/factory"
	"chershare/internal/domain/pricing"
	"chershare/internal/domain/resource"
	"chershare/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNameTaken        = errs.New("resource name already taken")
	ErrInvalidName      = errs.New("invalid resource name")
	ErrUnauthorized     = errs.New("unauthorized")
	ErrDepositRequired  = errs.New("deposit required")
	ErrSameOwner        = errs.New("new owner must differ from caller")
	ErrInvalidOwner     = errs.New("invalid owner account")
	ErrDomainValidation = errs.New("domain validation error")
)

type CreateResourceParams struct {
	Name          string
	Owner         string
	InitParams    resource.InitParams
	AttachedFunds pricing.Amount
}

type CreateResourceResult struct {
	AttemptID uuid.UUID
}

type FactoryCommands interface {
	CreateResource(ctx context.Context, caller account.ID, params CreateResourceParams) (*CreateResourceResult, error)
	SetOwner(ctx context.Context, caller account.ID, newOwner string, attached pricing.Amount) error
}

type factoryCommandsImpl struct {
	coordinator *factory.Coordinator
}

func NewFactoryCommands(coordinator *factory.Coordinator) FactoryCommands {
	return &factoryCommandsImpl{coordinator: coordinator}
}

func (c *factoryCommandsImpl) CreateResource(ctx context.Context, caller account.ID, params CreateResourceParams) (*CreateResourceResult, error) {
	owner, err := account.NewID(params.Owner)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidOwner)
	}

	attemptID, err := c.coordinator.CreateResource(ctx, caller, params.Name, owner, params.InitParams, params.AttachedFunds)
	if err != nil {
		return nil, markFactoryErr(err)
	}
	return &CreateResourceResult{AttemptID: attemptID}, nil
}

func (c *factoryCommandsImpl) SetOwner(_ context.Context, caller account.ID, newOwner string, attached pricing.Amount) error {
	ownerID, err := account.NewID(newOwner)
	if err != nil {
		return errs.Mark(err, ErrInvalidOwner)
	}
	if err := c.coordinator.SetOwner(caller, ownerID, attached); err != nil {
		return markFactoryErr(err)
	}
	return nil
}

func markFactoryErr(err error) error {
	switch {
	case errors.Is(err, factory.ErrNameTaken):
		return errs.Mark(err, ErrNameTaken)
	case errors.Is(err, factory.ErrInvalidName):
		return errs.Mark(err, ErrInvalidName)
	case errors.Is(err, factory.ErrUnauthorized):
		return errs.Mark(err, ErrUnauthorized)
	case errors.Is(err, factory.ErrDepositRequired):
		return errs.Mark(err, ErrDepositRequired)
	case errors.Is(err, factory.ErrSameOwner):
		return errs.Mark(err, ErrSameOwner)
	case errors.Is(err, resource.ErrEmptyTitle),
		errors.Is(err, resource.ErrTitleTooLong),
		errors.Is(err, resource.ErrNegativeMinDuration),
		errors.Is(err, pricing.ErrUnknownPolicyKind),
		errors.Is(err, pricing.ErrZeroRefundWindow):
		return errs.Mark(err, ErrDomainValidation)
	default:
		return err
	}
}
