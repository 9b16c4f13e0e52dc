// Package provisioner adapts the host platform's provisioning chain to
// an in-process implementation: the "sub-account" is a live resource
// aggregate registered under its full account id. The outcome is
// delivered asynchronously, exactly once, like the real platform's
// continuation.
package provisioner

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"chershare/internal/domain/account"
	"chershare/internal/domain/pricing"
	"chershare/internal/domain/resource"
	"chershare/internal/platform"
	"chershare/internal/usecase/queries"
)

type LocalProvisioner struct {
	registry *resource.Registry
	views    queries.ResourceViewRepo
	logger   *slog.Logger
}

func NewLocalProvisioner(registry *resource.Registry, views queries.ResourceViewRepo, logger *slog.Logger) *LocalProvisioner {
	return &LocalProvisioner{registry: registry, views: views, logger: logger}
}

// Provision runs the chain off the calling goroutine and resolves the
// outcome once, after every step has been attempted. Failure of any
// step fails the whole chain; there is no partial outcome.
func (p *LocalProvisioner) Provision(ctx context.Context, req platform.ProvisionRequest, resolve platform.ResolveFunc) {
	go func() {
		outcome := platform.Outcome{Request: req, Success: true}

		res, err := resource.New(req.AccountID, req.InitParams)
		if err == nil {
			err = p.registry.Register(res)
		}
		if err != nil {
			outcome.Success = false
			outcome.Reason = err.Error()
		} else if p.views != nil {
			if viewErr := p.views.Upsert(ctx, queries.ResourceView{
				Name:      req.Name,
				AccountID: req.AccountID.String(),
				Owner:     req.Owner.String(),
				Title:     req.InitParams.Title,
				CreatedAt: time.Now(),
			}); viewErr != nil {
				// The instance exists; a stale read model is an
				// indexer problem, not a provisioning failure.
				p.logger.Warn("failed to upsert resource view",
					"name", req.Name, "error", viewErr)
			}
		}

		resolve(ctx, outcome)
	}()
}

// LocalTreasury records transfers in memory. The real account system
// is external; this adapter keeps the engine honest about every
// transfer it orders.
type LocalTreasury struct {
	mu        sync.Mutex
	transfers map[account.ID]pricing.Amount
	logger    *slog.Logger
}

func NewLocalTreasury(logger *slog.Logger) *LocalTreasury {
	return &LocalTreasury{transfers: make(map[account.ID]pricing.Amount), logger: logger}
}

func (t *LocalTreasury) Transfer(_ context.Context, to account.ID, amount pricing.Amount) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	total, err := t.transfers[to].CheckedAdd(amount)
	if err != nil {
		return err
	}
	t.transfers[to] = total
	t.logger.Info("funds transferred", "to", to.String(), "amount", uint64(amount))
	return nil
}

// TransferredTo reports the cumulative amount sent to an account.
func (t *LocalTreasury) TransferredTo(id account.ID) pricing.Amount {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.transfers[id]
}
