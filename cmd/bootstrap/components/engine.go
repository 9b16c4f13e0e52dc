package components

import (
	"chershare/internal/domain/account"
	"chershare/internal/domain/factory"
	"chershare/internal/domain/pricing"
	"chershare/internal/domain/resource"
	"chershare/internal/events"
	"chershare/internal/infra/eventlog"
	"chershare/internal/infra/provisioner"
	"chershare/internal/pkg/config"
	"chershare/internal/platform"

	"go.uber.org/fx"
)

// EngineModule assembles the in-memory booking engine: the live
// resource registry, the provisioning chain and the event emitter.
var EngineModule = fx.Module("engine",
	fx.Provide(
		resource.NewRegistry,
		fx.Annotate(
			eventlog.NewJournalEmitter,
			fx.As(new(events.Emitter)),
		),
		fx.Annotate(
			provisioner.NewLocalTreasury,
			fx.As(new(platform.Treasury)),
		),
		fx.Annotate(
			provisioner.NewLocalProvisioner,
			fx.As(new(platform.Provisioner)),
		),
		NewCoordinator,
	),
)

func NewCoordinator(
	cfg config.Config,
	prov platform.Provisioner,
	treasury platform.Treasury,
	emitter events.Emitter,
) (*factory.Coordinator, error) {
	accountID, err := account.NewID(cfg.Factory.Account)
	if err != nil {
		return nil, err
	}
	owner, err := account.NewID(cfg.Factory.Owner)
	if err != nil {
		return nil, err
	}
	return factory.NewCoordinator(factory.Config{
		AccountID:       accountID,
		Owner:           owner,
		StorageCost:     pricing.Amount(cfg.Factory.StorageCost),
		OwnerDepositMin: pricing.Amount(cfg.Factory.OwnerDepositMin),
	}, prov, treasury, emitter)
}
