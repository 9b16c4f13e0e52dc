package components

import (
	"chershare/internal/infra/eventlog"
	repo_impl "chershare/internal/infra/repository"
	"chershare/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewEventJournal,
			fx.As(new(eventlog.Appender)),
		),
		fx.Annotate(
			repo_impl.NewBookingViewRepository,
			fx.As(new(queries.BookingViewRepo)),
		),
		fx.Annotate(
			repo_impl.NewResourceViewRepository,
			fx.As(new(queries.ResourceViewRepo)),
		),
	),
)
