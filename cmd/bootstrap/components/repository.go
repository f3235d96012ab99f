package components

import (
	"mechmobile/internal/infra/store"
	"mechmobile/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			store.NewServiceStore,
			fx.As(new(usecase.ServiceRepository)),
		),
		fx.Annotate(
			store.NewCustomerStore,
			fx.As(new(usecase.CustomerRepository)),
		),
		fx.Annotate(
			store.NewQuoteStore,
			fx.As(new(usecase.QuoteRepository)),
		),
		fx.Annotate(
			store.NewInvoiceStore,
			fx.As(new(usecase.InvoiceRepository)),
		),
		fx.Annotate(
			store.NewAppointmentStore,
			fx.As(new(usecase.AppointmentRepository)),
			fx.As(new(usecase.AppointmentBusyReader)),
		),
	),
)
