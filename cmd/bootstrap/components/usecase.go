package components

import (
	"mechmobile/internal/pkg/clock"
	"mechmobile/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewCatalogUseCase,
		fx.Annotate(
			usecase.NewDistanceUseCase,
			fx.ParamTags(`name:"debounced"`),
		),
		usecase.NewAvailabilityUseCase,
		usecase.NewEstimateUseCase,
		usecase.NewPaymentUseCase,
		usecase.NewBookingUseCase,
		usecase.NewAuthUseCase,
		usecase.NewPortalUseCase,
	),
)
