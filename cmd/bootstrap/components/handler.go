package components

import (
	"time"

	"mechmobile/internal/handler"
	"mechmobile/internal/handler/api"
	"mechmobile/internal/handler/middleware"
	"mechmobile/internal/pkg/config"
	"mechmobile/internal/usecase"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		api.NewCatalogHandler,
		api.NewDistanceHandler,
		api.NewAvailabilityHandler,
		api.NewEstimateHandler,
		api.NewPaymentHandler,
		api.NewBookingHandler,
		api.NewPortalHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(authUseCase usecase.AuthUseCase, cfg config.Config) *api.AuthHandler {
	tokenDuration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		panic("invalid JWT_DURATION: " + err.Error())
	}
	return api.NewAuthHandler(authUseCase, cfg.Cookie, tokenDuration)
}

func NewHandlers(
	auth *api.AuthHandler,
	catalog *api.CatalogHandler,
	distance *api.DistanceHandler,
	availability *api.AvailabilityHandler,
	estimate *api.EstimateHandler,
	payment *api.PaymentHandler,
	booking *api.BookingHandler,
	portal *api.PortalHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Catalog:      catalog,
		Distance:     distance,
		Availability: availability,
		Estimate:     estimate,
		Payment:      payment,
		Booking:      booking,
		Portal:       portal,
	}
}
