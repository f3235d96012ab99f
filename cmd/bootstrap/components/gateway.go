package components

import (
	"mechmobile/internal/infra/calendar"
	"mechmobile/internal/infra/geo"
	"mechmobile/internal/infra/mail"
	"mechmobile/internal/infra/payment"
	"mechmobile/internal/pkg/config"
	"mechmobile/internal/usecase"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewDistanceResolver,
		fx.Annotate(
			NewDebouncedResolver,
			fx.ResultTags(`name:"debounced"`),
		),
		fx.Annotate(
			NewCalendarGateway,
			fx.As(new(usecase.CalendarGateway)),
		),
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(usecase.PaymentGateway)),
		),
		fx.Annotate(
			NewMailSender,
			fx.As(new(usecase.MailSender)),
		),
	),
)

// NewDistanceResolver assembles the three-tier resolution chain (distance
// matrix, geocode + haversine, regional fallback). Estimate and booking
// submissions resolve through it directly.
func NewDistanceResolver(cfg config.Config) geo.Resolver {
	return geo.NewChain(
		geo.NewMatrixResolver(cfg.Geo, cfg.Workshop),
		geo.NewGeocodeResolver(cfg.Geo, cfg.Workshop),
		geo.NewFallbackResolver(),
	)
}

// NewDebouncedResolver wraps the chain for the live distance lookup, where
// keystroke-driven requests should coalesce and only the latest address
// wins. Submissions must never go through it: the debouncer's generation
// counter is process wide, and one customer's lookup would supersede
// another customer's in-flight booking.
func NewDebouncedResolver(chain geo.Resolver, cfg config.Config) geo.Resolver {
	return geo.NewDebouncer(chain, cfg.Geo.DebounceWindow)
}

func NewCalendarGateway(cfg config.Config) *calendar.GoogleCalendar {
	return calendar.NewGoogleCalendar(cfg.Calendar)
}

func NewPaymentGateway(cfg config.Config) *payment.SquareGateway {
	return payment.NewSquareGateway(cfg.Payment)
}

func NewMailSender(cfg config.Config) *mail.EmailJSSender {
	return mail.NewEmailJSSender(cfg.Mail)
}
