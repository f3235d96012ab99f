package usecase

import (
	"context"
	"log/slog"
	"time"

	"mechmobile/internal/domain/booking"
	"mechmobile/internal/domain/catalog"
	"mechmobile/internal/domain/pricing"
	"mechmobile/internal/domain/schedule"
	"mechmobile/internal/infra/geo"
	"mechmobile/internal/infra/mail"
	"mechmobile/internal/pkg/clock"
	"mechmobile/internal/pkg/config"
	"mechmobile/internal/pkg/errs"
	"mechmobile/internal/pkg/numeric"
	"mechmobile/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CustomerRepository interface {
	Upsert(ctx context.Context, email, firstName, lastName, phone, passwordHash string) (uuid.UUID, error)
	Create(ctx context.Context, email, firstName, lastName, phone, passwordHash string) (uuid.UUID, error)
	FindByEmail(ctx context.Context, email string) (*readmodel.CustomerRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.CustomerRM, error)
}

type QuoteRepository interface {
	Create(ctx context.Context, q *booking.Quote) error
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*readmodel.QuoteRM, error)
	FindByID(ctx context.Context, id, customerID uuid.UUID) (*readmodel.QuoteRM, error)
	UpdateStatus(ctx context.Context, id, customerID uuid.UUID, status booking.QuoteStatus) error
}

type MailSender interface {
	SendQuote(ctx context.Context, m mail.QuoteEmail) error
	SendBookingConfirmation(ctx context.Context, m mail.BookingConfirmationEmail) error
	SendRefundNotification(ctx context.Context, m mail.RefundEmail) error
}

// CreateEstimateInput is the estimate form submission: contact and vehicle
// info, the toggled selection, and the requested visit.
type CreateEstimateInput struct {
	Customer     booking.CustomerInfo
	Selection    []booking.SelectedService
	RequestedFor time.Time
	SlotLabel    string
}

// EstimateResult carries the persisted quote plus warnings for side effects
// that failed without sinking the estimate.
type EstimateResult struct {
	Quote      *readmodel.QuoteRM
	DistanceKm float64
	Warnings   []string
}

type EstimateUseCase interface {
	CreateEstimate(ctx context.Context, input CreateEstimateInput) (*EstimateResult, error)
}

type estimateUseCaseImpl struct {
	catalogUC CatalogUseCase
	customers CustomerRepository
	quotes    QuoteRepository
	resolver  geo.Resolver
	calendar  CalendarGateway
	mailer    MailSender
	planner   *schedule.Planner
	clock     clock.Clock
	schedule  pricing.FeeSchedule
	booking   config.BookingConfig
}

func NewEstimateUseCase(
	catalogUC CatalogUseCase,
	customers CustomerRepository,
	quotes QuoteRepository,
	resolver geo.Resolver,
	calendar CalendarGateway,
	mailer MailSender,
	planner *schedule.Planner,
	clock clock.Clock,
	cfg config.Config,
) EstimateUseCase {
	return &estimateUseCaseImpl{
		catalogUC: catalogUC,
		customers: customers,
		quotes:    quotes,
		resolver:  resolver,
		calendar:  calendar,
		mailer:    mailer,
		planner:   planner,
		clock:     clock,
		schedule:  pricing.EstimateSchedule(cfg.Pricing),
		booking:   cfg.Booking,
	}
}

// CreateEstimate validates the submission, prices it, and persists the
// quote. Persistence failure is fatal; the quote email is best-effort and
// reported back as a warning so the customer still sees their number.
func (e *estimateUseCaseImpl) CreateEstimate(ctx context.Context, input CreateEstimateInput) (*EstimateResult, error) {
	if len(input.Selection) == 0 {
		return nil, errs.ErrNoServiceSelected
	}
	if err := input.Customer.Validate(); err != nil {
		return nil, err
	}

	now := e.clock.Now()
	if input.RequestedFor.Before(now.Add(e.booking.LeadTime)) {
		return nil, errs.ErrInsufficientLead
	}

	dist, err := e.resolver.Resolve(ctx, input.Customer.FullAddress())
	if err != nil {
		return nil, errs.Wrap(err, "failed to resolve customer distance")
	}
	// The 100km boundary itself is served.
	if dist.Km > e.booking.MaxRadiusKm {
		return nil, errs.ErrOutsideServiceArea
	}

	cat, err := e.catalogUC.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}
	for _, sel := range input.Selection {
		if _, ok := cat.Find(sel.ServiceID); !ok {
			return nil, errs.ErrServiceNotFound
		}
	}

	breakdown := pricing.EstimateBreakdown(input.Selection, cat, dist.Km, e.schedule)

	customerID, err := e.customers.Upsert(ctx,
		input.Customer.Email, input.Customer.FirstName, input.Customer.LastName, input.Customer.Phone, "",
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	quote := &booking.Quote{
		ID:           uuid.New(),
		Number:       booking.QuoteNumber(now),
		CustomerID:   customerID,
		Customer:     input.Customer,
		Lines:        e.snapshotLines(input.Selection, cat),
		DistanceKm:   dist.Km,
		Subtotal:     breakdown.Subtotal,
		TravelCost:   breakdown.TravelCost,
		Taxes:        breakdown.Taxes,
		Total:        breakdown.Total,
		Status:       booking.QuoteStatusPending,
		RequestedFor: input.RequestedFor,
		SlotLabel:    input.SlotLabel,
		CreatedAt:    now,
	}
	if err := e.quotes.Create(ctx, quote); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	result := &EstimateResult{
		Quote:      quoteToRM(quote),
		DistanceKm: dist.Km,
	}

	// Tentative calendar hold for the requested window, best effort.
	if slot, ok := e.planner.SlotByLabel(input.RequestedFor, input.SlotLabel); ok {
		_, err := e.calendar.CreateEvent(ctx, slot,
			"Soumission "+quote.Number,
			input.Customer.FullName(),
			input.Customer.FullAddress(),
		)
		if err != nil {
			slog.Warn("quote calendar event failed", "quote", quote.Number, "error", err)
			result.Warnings = append(result.Warnings, "calendar event could not be created")
		}
	}

	emailLines := make([]mail.ServiceLine, 0, len(quote.Lines))
	for _, l := range quote.Lines {
		lineTotal := numeric.SafeFloat(l.BasePrice)
		for _, o := range l.Options {
			lineTotal += numeric.SafeFloat(o.Price) * float64(o.Quantity)
		}
		emailLines = append(emailLines, mail.ServiceLine{Name: l.ServiceName, Quantity: 1, Total: numeric.SafeFloat(lineTotal)})
	}
	err = e.mailer.SendQuote(ctx, mail.QuoteEmail{
		To:           input.Customer.Email,
		CustomerName: input.Customer.FullName(),
		Lines:        emailLines,
		Total:        quote.Total,
		DistanceKm:   dist.Km,
		ServiceDate:  input.RequestedFor,
		Address:      input.Customer.FullAddress(),
	})
	if err != nil {
		slog.Warn("quote email failed", "quote", quote.Number, "error", err)
		result.Warnings = append(result.Warnings, "confirmation email could not be sent")
	}

	return result, nil
}

// snapshotLines freezes the priced services into the quote so later catalog
// edits never change what the customer was shown.
func (e *estimateUseCaseImpl) snapshotLines(selection []booking.SelectedService, cat *catalog.Catalog) []booking.QuoteLine {
	lines := make([]booking.QuoteLine, 0, len(selection))
	for _, sel := range selection {
		svc, ok := cat.Find(sel.ServiceID)
		if !ok {
			continue
		}
		line := booking.QuoteLine{
			ServiceID:   svc.ServiceID,
			ServiceName: svc.Name.FR,
		}
		if sel.BaseSelected {
			line.BasePrice = svc.BasePrice
		}
		for _, pick := range sel.Options {
			opt, ok := svc.Option(pick.OptionIndex)
			if !ok {
				continue
			}
			line.Options = append(line.Options, booking.QuoteOptionLine{
				Name:     opt.Name.FR,
				Price:    opt.Price,
				Quantity: pick.Quantity,
			})
		}
		lines = append(lines, line)
	}
	return lines
}

func quoteToRM(q *booking.Quote) *readmodel.QuoteRM {
	rm := &readmodel.QuoteRM{
		ID:           q.ID,
		Number:       q.Number,
		Status:       string(q.Status),
		Subtotal:     q.Subtotal,
		TravelCost:   q.TravelCost,
		Taxes:        q.Taxes,
		Total:        q.Total,
		DistanceKm:   q.DistanceKm,
		SlotLabel:    q.SlotLabel,
		RequestedFor: q.RequestedFor,
		CreatedAt:    q.CreatedAt,
	}
	for _, l := range q.Lines {
		rm.Lines = append(rm.Lines, readmodel.QuoteLineRM{
			ServiceID:   l.ServiceID,
			ServiceName: l.ServiceName,
			BasePrice:   l.BasePrice,
		})
	}
	return rm
}
