package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"mechmobile/internal/domain/booking"
	"mechmobile/internal/domain/catalog"
	"mechmobile/internal/domain/pricing"
	"mechmobile/internal/domain/schedule"
	"mechmobile/internal/infra"
	"mechmobile/internal/infra/geo"
	"mechmobile/internal/infra/mail"
	"mechmobile/internal/infra/payment"
	"mechmobile/internal/pkg/clock"
	"mechmobile/internal/pkg/config"
	"mechmobile/internal/pkg/errs"
	"mechmobile/internal/pkg/numeric"
	"mechmobile/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type InvoiceRepository interface {
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*readmodel.InvoiceRM, error)
	FindByAppointmentID(ctx context.Context, appointmentID, customerID uuid.UUID) (*readmodel.InvoiceRM, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.InvoiceStatus) error
}

type AppointmentRepository interface {
	// CreateWithInvoice persists the appointment and its invoice atomically.
	CreateWithInvoice(ctx context.Context, a *booking.Appointment, inv *booking.Invoice) error
	FindByID(ctx context.Context, id, customerID uuid.UUID) (*booking.Appointment, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*readmodel.AppointmentRM, error)
	BusyBetween(ctx context.Context, from, to time.Time) ([]schedule.Interval, error)
	UpdateStatus(ctx context.Context, id, customerID uuid.UUID, status booking.AppointmentStatus) error
}

type PaymentGateway interface {
	Charge(ctx context.Context, sourceID string, amount float64, note string) (payment.Charge, error)
	GetPayment(ctx context.Context, paymentID string) (payment.Charge, error)
	Refund(ctx context.Context, paymentID string, amount float64, reason string) (string, error)
}

// CreateBookingInput is the booking form submission. PaymentRef is the
// payment created by the prior charge step; the booking is refused until
// that payment shows completed.
type CreateBookingInput struct {
	Customer        booking.CustomerInfo
	Cart            []booking.CartLine
	Date            time.Time
	SlotLabel       string
	ShopSourceParts bool
	PaymentRef      string
}

// BookingResult is the confirmed booking with warnings for non-fatal side
// effects (calendar event, confirmation email).
type BookingResult struct {
	Invoice     *readmodel.InvoiceRM
	Appointment *readmodel.AppointmentRM
	Warnings    []string
}

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*BookingResult, error)
	CancelAppointment(ctx context.Context, appointmentID, customerID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	catalogUC    CatalogUseCase
	customers    CustomerRepository
	invoices     InvoiceRepository
	appointments AppointmentRepository
	resolver     geo.Resolver
	calendar     CalendarGateway
	gateway      PaymentGateway
	mailer       MailSender
	planner      *schedule.Planner
	cancelPolicy schedule.CancelPolicy
	clock        clock.Clock
	schedule     pricing.FeeSchedule
	booking      config.BookingConfig
	workshop     config.WorkshopConfig
}

func NewBookingUseCase(
	catalogUC CatalogUseCase,
	customers CustomerRepository,
	invoices InvoiceRepository,
	appointments AppointmentRepository,
	resolver geo.Resolver,
	calendar CalendarGateway,
	gateway PaymentGateway,
	mailer MailSender,
	planner *schedule.Planner,
	clock clock.Clock,
	cfg config.Config,
) BookingUseCase {
	return &bookingUseCaseImpl{
		catalogUC:    catalogUC,
		customers:    customers,
		invoices:     invoices,
		appointments: appointments,
		resolver:     resolver,
		calendar:     calendar,
		gateway:      gateway,
		mailer:       mailer,
		planner:      planner,
		cancelPolicy: schedule.NewCancelPolicy(cfg.Booking.CancelCutoffHours),
		clock:        clock,
		schedule:     pricing.BookingSchedule(cfg.Pricing),
		booking:      cfg.Booking,
		workshop:     cfg.Workshop,
	}
}

// CreateBooking runs the confirmation pipeline: validate the form, verify
// the prior payment actually completed, then persist. Money has already
// moved, so every failure past the payment check either refunds or degrades
// with a warning, never silently drops the customer's charge.
func (b *bookingUseCaseImpl) CreateBooking(ctx context.Context, input CreateBookingInput) (*BookingResult, error) {
	if len(input.Cart) == 0 {
		return nil, errs.ErrNoServiceSelected
	}
	if err := input.Customer.Validate(); err != nil {
		return nil, err
	}
	if input.PaymentRef == "" {
		return nil, errs.ErrPaymentNotCompleted
	}

	now := b.clock.Now()
	slot, ok := b.planner.SlotByLabel(input.Date, input.SlotLabel)
	if !ok {
		return nil, errs.ErrInvalidTimeSlot
	}
	if slot.Start.Before(now.Add(b.booking.LeadTime)) {
		return nil, errs.ErrInsufficientLead
	}

	dist, err := b.resolver.Resolve(ctx, input.Customer.FullAddress())
	if err != nil {
		return nil, errs.Wrap(err, "failed to resolve customer distance")
	}
	if dist.Km > b.booking.MaxRadiusKm {
		return nil, errs.ErrOutsideServiceArea
	}

	cat, err := b.catalogUC.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}
	for _, line := range input.Cart {
		if _, ok := cat.Find(line.ServiceID); !ok {
			return nil, errs.ErrServiceNotFound
		}
	}

	busy, err := b.appointments.BusyBetween(ctx, slot.Start, slot.End)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	for _, iv := range busy {
		if iv.Overlaps(slot.Start, slot.End) {
			return nil, errs.ErrSlotConflict
		}
	}

	breakdown := pricing.BookingBreakdown(input.Cart, cat, dist.Km, input.ShopSourceParts, b.schedule)

	customerID, err := b.customers.Upsert(ctx,
		input.Customer.Email, input.Customer.FirstName, input.Customer.LastName, input.Customer.Phone, "",
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	charge, err := b.gateway.GetPayment(ctx, input.PaymentRef)
	if err != nil {
		return nil, err
	}
	if charge.Status != "COMPLETED" && charge.Status != "APPROVED" {
		return nil, errs.ErrPaymentNotCompleted
	}

	appointmentID := uuid.New()
	invoice := &booking.Invoice{
		ID:            uuid.New(),
		Number:        booking.InvoiceNumber(now),
		CustomerID:    customerID,
		AppointmentID: appointmentID,
		Lines:         b.snapshotCart(input.Cart, cat),
		DistanceKm:    dist.Km,
		Subtotal:      breakdown.Subtotal,
		TravelCost:    breakdown.TravelCost,
		PartsFee:      breakdown.PartsFee,
		Taxes:         breakdown.Taxes,
		Total:         breakdown.Total,
		Status:        booking.InvoiceStatusPaid,
		PaymentRef:    charge.PaymentID,
		CreatedAt:     now,
	}

	appointment := &booking.Appointment{
		ID:         appointmentID,
		CustomerID: customerID,
		InvoiceID:  invoice.ID,
		Start:      slot.Start,
		End:        slot.End,
		SlotLabel:  slot.Label,
		Address:    input.Customer.FullAddress(),
		Status:     booking.AppointmentStatusConfirmed,
		CreatedAt:  now,
	}

	result := &BookingResult{}

	// Calendar first so the event ID lands on the stored appointment. A
	// calendar slot conflict aborts and refunds; other calendar failures
	// only warn.
	eventID, err := b.calendar.CreateEvent(ctx, slot,
		"RDV "+input.Customer.FullName(),
		"Facture "+invoice.Number,
		input.Customer.FullAddress(),
	)
	if err != nil {
		if errors.Is(err, errs.ErrSlotConflict) {
			b.refundAfterFailure(ctx, charge.PaymentID, breakdown.Total, invoice.Number)
			return nil, errs.ErrSlotConflict
		}
		slog.Warn("calendar event creation failed", "invoice", invoice.Number, "error", err)
		result.Warnings = append(result.Warnings, "calendar event could not be created")
	}
	appointment.CalendarEventID = eventID

	// Appointment and invoice land in one transaction: a failure on either
	// leaves no partial booking behind, so the abort path only has to
	// release the calendar hold and refund.
	if err := b.appointments.CreateWithInvoice(ctx, appointment, invoice); err != nil {
		b.discardEvent(ctx, eventID)
		b.refundAfterFailure(ctx, charge.PaymentID, breakdown.Total, invoice.Number)
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.ErrSlotConflict
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	emailLines := make([]mail.ServiceLine, 0, len(invoice.Lines))
	for _, l := range invoice.Lines {
		lineTotal := numeric.SafeFloat(l.BasePrice)
		for _, o := range l.Options {
			lineTotal += numeric.SafeFloat(o.Price) * float64(o.Quantity)
		}
		emailLines = append(emailLines, mail.ServiceLine{Name: l.ServiceName, Quantity: 1, Total: numeric.SafeFloat(lineTotal)})
	}
	err = b.mailer.SendBookingConfirmation(ctx, mail.BookingConfirmationEmail{
		To:            input.Customer.Email,
		CustomerName:  input.Customer.FullName(),
		InvoiceNumber: invoice.Number,
		Lines:         emailLines,
		Total:         invoice.Total,
		ServiceDate:   slot.Start,
		SlotLabel:     slot.Label,
		Address:       input.Customer.FullAddress(),
		PartsByShop:   input.ShopSourceParts,
	})
	if err != nil {
		slog.Warn("booking confirmation email failed", "invoice", invoice.Number, "error", err)
		result.Warnings = append(result.Warnings, "confirmation email could not be sent")
	}

	result.Invoice = invoiceToRM(invoice)
	result.Appointment = &readmodel.AppointmentRM{
		ID:        appointment.ID,
		Start:     appointment.Start,
		End:       appointment.End,
		SlotLabel: appointment.SlotLabel,
		Address:   appointment.Address,
		Status:    string(appointment.Status),
		CreatedAt: appointment.CreatedAt,
	}
	return result, nil
}

// CancelAppointment refunds and releases a confirmed appointment when the
// cancellation window is still open.
func (b *bookingUseCaseImpl) CancelAppointment(ctx context.Context, appointmentID, customerID uuid.UUID) error {
	appointment, err := b.appointments.FindByID(ctx, appointmentID, customerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrAppointmentNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if appointment.IsCancelled() {
		return nil
	}

	now := b.clock.Now()
	if !b.cancelPolicy.CanCancel(appointment.Start, now) {
		return errs.ErrCancelWindowClosed
	}

	invoice, err := b.invoices.FindByAppointmentID(ctx, appointmentID, customerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrInvoiceNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if _, err := b.gateway.Refund(ctx, invoice.PaymentRef, invoice.Total, "Annulation du rendez-vous"); err != nil {
		return err
	}

	if err := b.appointments.UpdateStatus(ctx, appointmentID, customerID, booking.AppointmentStatusCancelled); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := b.invoices.UpdateStatus(ctx, invoice.ID, booking.InvoiceStatusCancelled); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if appointment.CalendarEventID != "" {
		if err := b.calendar.DeleteEvent(ctx, appointment.CalendarEventID); err != nil {
			slog.Warn("calendar event deletion failed", "event", appointment.CalendarEventID, "error", err)
		}
	}

	customer, err := b.customers.FindByID(ctx, customerID)
	if err == nil {
		err = b.mailer.SendRefundNotification(ctx, mail.RefundEmail{
			To:            customer.Email,
			CustomerName:  customer.FirstName + " " + customer.LastName,
			Amount:        invoice.Total,
			Reason:        "Annulation du rendez-vous",
			InvoiceNumber: invoice.Number,
		})
	}
	if err != nil {
		slog.Warn("refund notification email failed", "invoice", invoice.Number, "error", err)
	}

	return nil
}

// discardEvent removes the calendar hold when the booking aborts after the
// event was created.
func (b *bookingUseCaseImpl) discardEvent(ctx context.Context, eventID string) {
	if eventID == "" {
		return
	}
	if err := b.calendar.DeleteEvent(ctx, eventID); err != nil {
		slog.Warn("calendar event cleanup failed", "event", eventID, "error", err)
	}
}

// refundAfterFailure unwinds a charge when the booking cannot be completed.
// A failed refund here is logged loudly for manual follow-up.
func (b *bookingUseCaseImpl) refundAfterFailure(ctx context.Context, paymentID string, amount float64, invoiceNumber string) {
	if _, err := b.gateway.Refund(ctx, paymentID, amount, "Échec de la réservation"); err != nil {
		slog.Error("refund after booking failure did not complete, manual action required",
			"payment", paymentID, "invoice", invoiceNumber, "error", err)
	}
}

// snapshotCart freezes the cart into priced invoice lines.
func (b *bookingUseCaseImpl) snapshotCart(lines []booking.CartLine, cat *catalog.Catalog) []booking.QuoteLine {
	out := make([]booking.QuoteLine, 0, len(lines))
	for _, line := range lines {
		svc, ok := cat.Find(line.ServiceID)
		if !ok {
			continue
		}
		ql := booking.QuoteLine{
			ServiceID:   svc.ServiceID,
			ServiceName: svc.Name.FR,
			BasePrice:   svc.BasePrice * float64(line.Quantity),
		}
		for optionIndex, qty := range line.Options {
			if qty <= 0 {
				continue
			}
			opt, ok := svc.Option(optionIndex)
			if !ok {
				continue
			}
			ql.Options = append(ql.Options, booking.QuoteOptionLine{
				Name:     opt.Name.FR,
				Price:    opt.Price,
				Quantity: qty,
			})
		}
		out = append(out, ql)
	}
	return out
}

func invoiceToRM(inv *booking.Invoice) *readmodel.InvoiceRM {
	return &readmodel.InvoiceRM{
		ID:            inv.ID,
		Number:        inv.Number,
		Status:        string(inv.Status),
		Subtotal:      inv.Subtotal,
		TravelCost:    inv.TravelCost,
		PartsFee:      inv.PartsFee,
		Taxes:         inv.Taxes,
		Total:         inv.Total,
		PaymentRef:    inv.PaymentRef,
		AppointmentID: inv.AppointmentID,
		CreatedAt:     inv.CreatedAt,
	}
}
