package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Catalog errors
	ErrServiceNotFound = errors.New("service not found")

	// Estimate / booking validation errors
	ErrNoServiceSelected   = errors.New("no service selected")
	ErrMissingRequired     = errors.New("required field missing")
	ErrTermsNotAccepted    = errors.New("terms not accepted")
	ErrOutsideServiceArea  = errors.New("address outside service area")
	ErrInsufficientLead    = errors.New("insufficient lead time")
	ErrPaymentNotCompleted = errors.New("payment not completed")
	ErrInvalidTimeSlot     = errors.New("invalid time slot")
	ErrInvalidVIN          = errors.New("vin exceeds 17 characters")

	// Quote / invoice errors
	ErrQuoteNotFound   = errors.New("quote not found")
	ErrInvoiceNotFound = errors.New("invoice not found")

	// Appointment errors
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrCancelWindowClosed  = errors.New("cancellation window closed")
	ErrSlotConflict        = errors.New("time slot no longer available")

	// Portal auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrPaymentFailed           = errors.New("payment failed")
)
