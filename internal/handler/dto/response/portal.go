package response

import (
	"mechmobile/internal/pkg/errs"
	"mechmobile/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

// The portal list payloads mirror the read models field for field, so the
// mapping is done structurally instead of by hand.

func FromQuoteRMList(rms []*readmodel.QuoteRM) ([]*QuoteResponse, error) {
	out := make([]*QuoteResponse, 0, len(rms))
	if err := copier.Copy(&out, rms); err != nil {
		return nil, errs.Wrap(err, "failed to map quote list")
	}
	return out, nil
}

func FromInvoiceRMList(rms []*readmodel.InvoiceRM) ([]*InvoiceResponse, error) {
	out := make([]*InvoiceResponse, 0, len(rms))
	if err := copier.Copy(&out, rms); err != nil {
		return nil, errs.Wrap(err, "failed to map invoice list")
	}
	return out, nil
}

func FromAppointmentRMList(rms []*readmodel.AppointmentRM) ([]*AppointmentResponse, error) {
	out := make([]*AppointmentResponse, 0, len(rms))
	if err := copier.Copy(&out, rms); err != nil {
		return nil, errs.Wrap(err, "failed to map appointment list")
	}
	return out, nil
}
