// Package mail sends transactional email through EmailJS templates: quotes,
// booking confirmations and refund notices.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"mechmobile/internal/pkg/config"
	"mechmobile/internal/pkg/errs"
	"mechmobile/internal/pkg/numeric"
)

const (
	templateQuote               = "quote_template"
	templateBookingConfirmation = "booking_confirmation_template"
	templateRefundNotification  = "refund_notification_template"

	companyName  = "JJ Mécanique"
	companyPhone = "(514) 555-0123"
	companyEmail = "info@jjmecanique.ca"
)

type EmailJSSender struct {
	baseURL   string
	serviceID string
	publicKey string
	client    *http.Client
}

func NewEmailJSSender(cfg config.MailConfig) *EmailJSSender {
	return &EmailJSSender{
		baseURL:   cfg.BaseURL,
		serviceID: cfg.ServiceID,
		publicKey: cfg.PublicKey,
		client:    &http.Client{Timeout: cfg.Timeout},
	}
}

// ServiceLine is one priced line rendered into the services_list template
// variable.
type ServiceLine struct {
	Name     string
	Quantity int
	Total    float64
}

func renderServiceLines(lines []ServiceLine) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, fmt.Sprintf("%s x%d - %s$", l.Name, l.Quantity, numeric.SafeFixed(l.Total, 2)))
	}
	return strings.Join(parts, "\n")
}

type QuoteEmail struct {
	To           string
	CustomerName string
	Lines        []ServiceLine
	Total        float64
	DistanceKm   float64
	ServiceDate  time.Time
	Address      string
}

func (s *EmailJSSender) SendQuote(ctx context.Context, m QuoteEmail) error {
	return s.send(ctx, templateQuote, map[string]string{
		"to_email":        m.To,
		"to_name":         m.CustomerName,
		"subject":         "Votre soumission - " + companyName,
		"customer_name":   m.CustomerName,
		"services_list":   renderServiceLines(m.Lines),
		"total_amount":    numeric.SafeFixed(m.Total, 2),
		"distance":        numeric.SafeFixed(m.DistanceKm, 2),
		"service_date":    m.ServiceDate.Format("2006-01-02"),
		"service_address": m.Address,
	})
}

type BookingConfirmationEmail struct {
	To            string
	CustomerName  string
	InvoiceNumber string
	Lines         []ServiceLine
	Total         float64
	ServiceDate   time.Time
	SlotLabel     string
	Address       string
	PartsByShop   bool
}

func (s *EmailJSSender) SendBookingConfirmation(ctx context.Context, m BookingConfirmationEmail) error {
	nextSteps := "Votre réservation est confirmée. Nous vous contacterons 24h avant le rendez-vous."
	partsOption := "Je fournis mes pièces"
	if m.PartsByShop {
		nextSteps = "Un agent du service clientèle vous contactera sous 2 heures pour confirmer le prix des pièces."
		partsOption = "Recherche de pièces par l'atelier"
	}
	return s.send(ctx, templateBookingConfirmation, map[string]string{
		"to_email":        m.To,
		"to_name":         m.CustomerName,
		"subject":         "Confirmation de réservation - " + companyName,
		"customer_name":   m.CustomerName,
		"invoice_id":      m.InvoiceNumber,
		"services_list":   renderServiceLines(m.Lines),
		"total_amount":    numeric.SafeFixed(m.Total, 2),
		"service_date":    m.ServiceDate.Format("2006-01-02"),
		"time_slot":       m.SlotLabel,
		"service_address": m.Address,
		"parts_option":    partsOption,
		"next_steps":      nextSteps,
	})
}

type RefundEmail struct {
	To            string
	CustomerName  string
	Amount        float64
	Reason        string
	InvoiceNumber string
}

func (s *EmailJSSender) SendRefundNotification(ctx context.Context, m RefundEmail) error {
	return s.send(ctx, templateRefundNotification, map[string]string{
		"to_email":            m.To,
		"to_name":             m.CustomerName,
		"subject":             "Remboursement - " + companyName,
		"customer_name":       m.CustomerName,
		"refund_amount":       numeric.SafeFixed(m.Amount, 2),
		"refund_reason":       m.Reason,
		"original_booking_id": m.InvoiceNumber,
		"processing_time":     "3-5 jours ouvrables",
	})
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

func (s *EmailJSSender) send(ctx context.Context, templateID string, params map[string]string) error {
	params["company_name"] = companyName
	params["company_phone"] = companyPhone
	params["company_email"] = companyEmail

	body, err := json.Marshal(sendRequest{
		ServiceID:      s.serviceID,
		TemplateID:     templateID,
		UserID:         s.publicKey,
		TemplateParams: params,
	})
	if err != nil {
		return errs.Wrap(err, "failed to marshal email request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build email request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "email request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errs.New("email api returned status " + resp.Status)
	}
	return nil
}
