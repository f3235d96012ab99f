// Package calendar adapts the Google Calendar REST API for busy-interval
// lookups and appointment events.
package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"mechmobile/internal/domain/schedule"
	"mechmobile/internal/pkg/config"
	"mechmobile/internal/pkg/errs"
)

type GoogleCalendar struct {
	baseURL    string
	calendarID string
	token      string
	client     *http.Client
}

func NewGoogleCalendar(cfg config.CalendarConfig) *GoogleCalendar {
	return &GoogleCalendar{
		baseURL:    cfg.BaseURL,
		calendarID: cfg.CalendarID,
		token:      cfg.AccessToken,
		client:     &http.Client{Timeout: cfg.Timeout},
	}
}

type eventTime struct {
	DateTime time.Time `json:"dateTime"`
	TimeZone string    `json:"timeZone,omitempty"`
}

type calendarEvent struct {
	ID          string    `json:"id,omitempty"`
	Summary     string    `json:"summary"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Start       eventTime `json:"start"`
	End         eventTime `json:"end"`
}

type eventList struct {
	Items []calendarEvent `json:"items"`
}

// ListBusyIntervals returns the event windows between from and to. Callers
// treat any error as "calendar unreachable" and degrade rather than fail.
func (g *GoogleCalendar) ListBusyIntervals(ctx context.Context, from, to time.Time) ([]schedule.Interval, error) {
	params := url.Values{}
	params.Set("timeMin", from.Format(time.RFC3339))
	params.Set("timeMax", to.Format(time.RFC3339))
	params.Set("singleEvents", "true")
	params.Set("orderBy", "startTime")

	endpoint := g.baseURL + "/calendars/" + url.PathEscape(g.calendarID) + "/events?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build calendar list request")
	}
	g.authorize(req)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "calendar list request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.New("calendar list returned status " + resp.Status)
	}

	var list eventList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, errs.Wrap(err, "failed to decode calendar list response")
	}

	intervals := make([]schedule.Interval, 0, len(list.Items))
	for _, ev := range list.Items {
		intervals = append(intervals, schedule.Interval{Start: ev.Start.DateTime, End: ev.End.DateTime})
	}
	return intervals, nil
}

// CreateEvent re-checks the slot against current busy intervals immediately
// before creating, closing most of the race between the availability lookup
// and the booking submit. A conflict surfaces as ErrSlotConflict.
func (g *GoogleCalendar) CreateEvent(ctx context.Context, slot schedule.TimeSlot, summary, description, location string) (string, error) {
	busy, err := g.ListBusyIntervals(ctx, slot.Start, slot.End)
	if err == nil {
		for _, iv := range busy {
			if iv.Overlaps(slot.Start, slot.End) {
				return "", errs.Mark(errs.New("slot taken on calendar"), errs.ErrSlotConflict)
			}
		}
	}

	payload := calendarEvent{
		Summary:     summary,
		Description: description,
		Location:    location,
		Start:       eventTime{DateTime: slot.Start, TimeZone: slot.Start.Location().String()},
		End:         eventTime{DateTime: slot.End, TimeZone: slot.End.Location().String()},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", errs.Wrap(err, "failed to marshal calendar event")
	}

	endpoint := g.baseURL + "/calendars/" + url.PathEscape(g.calendarID) + "/events"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errs.Wrap(err, "failed to build calendar create request")
	}
	req.Header.Set("Content-Type", "application/json")
	g.authorize(req)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "calendar create request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", errs.New("calendar create returned status " + resp.Status)
	}

	var created calendarEvent
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", errs.Wrap(err, "failed to decode calendar create response")
	}
	return created.ID, nil
}

// DeleteEvent removes a calendar event after a cancellation.
func (g *GoogleCalendar) DeleteEvent(ctx context.Context, eventID string) error {
	endpoint := g.baseURL + "/calendars/" + url.PathEscape(g.calendarID) + "/events/" + url.PathEscape(eventID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return errs.Wrap(err, "failed to build calendar delete request")
	}
	g.authorize(req)

	resp, err := g.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "calendar delete request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusGone {
		return errs.New("calendar delete returned status " + resp.Status)
	}
	return nil
}

func (g *GoogleCalendar) authorize(req *http.Request) {
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}
}
