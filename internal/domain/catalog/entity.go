// Package catalog holds the sellable service definitions. Services are
// maintained by back-office tooling and read-only here; the catalog is loaded
// once per session and referenced by the pricing engine.
package catalog

import "mechmobile/internal/pkg/numeric"

// Lang selects which side of a LocalizedText to render.
type Lang string

const (
	LangFR Lang = "fr"
	LangEN Lang = "en"
)

// LocalizedText is a French/English pair. French is the primary language;
// English falls back to French when empty.
type LocalizedText struct {
	FR string `json:"fr"`
	EN string `json:"en"`
}

func (t LocalizedText) In(lang Lang) string {
	if lang == LangEN && t.EN != "" {
		return t.EN
	}
	return t.FR
}

type ServiceOption struct {
	Name  LocalizedText `json:"name"`
	Price float64       `json:"price"`
}

type Service struct {
	ServiceID         string          `json:"service_id"`
	Name              LocalizedText   `json:"name"`
	Description       LocalizedText   `json:"description"`
	BasePrice         float64         `json:"base_price"`
	EstimatedDuration int             `json:"estimated_duration"` // minutes, informational only
	Options           []ServiceOption `json:"options"`
}

// Option returns the option at index, or false for out-of-range references.
// Selections may carry stale indexes after a catalog edit; callers treat a
// missing option as price 0.
func (s Service) Option(index int) (ServiceOption, bool) {
	if index < 0 || index >= len(s.Options) {
		return ServiceOption{}, false
	}
	return s.Options[index], true
}

// Catalog is a read-only lookup over the loaded services.
type Catalog struct {
	byID  map[string]Service
	order []string
}

func NewCatalog(services []Service) *Catalog {
	c := &Catalog{byID: make(map[string]Service, len(services))}
	for _, svc := range services {
		svc.BasePrice = numeric.SafeFloat(svc.BasePrice)
		for i := range svc.Options {
			svc.Options[i].Price = numeric.SafeFloat(svc.Options[i].Price)
		}
		if _, dup := c.byID[svc.ServiceID]; dup {
			continue
		}
		c.byID[svc.ServiceID] = svc
		c.order = append(c.order, svc.ServiceID)
	}
	return c
}

func (c *Catalog) Find(serviceID string) (Service, bool) {
	svc, ok := c.byID[serviceID]
	return svc, ok
}

func (c *Catalog) All() []Service {
	out := make([]Service, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.order)
}
