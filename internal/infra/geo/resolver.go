// Package geo resolves the driving distance between the workshop and a
// customer address. Three resolvers run in a fixed chain: the distance
// matrix API, geocoding plus great-circle estimation, and a static regional
// table. The first success wins; the chain never fails outright since the
// table always answers.
package geo

import (
	"context"
	"math"
	"strings"

	"mechmobile/internal/pkg/errs"
	"mechmobile/internal/pkg/numeric"
)

// Resolver turns a free-form customer address into a driving distance in km
// from the workshop.
type Resolver interface {
	Resolve(ctx context.Context, address string) (Distance, error)
}

// Distance is a resolved driving distance with the resolver that produced
// it, rounded to two decimals.
type Distance struct {
	Km     float64
	Source string
}

var errEmptyAddress = errs.New("empty address")

// Chain tries each resolver in order and returns the first success.
type Chain struct {
	resolvers []Resolver
}

func NewChain(resolvers ...Resolver) *Chain {
	return &Chain{resolvers: resolvers}
}

func (c *Chain) Resolve(ctx context.Context, address string) (Distance, error) {
	// A blank address is not an error, there is just nowhere to drive to.
	if strings.TrimSpace(address) == "" {
		return Distance{}, nil
	}
	var lastErr error
	for _, r := range c.resolvers {
		d, err := r.Resolve(ctx, address)
		if err == nil {
			return d, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = errs.New("no resolver configured")
	}
	return Distance{}, lastErr
}

// roundKm keeps the two-decimal precision shown to customers.
func roundKm(km float64) float64 {
	return numeric.SafeFloat(math.Round(km*100) / 100)
}
