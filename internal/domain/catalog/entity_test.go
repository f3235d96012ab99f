//go:build unit

package catalog_test

import (
	"math"
	"testing"

	"mechmobile/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizedText(t *testing.T) {
	full := catalog.LocalizedText{FR: "Changement d'huile", EN: "Oil change"}
	assert.Equal(t, "Changement d'huile", full.In(catalog.LangFR))
	assert.Equal(t, "Oil change", full.In(catalog.LangEN))

	frOnly := catalog.LocalizedText{FR: "Diagnostic"}
	assert.Equal(t, "Diagnostic", frOnly.In(catalog.LangEN))
}

func TestNewCatalog(t *testing.T) {
	cat := catalog.NewCatalog([]catalog.Service{
		{ServiceID: "a", BasePrice: 50},
		{ServiceID: "b", BasePrice: math.Inf(1)},
		{ServiceID: "a", BasePrice: 999}, // duplicate, first wins
	})

	assert.Equal(t, 2, cat.Len())

	first, ok := cat.Find("a")
	require.True(t, ok)
	assert.Equal(t, 50.0, first.BasePrice)

	sanitized, ok := cat.Find("b")
	require.True(t, ok)
	assert.Equal(t, 0.0, sanitized.BasePrice)

	_, ok = cat.Find("missing")
	assert.False(t, ok)

	all := cat.All()
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ServiceID)
	assert.Equal(t, "b", all[1].ServiceID)
}

func TestServiceOption(t *testing.T) {
	svc := catalog.Service{Options: []catalog.ServiceOption{{Price: 20}}}

	opt, ok := svc.Option(0)
	require.True(t, ok)
	assert.Equal(t, 20.0, opt.Price)

	_, ok = svc.Option(1)
	assert.False(t, ok)
	_, ok = svc.Option(-1)
	assert.False(t, ok)
}
