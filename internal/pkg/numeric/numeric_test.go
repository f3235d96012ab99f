//go:build unit

package numeric_test

import (
	"math"
	"testing"

	"mechmobile/internal/pkg/numeric"

	"github.com/stretchr/testify/assert"
)

func TestSafeFloat(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{name: "plain float", input: 42.5, want: 42.5},
		{name: "integer", input: 7, want: 7},
		{name: "numeric string", input: "19.99", want: 19.99},
		{name: "nil", input: nil, want: 0},
		{name: "empty string", input: "", want: 0},
		{name: "garbage string", input: "abc", want: 0},
		{name: "NaN", input: math.NaN(), want: 0},
		{name: "positive infinity", input: math.Inf(1), want: 0},
		{name: "negative infinity", input: math.Inf(-1), want: 0},
		{name: "boolean", input: true, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, numeric.SafeFloat(tt.input))
		})
	}
}

func TestSafeFixed(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		decimals int
		want     string
	}{
		{name: "two decimals", input: 174.9935, decimals: 2, want: "174.99"},
		{name: "pads zeros", input: 55, decimals: 2, want: "55.00"},
		{name: "NaN renders as zero", input: math.NaN(), decimals: 2, want: "0.00"},
		{name: "nil renders as zero", input: nil, decimals: 2, want: "0.00"},
		{name: "zero decimals", input: 12.7, decimals: 0, want: "13"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, numeric.SafeFixed(tt.input, tt.decimals))
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 22.79, numeric.Round2(22.792))
	assert.Equal(t, 22.8, numeric.Round2(22.796))
	assert.Equal(t, 0.0, numeric.Round2(0))
}
