package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_ZeroPriorHasNoPercentChange(t *testing.T) {
	tests := []struct {
		name    string
		current int64
	}{
		{name: "both zero", current: 0},
		{name: "positive current", current: 110},
		{name: "large current", current: 1_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Compare(tt.current, 0)

			assert.Equal(t, tt.current, result.CurrentTotal)
			assert.Equal(t, int64(0), result.PriorTotal)
			// No meaningful comparison, distinct from a 0% change.
			assert.Nil(t, result.PercentChange)
		})
	}
}

func TestCompare_SignedDelta(t *testing.T) {
	tests := []struct {
		name    string
		current int64
		prior   int64
		want    float64
	}{
		{name: "ten percent up", current: 110, prior: 100, want: 10.0},
		{name: "ten percent down", current: 90, prior: 100, want: -10.0},
		{name: "flat", current: 100, prior: 100, want: 0.0},
		{name: "doubled", current: 200, prior: 100, want: 100.0},
		{name: "rounded to one decimal", current: 1000, prior: 300, want: 233.3},
		{name: "negative rounded", current: 100, prior: 300, want: -66.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Compare(tt.current, tt.prior)

			require.NotNil(t, result.PercentChange)
			assert.InDelta(t, tt.want, *result.PercentChange, 0.001)
		})
	}
}
