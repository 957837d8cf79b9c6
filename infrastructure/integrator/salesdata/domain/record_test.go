package salesdatadomain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected FlexibleAmount
	}{
		{name: "number", payload: `12500`, expected: 12500},
		{name: "float number", payload: `12500.9`, expected: 12500},
		{name: "numeric string", payload: `"12500"`, expected: 12500},
		{name: "float string", payload: `"12500.9"`, expected: 12500},
		{name: "null", payload: `null`, expected: 0},
		{name: "empty string", payload: `""`, expected: 0},
		{name: "garbage string", payload: `"n/a"`, expected: 0},
		{name: "boolean", payload: `true`, expected: 0},
		{name: "negative", payload: `-300`, expected: -300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var amount FlexibleAmount
			err := json.Unmarshal([]byte(tt.payload), &amount)
			require.NoError(t, err, "bad rows must decode to 0, not fail")
			assert.Equal(t, tt.expected, amount)
		})
	}
}

func TestSalesRow_UnmarshalMixedAmounts(t *testing.T) {
	payload := `[
		{"sales_date": "2025-03-01", "location_id": 2, "amount": 1000, "category": "飲料"},
		{"sales_date": "2025-03-01", "location_id": 2, "amount": "2000", "category": "酒類"},
		{"sales_date": "2025-03-02", "location_id": 4, "amount": null, "category": "飲料"}
	]`

	var rows []SalesRow
	require.NoError(t, json.Unmarshal([]byte(payload), &rows))
	require.Len(t, rows, 3)

	assert.Equal(t, FlexibleAmount(1000), rows[0].Amount)
	assert.Equal(t, FlexibleAmount(2000), rows[1].Amount)
	assert.Equal(t, FlexibleAmount(0), rows[2].Amount)
}
