package pricing_test

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/internal/domains/reservation/pricing"
	"hotel/shared/failure"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name      string
		price     string
		nights    int
		wantBase  string
		wantTax   string
		wantGrand string
		wantErr   bool
	}{
		{
			name:      "three nights at 100.00",
			price:     "100.00",
			nights:    3,
			wantBase:  "300.00",
			wantTax:   "27.00",
			wantGrand: "327.00",
		},
		{
			name:      "single night",
			price:     "85.50",
			nights:    1,
			wantBase:  "85.50",
			wantTax:   "7.70",
			wantGrand: "93.20",
		},
		{
			name:      "fractional tax rounded at the boundary",
			price:     "33.33",
			nights:    3,
			wantBase:  "99.99",
			wantTax:   "9.00",
			wantGrand: "108.99",
		},
		{
			name:      "free room",
			price:     "0",
			nights:    2,
			wantBase:  "0.00",
			wantTax:   "0.00",
			wantGrand: "0.00",
		},
		{
			name:    "zero nights",
			price:   "100.00",
			nights:  0,
			wantErr: true,
		},
		{
			name:    "negative nights",
			price:   "100.00",
			nights:  -2,
			wantErr: true,
		},
		{
			name:    "negative price",
			price:   "-1.00",
			nights:  1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals, err := pricing.ComputeTotals(decimal.RequireFromString(tt.price), tt.nights)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)

			rounded := totals.Rounded()
			assert.Equal(t, tt.wantBase, rounded.Base.StringFixed(2))
			assert.Equal(t, tt.wantTax, rounded.Tax.StringFixed(2))
			assert.Equal(t, tt.wantGrand, rounded.Grand.StringFixed(2))
		})
	}
}

func TestComputeTotals_Deterministic(t *testing.T) {
	price := decimal.RequireFromString("149.99")

	first, err := pricing.ComputeTotals(price, 4)
	require.NoError(t, err)

	second, err := pricing.ComputeTotals(price, 4)
	require.NoError(t, err)

	assert.True(t, first.Grand.Equal(second.Grand))
	assert.True(t, first.Base.Add(first.Tax).Equal(first.Grand))
}
