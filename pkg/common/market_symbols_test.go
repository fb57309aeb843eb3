package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMarketSymbols(t *testing.T) {
	tests := []struct {
		category  string
		wantLen   int
		wantFirst string
	}{
		{category: MARKET_FOREX, wantLen: 16, wantFirst: "EUR/USD"},
		{category: MARKET_METALS, wantLen: 6, wantFirst: "XAU/USD"},
		{category: MARKET_CRYPTO, wantLen: 10, wantFirst: "BTC/USD"},
		{category: MARKET_INDICES, wantLen: 9, wantFirst: "US30"},
		{category: MARKET_STOCKS, wantLen: 10, wantFirst: "AAPL"},
		{category: MARKET_COMMODITIES, wantLen: 9, wantFirst: "CL"},
		{category: "", wantLen: 60, wantFirst: "EUR/USD"},
		{category: "bonds", wantLen: 0},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			got := GetMarketSymbols(tt.category)
			require.Len(t, got, tt.wantLen)
			if tt.wantLen == 0 {
				return
			}
			assert.Equal(t, tt.wantFirst, got[0].Symbol)
			if tt.category != "" {
				for _, s := range got {
					assert.Equal(t, tt.category, s.Category)
				}
			}
		})
	}
}
