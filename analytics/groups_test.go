package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/tradebook/journal"
)

func groupMap(groups []GroupProfit) map[string]float64 {
	m := make(map[string]float64, len(groups))
	for _, g := range groups {
		m[g.Key] = g.Profit
	}
	return m
}

func TestProfitGroups(t *testing.T) {
	t.Parallel()

	a := New(records{trades: []journal.Trade{
		trade("EURUSD", "Scalping", 100, 10, t0),
		trade("EURUSD", "Swing", -20, 0, t0),
		trade("", "Scalping", 15, 0, t0),
		trade("GBPUSD", "", 5, 1, t0),
	}})

	assert.Equal(t, map[string]float64{
		"EURUSD":      70,
		UnknownSymbol: 15,
		"GBPUSD":      4,
	}, groupMap(a.ProfitBySymbol()))

	assert.Equal(t, map[string]float64{
		"Scalping":    105,
		"Swing":       -20,
		Uncategorized: 4,
	}, groupMap(a.ProfitByCategory()))
}

func TestTopSymbols(t *testing.T) {
	t.Parallel()

	a := New(records{trades: []journal.Trade{
		trade("USDJPY", "", -5, 0, t0),
		trade("EURUSD", "", 30, 0, t0),
		trade("GBPUSD", "", 50, 0, t0),
		trade("EURUSD", "", 30, 0, t0),
	}})

	top := a.TopSymbols(2)
	assert.Equal(t, []GroupProfit{
		{Key: "EURUSD", Profit: 60},
		{Key: "GBPUSD", Profit: 50},
	}, top)

	assert.Len(t, a.TopSymbols(10), 3)
	assert.Empty(t, a.TopSymbols(0))
}
