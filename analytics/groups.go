package analytics

import (
	"cmp"
	"slices"

	"github.com/rustyeddy/tradebook/journal"
)

const (
	UnknownSymbol = "Unknown"
	Uncategorized = "Uncategorized"
)

// GroupProfit is the summed net profit of the trades sharing Key.
type GroupProfit struct {
	Key    string  `json:"key"`
	Profit float64 `json:"profit"`
}

func (a *Analytics) groupBy(key func(journal.Trade) string) []GroupProfit {
	idx := map[string]int{}
	var out []GroupProfit
	for _, t := range a.src.Trades() {
		k := key(t)
		i, ok := idx[k]
		if !ok {
			i = len(out)
			idx[k] = i
			out = append(out, GroupProfit{Key: k})
		}
		out[i].Profit += t.Net()
	}
	return out
}

// ProfitBySymbol returns one entry per symbol. Trades without a symbol are
// grouped under UnknownSymbol. Order is unspecified.
func (a *Analytics) ProfitBySymbol() []GroupProfit {
	return a.groupBy(func(t journal.Trade) string {
		return cmp.Or(t.Symbol, UnknownSymbol)
	})
}

// ProfitByCategory returns one entry per category. Trades without a
// category are grouped under Uncategorized. Order is unspecified.
func (a *Analytics) ProfitByCategory() []GroupProfit {
	return a.groupBy(func(t journal.Trade) string {
		return cmp.Or(t.Category, Uncategorized)
	})
}

// TopSymbols returns at most n symbols ordered by profit, best first.
func (a *Analytics) TopSymbols(n int) []GroupProfit {
	groups := a.ProfitBySymbol()
	slices.SortStableFunc(groups, func(x, y GroupProfit) int {
		return cmp.Compare(y.Profit, x.Profit)
	})
	if n >= 0 && len(groups) > n {
		groups = groups[:n]
	}
	return groups
}
