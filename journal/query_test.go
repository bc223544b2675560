package journal

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d, h int) time.Time {
	return time.Date(2024, 4, d, h, 0, 0, 0, time.UTC)
}

func queryTrades() []Trade {
	return []Trade{
		{ID: "a", Symbol: "EURUSD", Type: Buy, ExitTime: day(10, 9), Profit: 50, Category: "Scalping"},
		{ID: "b", Symbol: "gbpusd", Type: Sell, ExitTime: day(11, 23), Profit: -20, Category: "Swing"},
		{ID: "c", Symbol: "XAUUSD", Type: Buy, ExitTime: day(12, 0), Profit: 10, Category: "Scalping"},
		{ID: "d", Symbol: "EURJPY", Type: Sell, ExitTime: day(13, 12), Profit: 50, Category: ""},
	}
}

func ids(trades []Trade) []string {
	out := make([]string, len(trades))
	for i, t := range trades {
		out[i] = t.ID
	}
	return out
}

func TestFilterTrades(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		filter TradeFilter
		want   []string
	}{
		{"no filter", TradeFilter{}, []string{"a", "b", "c", "d"}},
		{"from inclusive", TradeFilter{From: day(11, 23)}, []string{"b", "c", "d"}},
		{"to covers whole day", TradeFilter{To: day(11, 0)}, []string{"a", "b"}},
		{"range", TradeFilter{From: day(11, 0), To: day(12, 0)}, []string{"b", "c"}},
		{"symbol substring ignores case", TradeFilter{Symbol: "usd"}, []string{"a", "b", "c"}},
		{"symbol prefix", TradeFilter{Symbol: "EUR"}, []string{"a", "d"}},
		{"category exact", TradeFilter{Category: "Scalping"}, []string{"a", "c"}},
		{"type", TradeFilter{Type: Sell}, []string{"b", "d"}},
		{"combined", TradeFilter{Symbol: "eur", Type: Buy}, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterTrades(queryTrades(), tt.filter)))
		})
	}
}

func TestTradeFilterActive(t *testing.T) {
	t.Parallel()

	assert.False(t, TradeFilter{}.Active())
	assert.True(t, TradeFilter{Type: Buy}.Active())
	assert.True(t, TradeFilter{To: day(1, 0)}.Active())
}

func TestSortTrades(t *testing.T) {
	t.Parallel()

	trades := queryTrades()

	assert.Equal(t, []string{"d", "c", "b", "a"}, ids(SortTrades(trades, DefaultSort)))
	assert.Equal(t, []string{"d", "a", "b", "c"}, ids(SortTrades(trades, TradeSort{Column: ColSymbol})))
	// Equal profits keep input order in both directions.
	assert.Equal(t, []string{"b", "c", "a", "d"}, ids(SortTrades(trades, TradeSort{Column: ColProfit})))
	assert.Equal(t, []string{"a", "d", "c", "b"}, ids(SortTrades(trades, TradeSort{Column: ColProfit, Desc: true})))
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(SortTrades(trades, TradeSort{Column: "bogus"})))

	// Input is not reordered.
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(trades))
}

func TestTradeSortToggle(t *testing.T) {
	t.Parallel()

	s := DefaultSort.Toggle(ColExitTime)
	assert.Equal(t, TradeSort{Column: ColExitTime, Desc: false}, s)
	s = s.Toggle(ColExitTime)
	assert.Equal(t, TradeSort{Column: ColExitTime, Desc: true}, s)
	s = TradeSort{Column: ColExitTime}.Toggle(ColSymbol)
	assert.Equal(t, TradeSort{Column: ColSymbol, Desc: true}, s)
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	trades := make([]Trade, 45)
	for i := range trades {
		trades[i].ID = fmt.Sprint(i)
	}

	page, pages := Paginate(trades, 1, 20)
	assert.Equal(t, 3, pages)
	require.Len(t, page, 20)
	assert.Equal(t, "0", page[0].ID)

	page, _ = Paginate(trades, 3, 20)
	require.Len(t, page, 5)
	assert.Equal(t, "40", page[0].ID)

	page, _ = Paginate(trades, 99, 20)
	assert.Len(t, page, 5, "clamped to last page")

	page, _ = Paginate(trades, 0, 0)
	assert.Len(t, page, DefaultPerPage)

	page, pages = Paginate(nil, 1, 20)
	assert.Empty(t, page)
	assert.Equal(t, 1, pages)
}

func TestTradeViewApply(t *testing.T) {
	t.Parallel()

	v := TradeView{Filter: TradeFilter{Symbol: "usd"}, PerPage: 2, Page: 2}
	got := v.Apply(queryTrades())

	assert.Equal(t, 3, got.Matched)
	assert.Equal(t, 2, got.TotalPages)
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, []string{"a"}, ids(got.Trades))
}
