package journal

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// TradeFilter narrows a trade list. Zero fields match everything.
type TradeFilter struct {
	// From matches trades that exited at or after From.
	From time.Time
	// To is a calendar day; trades exiting any time on that day match.
	To time.Time
	// Symbol is a case-insensitive substring.
	Symbol   string
	Category string
	Type     Side
}

func (f TradeFilter) Active() bool {
	return !f.From.IsZero() || !f.To.IsZero() || f.Symbol != "" || f.Category != "" || f.Type != ""
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

func (f TradeFilter) Match(t Trade) bool {
	if !f.From.IsZero() && t.ExitTime.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && t.ExitTime.After(endOfDay(f.To)) {
		return false
	}
	if f.Symbol != "" && !strings.Contains(strings.ToLower(t.Symbol), strings.ToLower(f.Symbol)) {
		return false
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	return true
}

// FilterTrades returns the trades matching f in their original order.
func FilterTrades(trades []Trade, f TradeFilter) []Trade {
	out := make([]Trade, 0, len(trades))
	for _, t := range trades {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// Sortable trade columns.
const (
	ColSymbol     = "symbol"
	ColType       = "type"
	ColEntryTime  = "entryTime"
	ColExitTime   = "exitTime"
	ColLots       = "lots"
	ColEntryPrice = "entryPrice"
	ColExitPrice  = "exitPrice"
	ColProfit     = "profit"
	ColFees       = "fees"
	ColCategory   = "category"
)

// SortColumns lists the columns TradeSort understands.
var SortColumns = []string{
	ColSymbol, ColType, ColEntryTime, ColExitTime, ColLots,
	ColEntryPrice, ColExitPrice, ColProfit, ColFees, ColCategory,
}

type TradeSort struct {
	Column string
	Desc   bool
}

// DefaultSort shows the most recently closed trades first.
var DefaultSort = TradeSort{Column: ColExitTime, Desc: true}

// Toggle flips the direction when column is already the sort column and
// otherwise switches to column, descending.
func (s TradeSort) Toggle(column string) TradeSort {
	if s.Column == column {
		return TradeSort{Column: column, Desc: !s.Desc}
	}
	return TradeSort{Column: column, Desc: true}
}

func compareTrades(a, b Trade, column string) int {
	switch column {
	case ColSymbol:
		return strings.Compare(strings.ToLower(a.Symbol), strings.ToLower(b.Symbol))
	case ColType:
		return strings.Compare(strings.ToLower(string(a.Type)), strings.ToLower(string(b.Type)))
	case ColCategory:
		return strings.Compare(strings.ToLower(a.Category), strings.ToLower(b.Category))
	case ColEntryTime:
		return a.EntryTime.Compare(b.EntryTime)
	case ColExitTime:
		return a.ExitTime.Compare(b.ExitTime)
	case ColLots:
		return cmp.Compare(a.Lots, b.Lots)
	case ColEntryPrice:
		return cmp.Compare(a.EntryPrice, b.EntryPrice)
	case ColExitPrice:
		return cmp.Compare(a.ExitPrice, b.ExitPrice)
	case ColProfit:
		return cmp.Compare(a.Profit, b.Profit)
	case ColFees:
		return cmp.Compare(a.Fees, b.Fees)
	}
	return 0
}

// SortTrades returns a sorted copy. Equal rows keep their relative order;
// an unknown column leaves the order unchanged.
func SortTrades(trades []Trade, s TradeSort) []Trade {
	out := slices.Clone(trades)
	slices.SortStableFunc(out, func(a, b Trade) int {
		c := compareTrades(a, b, s.Column)
		if s.Desc {
			return -c
		}
		return c
	})
	return out
}

// DefaultPerPage is the trade table page size.
const DefaultPerPage = 20

// Paginate returns the 1-based page of trades and the page count. Pages
// outside the range are clamped; an empty list has one empty page.
func Paginate(trades []Trade, page, perPage int) ([]Trade, int) {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	pages := max(1, (len(trades)+perPage-1)/perPage)
	page = min(max(page, 1), pages)

	start := (page - 1) * perPage
	end := min(start+perPage, len(trades))
	return trades[start:end], pages
}

// TradeView is the state of a trade table: which rows, in what order,
// which page.
type TradeView struct {
	Filter  TradeFilter
	Sort    TradeSort
	Page    int
	PerPage int
}

type TradePage struct {
	Trades     []Trade
	Page       int
	TotalPages int
	// Matched counts the filtered trades across all pages.
	Matched int
}

func (v TradeView) Apply(trades []Trade) TradePage {
	sortBy := v.Sort
	if sortBy.Column == "" {
		sortBy = DefaultSort
	}
	rows := SortTrades(FilterTrades(trades, v.Filter), sortBy)
	items, pages := Paginate(rows, v.Page, v.PerPage)
	return TradePage{
		Trades:     items,
		Page:       min(max(v.Page, 1), pages),
		TotalPages: pages,
		Matched:    len(rows),
	}
}
