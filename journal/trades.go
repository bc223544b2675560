package journal

import (
	"fmt"
	"time"
)

// TradePatch holds the trade fields an update changes. It has no ID or
// CreatedAt, so neither can be overwritten, and a JSON patch carrying
// them has those keys dropped on decode.
type TradePatch struct {
	Symbol     *string    `json:"symbol,omitempty"`
	Type       *Side      `json:"type,omitempty"`
	EntryTime  *time.Time `json:"entryTime,omitempty"`
	ExitTime   *time.Time `json:"exitTime,omitempty"`
	Lots       *Number    `json:"lots,omitempty"`
	EntryPrice *Number    `json:"entryPrice,omitempty"`
	ExitPrice  *Number    `json:"exitPrice,omitempty"`
	Profit     *Number    `json:"profit,omitempty"`
	Currency   *string    `json:"currency,omitempty"`
	Fees       *Number    `json:"fees,omitempty"`
	Category   *string    `json:"category,omitempty"`
	Notes      *string    `json:"notes,omitempty"`
}

func (p TradePatch) apply(t *Trade) {
	setIf(&t.Symbol, p.Symbol)
	setIf(&t.Type, p.Type)
	setIf(&t.EntryTime, p.EntryTime)
	setIf(&t.ExitTime, p.ExitTime)
	setIf(&t.Lots, p.Lots)
	setIf(&t.EntryPrice, p.EntryPrice)
	setIf(&t.ExitPrice, p.ExitPrice)
	setIf(&t.Profit, p.Profit)
	setIf(&t.Currency, p.Currency)
	setIf(&t.Fees, p.Fees)
	setIf(&t.Category, p.Category)
	setIf(&t.Notes, p.Notes)
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// Trades returns the current account's trades. The slice is live.
func (s *Store) Trades() []Trade {
	return s.account().Trades
}

func (s *Store) Trade(id string) (Trade, bool) {
	i := s.tradeIndex(id)
	if i < 0 {
		return Trade{}, false
	}
	return s.account().Trades[i], true
}

func (s *Store) tradeIndex(id string) int {
	for i, t := range s.account().Trades {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) stamp(t Trade) Trade {
	t.ID = s.newID()
	t.CreatedAt = s.now().UTC()
	return t
}

// AddTrade stores t under a fresh id and creation time and returns the
// stored record. Any ID or CreatedAt on t is ignored. The record is
// returned even when the save fails.
func (s *Store) AddTrade(t Trade) (Trade, error) {
	t = s.stamp(t)
	acct := s.account()
	acct.Trades = append(acct.Trades, t)
	return t, s.commit("add trade")
}

// ImportTrades adds every trade with fresh ids and saves once.
func (s *Store) ImportTrades(trades []Trade) ([]Trade, error) {
	if len(trades) == 0 {
		return nil, nil
	}
	acct := s.account()
	out := make([]Trade, 0, len(trades))
	for _, t := range trades {
		t = s.stamp(t)
		acct.Trades = append(acct.Trades, t)
		out = append(out, t)
	}
	return out, s.commit(fmt.Sprintf("import %d trades", len(out)))
}

// UpdateTrade merges p over the trade with the given id. It returns
// ErrNotFound, without saving, when no such trade exists.
func (s *Store) UpdateTrade(id string, p TradePatch) (Trade, error) {
	i := s.tradeIndex(id)
	if i < 0 {
		return Trade{}, fmt.Errorf("trade %q: %w", id, ErrNotFound)
	}
	t := &s.account().Trades[i]
	p.apply(t)
	return *t, s.commit("update trade")
}

// DeleteTrade removes the trade with the given id and reports whether it
// existed.
func (s *Store) DeleteTrade(id string) (bool, error) {
	return s.DeleteTrades([]string{id})
}

// DeleteTrades removes every trade whose id is listed and reports whether
// anything was removed. Unknown ids are ignored.
func (s *Store) DeleteTrades(ids []string) (bool, error) {
	n, err := s.RemoveTrades(ids)
	return n > 0, err
}

// RemoveTrades is DeleteTrades returning how many trades were removed.
// Nothing is saved when the count is zero.
func (s *Store) RemoveTrades(ids []string) (int, error) {
	acct := s.account()
	kept, removed := removeByID(acct.Trades, ids, func(t Trade) string { return t.ID })
	if removed == 0 {
		return 0, nil
	}
	acct.Trades = kept
	return removed, s.commit(fmt.Sprintf("delete %d trades", removed))
}

func removeByID[T any](items []T, ids []string, idOf func(T) string) ([]T, int) {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := make([]T, 0, len(items))
	for _, it := range items {
		if _, ok := drop[idOf(it)]; ok {
			continue
		}
		kept = append(kept, it)
	}
	return kept, len(items) - len(kept)
}
