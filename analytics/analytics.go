// Package analytics derives account statistics from journal records. It
// keeps no state: every call reads the records afresh.
package analytics

import (
	"gonum.org/v1/gonum/stat"

	"github.com/rustyeddy/tradebook/journal"
)

// Source supplies the current account's records. *journal.Store
// satisfies it.
type Source interface {
	Trades() []journal.Trade
	Deposits() []journal.Deposit
}

type Analytics struct {
	src Source
}

func New(src Source) *Analytics {
	return &Analytics{src: src}
}

// Balance is every deposit signed by its type plus the net profit of every
// trade.
func (a *Analytics) Balance() float64 {
	var bal float64
	for _, d := range a.src.Deposits() {
		bal += d.Signed()
	}
	return bal + a.TotalPnL()
}

// TotalPnL sums the net profit of all trades, ignoring cash movements.
func (a *Analytics) TotalPnL() float64 {
	var sum float64
	for _, t := range a.src.Trades() {
		sum += t.Net()
	}
	return sum
}

// WinRate is the percentage of trades with a positive profit, or 0 when
// there are no trades.
func (a *Analytics) WinRate() float64 {
	trades := a.src.Trades()
	if len(trades) == 0 {
		return 0
	}
	wins := 0
	for _, t := range trades {
		if t.Profit > 0 {
			wins++
		}
	}
	return float64(wins) / float64(len(trades)) * 100
}

func (a *Analytics) profits(keep func(float64) bool) []float64 {
	var out []float64
	for _, t := range a.src.Trades() {
		if p := t.Profit.Float(); keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

// AverageWin is the mean gross profit of winning trades.
func (a *Analytics) AverageWin() float64 {
	return mean(a.profits(func(p float64) bool { return p > 0 }))
}

// AverageLoss is the mean gross profit of losing trades. It is negative.
func (a *Analytics) AverageLoss() float64 {
	return mean(a.profits(func(p float64) bool { return p < 0 }))
}

// ProfitFactor divides the net profit of winning trades by the absolute
// net loss of losing trades. It is 0 when nothing was lost.
func (a *Analytics) ProfitFactor() float64 {
	var gross, loss float64
	for _, t := range a.src.Trades() {
		switch n := t.Net(); {
		case n > 0:
			gross += n
		case n < 0:
			loss -= n
		}
	}
	if loss == 0 {
		return 0
	}
	return gross / loss
}

// DepositTotals returns the sum of deposits and the sum of withdrawals,
// both as positive amounts.
func (a *Analytics) DepositTotals() (deposits, withdrawals float64) {
	for _, d := range a.src.Deposits() {
		if d.Type == journal.DepositIn {
			deposits += d.Amount.Float()
		} else {
			withdrawals += d.Amount.Float()
		}
	}
	return deposits, withdrawals
}
