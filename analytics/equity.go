package analytics

import (
	"slices"
	"time"

	"github.com/rustyeddy/tradebook/journal"
)

// Point is the running balance right after one deposit, withdrawal or
// closed trade.
type Point struct {
	Time    time.Time `json:"time"`
	Balance float64   `json:"balance"`
}

// EquityCurve merges deposits (by date) and trades (by exit time) into one
// ascending sequence and emits the cumulative balance after each event.
// A deposit is taken only when it is strictly earlier than the next trade,
// so on equal instants the trade is applied first.
func (a *Analytics) EquityCurve() []Point {
	trades := slices.Clone(a.src.Trades())
	slices.SortStableFunc(trades, func(x, y journal.Trade) int {
		return x.ExitTime.Compare(y.ExitTime)
	})
	deposits := slices.Clone(a.src.Deposits())
	slices.SortStableFunc(deposits, func(x, y journal.Deposit) int {
		return x.Date.Compare(y.Date)
	})

	out := make([]Point, 0, len(trades)+len(deposits))
	var bal float64
	ti, di := 0, 0
	for ti < len(trades) || di < len(deposits) {
		useDeposit := di < len(deposits) &&
			(ti >= len(trades) || deposits[di].Date.Before(trades[ti].ExitTime))

		if useDeposit {
			d := deposits[di]
			bal += d.Signed()
			out = append(out, Point{Time: d.Date, Balance: bal})
			di++
			continue
		}
		t := trades[ti]
		bal += t.Net()
		out = append(out, Point{Time: t.ExitTime, Balance: bal})
		ti++
	}
	return out
}

// MaxDrawdownPct is the largest peak-to-trough fall of the equity curve as
// a percentage of the peak. Peaks at or below zero are skipped.
func (a *Analytics) MaxDrawdownPct() float64 {
	var peak, worst float64
	for _, p := range a.EquityCurve() {
		if p.Balance > peak {
			peak = p.Balance
			continue
		}
		if peak <= 0 {
			continue
		}
		if dd := (peak - p.Balance) / peak * 100; dd > worst {
			worst = dd
		}
	}
	return worst
}
