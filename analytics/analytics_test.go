package analytics

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradebook/journal"
	"github.com/rustyeddy/tradebook/storage"
)

var t0 = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

type records struct {
	trades   []journal.Trade
	deposits []journal.Deposit
}

func (r records) Trades() []journal.Trade     { return r.trades }
func (r records) Deposits() []journal.Deposit { return r.deposits }

func trade(symbol, category string, profit, fees float64, exit time.Time) journal.Trade {
	return journal.Trade{
		Symbol:   symbol,
		Type:     journal.Buy,
		Category: category,
		Profit:   journal.Number(profit),
		Fees:     journal.Number(fees),
		ExitTime: exit,
	}
}

func deposit(typ journal.DepositType, amount float64, date time.Time) journal.Deposit {
	return journal.Deposit{Type: typ, Amount: journal.Number(amount), Date: date}
}

func TestBalance(t *testing.T) {
	t.Parallel()

	a := New(records{
		trades: []journal.Trade{trade("EURUSD", "", 50, 5, t0)},
		deposits: []journal.Deposit{
			deposit(journal.DepositIn, 100, t0),
			deposit(journal.Withdrawal, 30, t0),
		},
	})
	assert.InDelta(t, 115, a.Balance(), 1e-9)
	assert.InDelta(t, 45, a.TotalPnL(), 1e-9)

	in, out := a.DepositTotals()
	assert.InDelta(t, 100, in, 1e-9)
	assert.InDelta(t, 30, out, 1e-9)
}

func TestEmptyAccount(t *testing.T) {
	t.Parallel()

	a := New(records{})
	assert.Zero(t, a.Balance())
	assert.Zero(t, a.TotalPnL())
	assert.Zero(t, a.WinRate())
	assert.Zero(t, a.AverageWin())
	assert.Zero(t, a.AverageLoss())
	assert.Zero(t, a.ProfitFactor())
	assert.Zero(t, a.MaxDrawdownPct())
	assert.Empty(t, a.EquityCurve())
	assert.Empty(t, a.ProfitBySymbol())
}

func TestWinRateAndAverages(t *testing.T) {
	t.Parallel()

	a := New(records{trades: []journal.Trade{
		trade("EURUSD", "", 100, 0, t0),
		trade("EURUSD", "", 50, 0, t0),
		trade("GBPUSD", "", -30, 0, t0),
		trade("GBPUSD", "", 0, 0, t0),
	}})

	assert.InDelta(t, 50, a.WinRate(), 1e-9)
	assert.InDelta(t, 75, a.AverageWin(), 1e-9)
	assert.InDelta(t, -30, a.AverageLoss(), 1e-9)
}

func TestAveragesUseGrossProfit(t *testing.T) {
	t.Parallel()

	// Fees reduce the balance but are not part of the win/loss averages.
	a := New(records{trades: []journal.Trade{
		trade("EURUSD", "", 10, 15, t0),
	}})
	assert.InDelta(t, 100, a.WinRate(), 1e-9)
	assert.InDelta(t, 10, a.AverageWin(), 1e-9)
	assert.Zero(t, a.AverageLoss())
	assert.InDelta(t, -5, a.TotalPnL(), 1e-9)
}

func TestProfitFactor(t *testing.T) {
	t.Parallel()

	a := New(records{trades: []journal.Trade{
		trade("EURUSD", "", 110, 10, t0),
		trade("EURUSD", "", 60, 0, t0),
		trade("EURUSD", "", -45, 5, t0),
	}})
	assert.InDelta(t, 3.2, a.ProfitFactor(), 1e-9)

	onlyWins := New(records{trades: []journal.Trade{trade("EURUSD", "", 10, 0, t0)}})
	assert.Zero(t, onlyWins.ProfitFactor())
}

func TestStoreIsSource(t *testing.T) {
	t.Parallel()

	s, err := journal.Open(journal.NewKVBackend(storage.NewMemory(), ""),
		journal.WithLogger(zerolog.Nop()),
		journal.WithClock(func() time.Time { return t0 }),
	)
	require.NoError(t, err)

	_, err = s.AddDeposit(deposit(journal.DepositIn, 1000, t0))
	require.NoError(t, err)
	_, err = s.AddTrade(trade("EURUSD", "Swing", 250, 10, t0.Add(time.Hour)))
	require.NoError(t, err)

	a := New(s)
	assert.InDelta(t, 1240, a.Balance(), 1e-9)

	require.NoError(t, s.SwitchAccount(journal.Demo))
	assert.Zero(t, a.Balance(), "analytics follow the current account")
}
