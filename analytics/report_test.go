package analytics

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradebook/journal"
)

func TestSummary(t *testing.T) {
	t.Parallel()

	a := New(records{
		trades: []journal.Trade{
			trade("EURUSD", "Swing", 50, 5, t0.Add(time.Hour)),
			trade("GBPUSD", "", -10, 0, t0.Add(2*time.Hour)),
			trade("GBPUSD", "", 0, 0, t0.Add(3*time.Hour)),
		},
		deposits: []journal.Deposit{
			deposit(journal.DepositIn, 100, t0),
			deposit(journal.Withdrawal, 30, t0),
		},
	})

	s := a.Summary("real", "ZAR", 2)
	assert.Equal(t, 3, s.Trades)
	assert.Equal(t, 1, s.Wins)
	assert.Equal(t, 1, s.Losses)
	assert.InDelta(t, 105, s.Balance, 1e-9)
	assert.InDelta(t, 35, s.TotalPnL, 1e-9)
	assert.InDelta(t, 100, s.Deposited, 1e-9)
	assert.InDelta(t, 30, s.Withdrawn, 1e-9)
	assert.InDelta(t, 4.5, s.ProfitFactor, 1e-9)
	require.Len(t, s.TopSymbols, 2)
	assert.Equal(t, "EURUSD", s.TopSymbols[0].Key)
}

func TestWriteOrg(t *testing.T) {
	t.Parallel()

	a := New(records{
		trades:   []journal.Trade{trade("EURUSD", "Swing", 50, 5, t0.Add(time.Hour))},
		deposits: []journal.Deposit{deposit(journal.DepositIn, 100, t0)},
	})
	s := a.Summary("real", "ZAR", 2)
	s.Generated = t0

	var buf bytes.Buffer
	require.NoError(t, WriteOrg(&buf, s))
	out := buf.String()

	assert.Contains(t, out, "* JOURNAL: real\n")
	assert.Contains(t, out, ":BALANCE:     ZAR 145.00\n")
	assert.Contains(t, out, ":WIN_RATE:    100.0\n")
	assert.Contains(t, out, ":PROFIT_FAC:  -\n")
	assert.Contains(t, out, ":CREATED:     [2024-03-15 Fri 10:00]\n")
	assert.Contains(t, out, "| EURUSD | ZAR 45.00 |")
	assert.Contains(t, out, "| Swing | ZAR 45.00 |")
}

func TestWriteOrgEmpty(t *testing.T) {
	t.Parallel()

	s := New(records{}).Summary("demo", "USD", 2)
	s.Generated = t0

	var buf bytes.Buffer
	require.NoError(t, WriteOrg(&buf, s))
	assert.NotContains(t, buf.String(), "** Top Symbols")
	assert.Contains(t, buf.String(), ":NET_PL:      USD 0.00\n")
}
