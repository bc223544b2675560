package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/analytics"
	"github.com/rustyeddy/tradebook/journal"
)

func newStatsCmd(a *app) *cobra.Command {
	var org bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show account statistics",
		Long: `Print balance, P/L, win rate and the best symbols of the current account.

Use --org to get an Org-mode block suitable for pasting into a notes file.`,
		Args: cobra.NoArgs,
	}
	cmd.Flags().BoolVar(&org, "org", false, "print as an Org-mode block")

	cmd.RunE = a.withStore(func(cmd *cobra.Command, s *journal.Store, args []string) error {
		set := s.Settings()
		sum := analytics.New(s).Summary(string(s.Account()), set.Currency, set.Decimals)
		sum.Generated = time.Now()

		out := cmd.OutOrStdout()
		if org {
			return analytics.WriteOrg(out, sum)
		}

		money := func(v float64) string { return analytics.FormatMoney(v, sum.Currency, sum.Decimals) }
		fmt.Fprintf(out, "Account: %s\n", sum.Account)
		fmt.Fprintf(out, "  Balance:       %s\n", money(sum.Balance))
		fmt.Fprintf(out, "  Net P/L:       %s\n", money(sum.TotalPnL))
		fmt.Fprintf(out, "  Trades:        %d (%d won, %d lost)\n", sum.Trades, sum.Wins, sum.Losses)
		fmt.Fprintf(out, "  Win Rate:      %.1f%%\n", sum.WinRate)
		fmt.Fprintf(out, "  Average Win:   %s\n", money(sum.AverageWin))
		fmt.Fprintf(out, "  Average Loss:  %s\n", money(sum.AverageLoss))
		fmt.Fprintf(out, "  Profit Factor: %.2f\n", sum.ProfitFactor)
		fmt.Fprintf(out, "  Max Drawdown:  %.2f%%\n", sum.MaxDrawdownPct)
		if len(sum.TopSymbols) > 0 {
			fmt.Fprintln(out, "\nTop symbols:")
			for _, g := range sum.TopSymbols {
				fmt.Fprintf(out, "  %-12s %s\n", g.Key, money(g.Profit))
			}
		}
		return nil
	})
	return cmd
}

func newEquityCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "equity",
		Short: "Print the equity curve",
		Long: `Print the running balance after every deposit, withdrawal and trade
of the current account, oldest first.`,
		Args: cobra.NoArgs,
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the curve as JSON")

	cmd.RunE = a.withStore(func(cmd *cobra.Command, s *journal.Store, args []string) error {
		curve := analytics.New(s).EquityCurve()
		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(curve)
		}
		set := s.Settings()
		for _, p := range curve {
			fmt.Fprintf(out, "%-16s  %s\n", displayTime(p.Time), analytics.FormatMoney(p.Balance, set.Currency, set.Decimals))
		}
		return nil
	})
	return cmd
}
