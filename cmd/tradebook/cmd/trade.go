package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rustyeddy/tradebook/analytics"
	"github.com/rustyeddy/tradebook/journal"
)

type tradeFlags struct {
	symbol     string
	side       string
	entryTime  string
	exitTime   string
	lots       float64
	entryPrice float64
	exitPrice  float64
	profit     float64
	fees       float64
	currency   string
	category   string
	notes      string
}

func (f *tradeFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.symbol, "symbol", "", "instrument symbol, e.g. EURUSD")
	fs.StringVar(&f.side, "type", "buy", "buy or sell")
	fs.StringVar(&f.entryTime, "entry-time", "", "entry time (YYYY-MM-DD[ HH:MM] or RFC3339)")
	fs.StringVar(&f.exitTime, "exit-time", "", "exit time (YYYY-MM-DD[ HH:MM] or RFC3339)")
	fs.Float64Var(&f.lots, "lots", 0, "position size in lots")
	fs.Float64Var(&f.entryPrice, "entry-price", 0, "entry price")
	fs.Float64Var(&f.exitPrice, "exit-price", 0, "exit price")
	fs.Float64Var(&f.profit, "profit", 0, "gross profit, negative for a loss")
	fs.Float64Var(&f.fees, "fees", 0, "commission and swap")
	fs.StringVar(&f.currency, "currency", "", "trade currency (default account currency)")
	fs.StringVar(&f.category, "category", "", "strategy category")
	fs.StringVar(&f.notes, "notes", "", "free-form notes")
}

// trade builds a new trade from every flag, set or not.
func (f *tradeFlags) trade(currency string) (journal.Trade, error) {
	side, err := parseSide(f.side)
	if err != nil {
		return journal.Trade{}, err
	}
	t := journal.Trade{
		Symbol:     f.symbol,
		Type:       side,
		Lots:       journal.Number(f.lots),
		EntryPrice: journal.Number(f.entryPrice),
		ExitPrice:  journal.Number(f.exitPrice),
		Profit:     journal.Number(f.profit),
		Fees:       journal.Number(f.fees),
		Currency:   f.currency,
		Category:   f.category,
		Notes:      f.notes,
	}
	if t.Currency == "" {
		t.Currency = currency
	}
	if f.entryTime != "" {
		if t.EntryTime, err = parseTime(f.entryTime); err != nil {
			return t, fmt.Errorf("--entry-time: %w", err)
		}
	}
	if f.exitTime != "" {
		if t.ExitTime, err = parseTime(f.exitTime); err != nil {
			return t, fmt.Errorf("--exit-time: %w", err)
		}
	}
	return t, nil
}

// patch collects the flags the user set into a TradePatch.
func (f *tradeFlags) patch(fs *pflag.FlagSet) (journal.TradePatch, error) {
	var p journal.TradePatch
	if fs.Changed("symbol") {
		p.Symbol = &f.symbol
	}
	if fs.Changed("type") {
		side, err := parseSide(f.side)
		if err != nil {
			return p, err
		}
		p.Type = &side
	}
	for _, tf := range []struct {
		name string
		raw  string
		dst  **time.Time
	}{
		{"entry-time", f.entryTime, &p.EntryTime},
		{"exit-time", f.exitTime, &p.ExitTime},
	} {
		if !fs.Changed(tf.name) {
			continue
		}
		t, err := parseTime(tf.raw)
		if err != nil {
			return p, fmt.Errorf("--%s: %w", tf.name, err)
		}
		*tf.dst = &t
	}
	for _, nf := range []struct {
		name string
		v    float64
		dst  **journal.Number
	}{
		{"lots", f.lots, &p.Lots},
		{"entry-price", f.entryPrice, &p.EntryPrice},
		{"exit-price", f.exitPrice, &p.ExitPrice},
		{"profit", f.profit, &p.Profit},
		{"fees", f.fees, &p.Fees},
	} {
		if fs.Changed(nf.name) {
			n := journal.Number(nf.v)
			*nf.dst = &n
		}
	}
	if fs.Changed("currency") {
		p.Currency = &f.currency
	}
	if fs.Changed("category") {
		p.Category = &f.category
	}
	if fs.Changed("notes") {
		p.Notes = &f.notes
	}
	return p, nil
}

func newTradeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trade",
		Short: "Record and inspect trades",
		Long: `Manage the trades of the current account.

Subcommands:
  add     - Record a closed trade
  update  - Change fields of a trade
  delete  - Remove one or more trades
  show    - Print a trade as an Org entry
  list    - Filter, sort and page through trades`,
	}
	cmd.AddCommand(
		newTradeAddCmd(a),
		newTradeUpdateCmd(a),
		newTradeDeleteCmd(a),
		newTradeShowCmd(a),
		newTradeListCmd(a),
	)
	return cmd
}

func newTradeAddCmd(a *app) *cobra.Command {
	var f tradeFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a closed trade",
		Example: `  tradebook trade add --symbol EURUSD --type buy --lots 0.5 \
    --entry-time "2024-03-14 09:00" --exit-time "2024-03-14 11:00" \
    --entry-price 1.0850 --exit-price 1.0875 --profit 125 --fees 3 --category Scalping`,
		Args: cobra.NoArgs,
	}
	f.register(cmd.Flags())
	cmd.RunE = a.withStore(func(cmd *cobra.Command, s *journal.Store, args []string) error {
		t, err := f.trade(s.Settings().Currency)
		if err != nil {
			return err
		}
		added, err := s.AddTrade(t)
		if err != nil {
			return fmt.Errorf("add trade: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Added trade %s (%s %s, net %s)\n",
			added.ID, added.Symbol, added.Type,
			analytics.FormatMoney(added.Net(), added.Currency, s.Settings().Decimals))
		return nil
	})
	return cmd
}

func newTradeUpdateCmd(a *app) *cobra.Command {
	var f tradeFlags
	cmd := &cobra.Command{
		Use:     "update <trade-id>",
		Short:   "Change fields of a trade",
		Long:    `Only the flags given on the command line are changed.`,
		Example: `  tradebook trade update 01HTX8Z3K4M5N6P7Q8R9S0T1AB --profit 140 --notes "partial fill"`,
		Args:    cobra.ExactArgs(1),
	}
	f.register(cmd.Flags())
	cmd.RunE = a.withStore(func(cmd *cobra.Command, s *journal.Store, args []string) error {
		p, err := f.patch(cmd.Flags())
		if err != nil {
			return err
		}
		t, err := s.UpdateTrade(args[0], p)
		if err != nil {
			return fmt.Errorf("update trade: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Updated trade %s\n", t.ID)
		return nil
	})
	return cmd
}

func newTradeDeleteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <trade-id>...",
		Short: "Remove one or more trades",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.RunE = a.withStore(func(cmd *cobra.Command, s *journal.Store, args []string) error {
		removed, err := s.RemoveTrades(args)
		if err != nil {
			return fmt.Errorf("delete trades: %w", err)
		}
		if removed == 0 {
			return fmt.Errorf("delete trades: %w", journal.ErrNotFound)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted %d trade(s)\n", removed)
		return nil
	})
	return cmd
}

func newTradeShowCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <trade-id>",
		Short: "Print a trade as an Org entry",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = a.withStore(func(cmd *cobra.Command, s *journal.Store, args []string) error {
		t, ok := s.Trade(args[0])
		if !ok {
			return fmt.Errorf("trade %s: %w", args[0], journal.ErrNotFound)
		}
		fmt.Fprintln(cmd.OutOrStdout(), journal.FormatTradeOrg(t))
		return nil
	})
	return cmd
}

func newTradeListCmd(a *app) *cobra.Command {
	var (
		from, to, side string
		filter         journal.TradeFilter
		column         string
		asc, org       bool
		page, perPage  int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Filter, sort and page through trades",
		Example: `  tradebook trade list --symbol usd --from 2024-03-01 --to 2024-03-31
  tradebook trade list --sort profit --page 2`,
		Args: cobra.NoArgs,
	}
	fs := cmd.Flags()
	fs.StringVar(&from, "from", "", "first exit day (YYYY-MM-DD)")
	fs.StringVar(&to, "to", "", "last exit day, inclusive (YYYY-MM-DD)")
	fs.StringVar(&filter.Symbol, "symbol", "", "symbol substring, case-insensitive")
	fs.StringVar(&filter.Category, "category", "", "exact category")
	fs.StringVar(&side, "type", "", "buy or sell")
	fs.StringVar(&column, "sort", journal.ColExitTime, "sort column")
	fs.BoolVar(&asc, "asc", false, "sort ascending")
	fs.IntVar(&page, "page", 1, "page number")
	fs.IntVar(&perPage, "per-page", 0, "rows per page (default from config)")
	fs.BoolVar(&org, "org", false, "print the page as Org entries")

	cmd.RunE = a.withStore(func(cmd *cobra.Command, s *journal.Store, args []string) error {
		var err error
		if from != "" {
			if filter.From, err = parseTime(from); err != nil {
				return fmt.Errorf("--from: %w", err)
			}
		}
		if to != "" {
			if filter.To, err = parseTime(to); err != nil {
				return fmt.Errorf("--to: %w", err)
			}
		}
		if side != "" {
			if filter.Type, err = parseSide(side); err != nil {
				return err
			}
		}
		if !slices.Contains(journal.SortColumns, column) {
			return fmt.Errorf("unknown sort column %q (one of %s)", column, strings.Join(journal.SortColumns, ", "))
		}
		if perPage <= 0 {
			perPage = a.cfg.View.PageSize
		}

		res := journal.TradeView{
			Filter:  filter,
			Sort:    journal.TradeSort{Column: column, Desc: !asc},
			Page:    page,
			PerPage: perPage,
		}.Apply(s.Trades())

		out := cmd.OutOrStdout()
		if org {
			fmt.Fprintln(out, journal.FormatTradesOrg(res.Trades))
			return nil
		}
		writeTradeTable(out, res, s.Settings().Decimals)
		return nil
	})
	return cmd
}

func writeTradeTable(w io.Writer, res journal.TradePage, decimals int) {
	fmt.Fprintf(w, "%-8s  %-16s  %-10s  %-4s  %8s  %12s  %10s  %12s  %s\n",
		"ID", "EXIT", "SYMBOL", "TYPE", "LOTS", "PROFIT", "FEES", "NET", "CATEGORY")
	for _, t := range res.Trades {
		fmt.Fprintf(w, "%-8s  %-16s  %-10s  %-4s  %8s  %12s  %10s  %12s  %s\n",
			shortID(t.ID), displayTime(t.ExitTime), t.Symbol, t.Type, t.Lots,
			analytics.FormatAmount(t.Profit.Float(), decimals), analytics.FormatAmount(t.Fees.Float(), decimals),
			analytics.FormatAmount(t.Net(), decimals), t.Category)
	}
	fmt.Fprintf(w, "\npage %d/%d (%d trades)\n", res.Page, res.TotalPages, res.Matched)
}
