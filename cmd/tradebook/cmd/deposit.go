package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/analytics"
	"github.com/rustyeddy/tradebook/journal"
)

func newDepositCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Record deposits and withdrawals",
		Long: `Manage the cash movements of the current account.

Amounts are always entered as positive numbers; the type decides whether
the balance goes up (deposit) or down (withdrawal).

Subcommands:
  add     - Record a deposit or withdrawal
  update  - Change fields of a deposit
  delete  - Remove one or more deposits
  list    - List deposits, newest first`,
	}
	cmd.AddCommand(
		newDepositAddCmd(a),
		newDepositUpdateCmd(a),
		newDepositDeleteCmd(a),
		newDepositListCmd(a),
	)
	return cmd
}

type depositFlags struct {
	typ    string
	amount float64
	date   string
	notes  string
}

func (f *depositFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.typ, "type", string(journal.DepositIn), "deposit or withdrawal")
	cmd.Flags().Float64Var(&f.amount, "amount", 0, "amount, sign ignored")
	cmd.Flags().StringVar(&f.date, "date", "", "date (YYYY-MM-DD[ HH:MM] or RFC3339, default now)")
	cmd.Flags().StringVar(&f.notes, "notes", "", "free-form notes")
}

func newDepositAddCmd(a *app) *cobra.Command {
	var f depositFlags
	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Record a deposit or withdrawal",
		Example: `  tradebook deposit add --amount 5000 --date 2024-03-01 --notes "initial funding"`,
		Args:    cobra.NoArgs,
	}
	f.register(cmd)
	cmd.RunE = a.withStore(func(cmd *cobra.Command, s *journal.Store, args []string) error {
		typ, err := parseDepositType(f.typ)
		if err != nil {
			return err
		}
		d := journal.Deposit{Type: typ, Amount: journal.Number(f.amount), Notes: f.notes}
		if f.date != "" {
			if d.Date, err = parseTime(f.date); err != nil {
				return fmt.Errorf("--date: %w", err)
			}
		}
		added, err := s.AddDeposit(d)
		if err != nil {
			return fmt.Errorf("add deposit: %w", err)
		}
		set := s.Settings()
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Added %s %s (%s)\n",
			added.Type, analytics.FormatMoney(added.Amount.Float(), set.Currency, set.Decimals), added.ID)
		return nil
	})
	return cmd
}

func newDepositUpdateCmd(a *app) *cobra.Command {
	var f depositFlags
	cmd := &cobra.Command{
		Use:   "update <deposit-id>",
		Short: "Change fields of a deposit",
		Args:  cobra.ExactArgs(1),
	}
	f.register(cmd)
	cmd.RunE = a.withStore(func(cmd *cobra.Command, s *journal.Store, args []string) error {
		var p journal.DepositPatch
		fs := cmd.Flags()
		if fs.Changed("type") {
			typ, err := parseDepositType(f.typ)
			if err != nil {
				return err
			}
			p.Type = &typ
		}
		if fs.Changed("amount") {
			n := journal.Number(f.amount)
			p.Amount = &n
		}
		if fs.Changed("date") {
			t, err := parseTime(f.date)
			if err != nil {
				return fmt.Errorf("--date: %w", err)
			}
			p.Date = &t
		}
		if fs.Changed("notes") {
			p.Notes = &f.notes
		}
		d, err := s.UpdateDeposit(args[0], p)
		if err != nil {
			return fmt.Errorf("update deposit: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Updated deposit %s\n", d.ID)
		return nil
	})
	return cmd
}

func newDepositDeleteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <deposit-id>...",
		Short: "Remove one or more deposits",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.RunE = a.withStore(func(cmd *cobra.Command, s *journal.Store, args []string) error {
		removed, err := s.RemoveDeposits(args)
		if err != nil {
			return fmt.Errorf("delete deposits: %w", err)
		}
		if removed == 0 {
			return fmt.Errorf("delete deposits: %w", journal.ErrNotFound)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted %d deposit(s)\n", removed)
		return nil
	})
	return cmd
}

func newDepositListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List deposits, newest first",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = a.withStore(func(cmd *cobra.Command, s *journal.Store, args []string) error {
		deposits := slices.Clone(s.Deposits())
		slices.SortStableFunc(deposits, func(x, y journal.Deposit) int {
			return y.Date.Compare(x.Date)
		})

		set := s.Settings()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-8s  %-16s  %-10s  %16s  %s\n", "ID", "DATE", "TYPE", "AMOUNT", "NOTES")
		for _, d := range deposits {
			fmt.Fprintf(out, "%-8s  %-16s  %-10s  %16s  %s\n",
				shortID(d.ID), displayTime(d.Date), d.Type,
				analytics.FormatMoney(d.Signed(), set.Currency, set.Decimals), d.Notes)
		}
		in, withdrawn := analytics.New(s).DepositTotals()
		fmt.Fprintf(out, "\ndeposited %s, withdrawn %s\n",
			analytics.FormatMoney(in, set.Currency, set.Decimals),
			analytics.FormatMoney(withdrawn, set.Currency, set.Decimals))
		return nil
	})
	return cmd
}
