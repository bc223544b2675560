package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/analytics"
	"github.com/rustyeddy/tradebook/journal"
)

func newSettingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change account settings",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the current account's settings",
		Args:  cobra.NoArgs,
		RunE: a.withStore(func(cmd *cobra.Command, s *journal.Store, args []string) error {
			set := s.Settings()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Account: %s\n", s.Account())
			fmt.Fprintf(out, "  Currency:        %s\n", set.Currency)
			fmt.Fprintf(out, "  Theme:           %s\n", set.Theme)
			fmt.Fprintf(out, "  Decimals:        %d\n", set.Decimals)
			fmt.Fprintf(out, "  Default account: %s\n", set.DefaultAccount)
			return nil
		}),
	}

	var (
		currency, theme, defaultAccount string
		decimals                        int
	)
	set := &cobra.Command{
		Use:     "set",
		Short:   "Change settings of the current account",
		Example: `  tradebook settings set --currency USD --decimals 2 --theme dark`,
		Args:    cobra.NoArgs,
		RunE: a.withStore(func(cmd *cobra.Command, s *journal.Store, args []string) error {
			var p journal.SettingsPatch
			fs := cmd.Flags()
			if fs.Changed("currency") {
				code := strings.ToUpper(currency)
				if !analytics.KnownCurrency(code) {
					return fmt.Errorf("unknown currency %q", currency)
				}
				p.Currency = &code
			}
			if fs.Changed("theme") {
				th := journal.Theme(theme)
				if th != journal.Light && th != journal.Dark {
					return fmt.Errorf("theme must be %q or %q", journal.Light, journal.Dark)
				}
				p.Theme = &th
			}
			if fs.Changed("decimals") {
				if decimals < 0 || decimals > 8 {
					return fmt.Errorf("decimals must be between 0 and 8")
				}
				p.Decimals = &decimals
			}
			if fs.Changed("default-account") {
				key := journal.AccountKey(defaultAccount)
				if key != journal.Real && key != journal.Demo {
					return fmt.Errorf("default account must be %q or %q", journal.Real, journal.Demo)
				}
				p.DefaultAccount = &key
			}
			if err := s.UpdateSettings(p); err != nil {
				return fmt.Errorf("update settings: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✓ Settings updated")
			return nil
		}),
	}
	set.Flags().StringVar(&currency, "currency", "", "ISO 4217 currency code")
	set.Flags().StringVar(&theme, "theme", "", "light or dark")
	set.Flags().IntVar(&decimals, "decimals", 2, "decimal places for amounts")
	set.Flags().StringVar(&defaultAccount, "default-account", "", "account opened by default: real or demo")

	cmd.AddCommand(show, set)
	return cmd
}
