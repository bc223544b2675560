package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
)

// openOutput returns stdout for "" or "-", else a created file.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, f.Close, nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return b, nil
}

func newExportCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export journal data",
		Long: `Write journal data as JSON or CSV.

Subcommands:
  full     - Both accounts and the ui block as one JSON document
  account  - The current account as {"account": ..., "data": ...}
  csv      - The current account's trades as CSV`,
	}
	cmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	export := func(render func(s *journal.Store, w io.Writer) error) func(*cobra.Command, []string) error {
		return a.withStore(func(cmd *cobra.Command, s *journal.Store, args []string) error {
			w, done, err := openOutput(cmd, output)
			if err != nil {
				return err
			}
			if err := render(s, w); err != nil {
				_ = done()
				return err
			}
			return done()
		})
	}

	full := &cobra.Command{
		Use:   "full",
		Short: "Export every account as one JSON document",
		Args:  cobra.NoArgs,
		RunE: export(func(s *journal.Store, w io.Writer) error {
			text, err := s.ExportFull()
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			_, err = fmt.Fprintln(w, text)
			return err
		}),
	}

	account := &cobra.Command{
		Use:   "account",
		Short: "Export the current account as JSON",
		Args:  cobra.NoArgs,
		RunE: export(func(s *journal.Store, w io.Writer) error {
			text, err := s.ExportAccount()
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			_, err = fmt.Fprintln(w, text)
			return err
		}),
	}

	csv := &cobra.Command{
		Use:   "csv",
		Short: "Export the current account's trades as CSV",
		Args:  cobra.NoArgs,
		RunE: export(func(s *journal.Store, w io.Writer) error {
			trades := journal.SortTrades(s.Trades(), journal.DefaultSort)
			if err := journal.WriteTradesCSV(w, trades); err != nil {
				return fmt.Errorf("export csv: %w", err)
			}
			_, err := fmt.Fprintln(w)
			return err
		}),
	}

	cmd.AddCommand(full, account, csv)
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import journal data",
		Long: `Read journal data from a file, or stdin when the file is "-".

A JSON file holding {"accounts": ...} replaces the whole journal, merged
with defaults. A file holding {"account": "real"|"demo", "data": ...}
replaces just that account. Nothing changes if the import fails.`,
	}

	var full bool
	jsonCmd := &cobra.Command{
		Use:   "json <file>",
		Short: "Import a full or single-account JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: a.withStore(func(cmd *cobra.Command, s *journal.Store, args []string) error {
			b, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			if full {
				err = s.ImportFull(string(b))
			} else {
				err = s.Import(string(b))
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Imported %s\n", args[0])
			return nil
		}),
	}
	jsonCmd.Flags().BoolVar(&full, "full", false, "require a full export")

	csvCmd := &cobra.Command{
		Use:   "csv <file>",
		Short: "Append trades from a CSV export to the current account",
		Args:  cobra.ExactArgs(1),
		RunE: a.withStore(func(cmd *cobra.Command, s *journal.Store, args []string) error {
			b, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			trades, err := journal.ReadTradesCSV(bytes.NewReader(b))
			if err != nil {
				return fmt.Errorf("%w: %w", journal.ErrImport, err)
			}
			added, err := s.ImportTrades(trades)
			if err != nil {
				return fmt.Errorf("import trades: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Imported %d trade(s) into %s\n", len(added), s.Account())
			return nil
		}),
	}

	cmd.AddCommand(jsonCmd, csvCmd)
	return cmd
}
