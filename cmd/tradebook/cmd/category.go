package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
)

func newCategoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage trade categories",
		Long: `Manage the strategy categories of the current account.

Renaming a category relabels every trade that used it; deleting one
leaves those trades uncategorized.`,
	}

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: a.withStore(func(cmd *cobra.Command, s *journal.Store, args []string) error {
			if err := s.AddCategory(args[0]); err != nil {
				return fmt.Errorf("add category: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Added category %q\n", args[0])
			return nil
		}),
	}

	rename := &cobra.Command{
		Use:   "rename <from> <to>",
		Short: "Rename a category and relabel its trades",
		Args:  cobra.ExactArgs(2),
		RunE: a.withStore(func(cmd *cobra.Command, s *journal.Store, args []string) error {
			if err := s.RenameCategory(args[0], args[1]); err != nil {
				return fmt.Errorf("rename category: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Renamed %q to %q\n", args[0], args[1])
			return nil
		}),
	}

	del := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a category and clear it from trades",
		Args:  cobra.ExactArgs(1),
		RunE: a.withStore(func(cmd *cobra.Command, s *journal.Store, args []string) error {
			if err := s.DeleteCategory(args[0]); err != nil {
				return fmt.Errorf("delete category: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted category %q\n", args[0])
			return nil
		}),
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: a.withStore(func(cmd *cobra.Command, s *journal.Store, args []string) error {
			for _, c := range s.Categories() {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		}),
	}

	cmd.AddCommand(add, rename, del, list)
	return cmd
}
