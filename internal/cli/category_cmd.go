package cli

import (
	"fmt"

	"github.com/alexanderramin/chronos/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCategoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage tracking categories",
	}

	cmd.AddCommand(
		newCategoryAddCmd(app),
		newCategoryListCmd(app),
	)

	return cmd
}

func newCategoryAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME",
		Short: "Register a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := app.Ledger.AddCategory(name); err != nil {
				return err
			}
			app.MarkDirty()

			fmt.Fprintf(cmd.OutOrStdout(), "Added category %q.\n", name)
			return nil
		},
	}
}

func newCategoryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(app.Ledger.Categories) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No categories yet. Add one with \"chronos category add NAME\".")
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderCategories(app.Ledger.Categories))
			return nil
		},
	}
}
