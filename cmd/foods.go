package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/kaloritakip/kta/internal/adapters/render"
	"github.com/kaloritakip/kta/internal/domain"
	"github.com/spf13/cobra"
)

func newFoodsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "foods",
		Short: "Manage the food catalog",
	}

	cmd.AddCommand(
		newFoodsListCmd(app),
		newFoodsAddCmd(app),
		newFoodsDeleteCmd(app),
	)

	return cmd
}

func newFoodsListCmd(app *app) *cobra.Command {
	var page int
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog foods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireLogin(cmd.Context(), app); err != nil {
				return err
			}

			state := domain.NewPageState(domain.ResourceFoods)
			state.Search = strings.TrimSpace(search)

			var foods []domain.Food
			fetch := func(ctx context.Context) error {
				var err error
				foods, err = app.service.LoadFoods(ctx, state, page)
				return err
			}

			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching foods...", fetch); err != nil {
				return err
			}

			out, err := render.Foods(foods, state)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().StringVar(&search, "search", "", "Filter by name")

	return cmd
}

func newFoodsAddCmd(app *app) *cobra.Command {
	var name, calories, protein, carbs, fat, serving, category, barcode string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a food to the catalog",
		Long:  "Add a food to the catalog. Numeric values left blank count as 0; a blank category becomes \"" + domain.DefaultFoodCategory + "\".",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireLogin(cmd.Context(), app); err != nil {
				return err
			}

			draft := domain.NewFoodDraft(name, calories, protein, carbs, fat, serving, category, barcode)

			state := domain.NewPageState(domain.ResourceFoods)
			refreshed, err := app.service.CreateFood(cmd.Context(), draft, state)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Food %q added (%d foods total)\n", draft.Name, refreshed.Stats.TotalFoods)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Food name (required)")
	cmd.Flags().StringVar(&calories, "calories", "", "Calories per serving")
	cmd.Flags().StringVar(&protein, "protein", "", "Protein in grams")
	cmd.Flags().StringVar(&carbs, "carbs", "", "Carbohydrates in grams")
	cmd.Flags().StringVar(&fat, "fat", "", "Fat in grams")
	cmd.Flags().StringVar(&serving, "serving", "", "Serving size description")
	cmd.Flags().StringVar(&category, "category", "", "Category")
	cmd.Flags().StringVar(&barcode, "barcode", "", "Barcode")

	return cmd
}

func newFoodsDeleteCmd(app *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a catalog food",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(cmd.Context(), app); err != nil {
				return err
			}

			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}

			if !yes {
				ok, err := promptConfirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Delete food #%d? (y/N): ", id))
				if err != nil {
					return fmt.Errorf("read confirmation: %w", err)
				}
				if !ok {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
					return nil
				}
			}

			state := domain.NewPageState(domain.ResourceFoods)
			refreshed, err := app.service.DeleteFood(cmd.Context(), id, state)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Food #%d deleted (%d foods remain)\n", id, refreshed.Stats.TotalFoods)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}
