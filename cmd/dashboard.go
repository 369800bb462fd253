package cmd

import (
	"context"
	"fmt"

	"github.com/kaloritakip/kta/internal/adapters/render"
	"github.com/kaloritakip/kta/internal/domain"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"stats"},
		Short:   "Show the summary counts and the activity chart",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireLogin(cmd.Context(), app); err != nil {
				return err
			}

			var stats domain.Stats
			fetch := func(ctx context.Context) error {
				var err error
				stats, err = app.service.RefreshSummary(ctx)
				return err
			}

			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching dashboard summary...", fetch); err != nil {
				return err
			}

			out, err := render.Dashboard(stats, render.DashboardOptions{Now: app.now()})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}
