package cmd

import (
	"context"
	"fmt"

	"github.com/kaloritakip/kta/internal/adapters/render"
	"github.com/kaloritakip/kta/internal/domain"
	"github.com/spf13/cobra"
)

func newLogsCmd(app *app) *cobra.Command {
	var page int
	var logType, from, to string
	var today bool

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "List activity logs (read-only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireLogin(cmd.Context(), app); err != nil {
				return err
			}

			filter := domain.LogFilter{Type: logType, DateFrom: from, DateTo: to}
			if today {
				filter = app.service.TodayFilter(logType)
			}

			state := domain.NewPageState(domain.ResourceLogs)

			var logs []domain.LogEntry
			fetch := func(ctx context.Context) error {
				var err error
				logs, err = app.service.LoadLogs(ctx, state, page, filter)
				return err
			}

			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching logs...", fetch); err != nil {
				return err
			}

			out, err := render.Logs(logs, state)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().StringVar(&logType, "type", domain.LogTypeAll, "Log type: all, daily, water, exercise or weight")
	cmd.Flags().StringVar(&from, "from", "", "Earliest date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Latest date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&today, "today", false, "Only today's entries")

	return cmd
}
