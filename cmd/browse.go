package cmd

import (
	"fmt"

	"github.com/kaloritakip/kta/internal/domain"
	"github.com/kaloritakip/kta/internal/tui"
	"github.com/spf13/cobra"
)

func newBrowseCmd(app *app) *cobra.Command {
	var logType, from, to string
	var today bool

	cmd := &cobra.Command{
		Use:   "browse [users|foods|logs]",
		Short: "Browse resources interactively",
		Long:  "Browse resources in a full-screen view: switch tabs with 1/2/3, page with the arrow keys, search with /, and delete with d.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(cmd.Context(), app); err != nil {
				return err
			}

			resource := domain.ResourceUsers
			if len(args) == 1 {
				switch domain.Resource(args[0]) {
				case domain.ResourceUsers, domain.ResourceFoods, domain.ResourceLogs:
					resource = domain.Resource(args[0])
				default:
					return fmt.Errorf("unknown resource %q (expected users, foods or logs)", args[0])
				}
			}

			filter := domain.LogFilter{Type: logType, DateFrom: from, DateTo: to}
			if today {
				filter = app.service.TodayFilter(logType)
			}

			expired, err := tui.Run(app.service, resource, filter)
			if err != nil {
				return err
			}
			if expired {
				return fmt.Errorf("session expired, run `kta login` to sign in again")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&logType, "type", domain.LogTypeAll, "Log type filter for the logs tab")
	cmd.Flags().StringVar(&from, "from", "", "Earliest log date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Latest log date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&today, "today", false, "Only today's log entries")

	return cmd
}
