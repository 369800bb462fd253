package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "kta",
		Short:         "Kalori Takip admin CLI (kta): manage users, foods and activity logs",
		Long:          "kta is the terminal admin panel for the Kalori Takip service: sign in once, then inspect the dashboard summary, page through users, foods and logs, and apply edits without leaving the shell.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newConfigCmd(app),
		newDashboardCmd(app),
		newUsersCmd(app),
		newFoodsCmd(app),
		newLogsCmd(app),
		newBrowseCmd(app),
	)

	return rootCmd
}
