package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kaloritakip/kta/internal/adapters/render"
	"github.com/kaloritakip/kta/internal/domain"
	"github.com/spf13/cobra"
)

func newUsersCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}

	cmd.AddCommand(
		newUsersListCmd(app),
		newUsersShowCmd(app),
		newUsersEditCmd(app),
		newUsersPasswdCmd(app),
		newUsersDeleteCmd(app),
	)

	return cmd
}

func newUsersListCmd(app *app) *cobra.Command {
	var page int
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List user accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireLogin(cmd.Context(), app); err != nil {
				return err
			}

			state := domain.NewPageState(domain.ResourceUsers)
			state.Search = strings.TrimSpace(search)

			var users []domain.User
			fetch := func(ctx context.Context) error {
				var err error
				users, err = app.service.LoadUsers(ctx, state, page)
				return err
			}

			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching users...", fetch); err != nil {
				return err
			}

			out, err := render.Users(users, state)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().StringVar(&search, "search", "", "Filter by name or email")

	return cmd
}

func newUsersShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a user profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(cmd.Context(), app); err != nil {
				return err
			}

			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}

			user, err := app.service.GetUser(cmd.Context(), id)
			if err != nil {
				return err
			}

			writeUserDetail(cmd.OutOrStdout(), user)
			return nil
		},
	}
}

func newUsersEditCmd(app *app) *cobra.Command {
	var email, name, age, gender, height, weight, targetWeight, activityLevel, goal string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a user profile",
		Long:  "Edit a user profile. Only the flags you pass change; passing an empty value clears that field.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(cmd.Context(), app); err != nil {
				return err
			}

			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}

			user, err := app.service.GetUser(cmd.Context(), id)
			if err != nil {
				return err
			}

			update := updateFromUser(user)
			flags := cmd.Flags()
			if flags.Changed("email") {
				update.Email = email
			}
			if flags.Changed("name") {
				update.Name = domain.OptionalString(name)
			}
			if flags.Changed("age") {
				update.Age = domain.ParseOptionalInt(age)
			}
			if flags.Changed("gender") {
				update.Gender = domain.OptionalString(gender)
			}
			if flags.Changed("height") {
				update.Height = domain.ParseOptionalFloat(height)
			}
			if flags.Changed("weight") {
				update.Weight = domain.ParseOptionalFloat(weight)
			}
			if flags.Changed("target-weight") {
				update.TargetWeight = domain.ParseOptionalFloat(targetWeight)
			}
			if flags.Changed("activity-level") {
				update.ActivityLevel = domain.OptionalString(activityLevel)
			}
			if flags.Changed("goal") {
				update.Goal = domain.OptionalString(goal)
			}

			state := domain.NewPageState(domain.ResourceUsers)
			refreshed, err := app.service.UpdateUser(cmd.Context(), id, update, state)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "User #%d updated (%d users total)\n", id, refreshed.Stats.TotalUsers)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&age, "age", "", "Age in years")
	cmd.Flags().StringVar(&gender, "gender", "", "Gender")
	cmd.Flags().StringVar(&height, "height", "", "Height in cm")
	cmd.Flags().StringVar(&weight, "weight", "", "Weight in kg")
	cmd.Flags().StringVar(&targetWeight, "target-weight", "", "Target weight in kg")
	cmd.Flags().StringVar(&activityLevel, "activity-level", "", "Activity level")
	cmd.Flags().StringVar(&goal, "goal", "", "Goal")

	return cmd
}

func newUsersPasswdCmd(app *app) *cobra.Command {
	var password string
	var confirm string

	cmd := &cobra.Command{
		Use:   "passwd <id>",
		Short: "Set a new password for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(cmd.Context(), app); err != nil {
				return err
			}

			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}

			if password == "" {
				password, err = promptPassword(cmd.OutOrStdout(), "New password: ")
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				confirm, err = promptPassword(cmd.OutOrStdout(), "Confirm password: ")
				if err != nil {
					return fmt.Errorf("read password confirmation: %w", err)
				}
			} else if !cmd.Flags().Changed("confirm") {
				confirm = password
			}

			if err := app.service.ChangePassword(cmd.Context(), id, password, confirm); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Password updated for user #%d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "New password (prompted when omitted)")
	cmd.Flags().StringVar(&confirm, "confirm", "", "Password confirmation (defaults to --password)")

	return cmd
}

func newUsersDeleteCmd(app *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user account",
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
				ok, err := promptConfirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Delete user #%d? (y/N): ", id))
				if err != nil {
					return fmt.Errorf("read confirmation: %w", err)
				}
				if !ok {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
					return nil
				}
			}

			state := domain.NewPageState(domain.ResourceUsers)
			refreshed, err := app.service.DeleteUser(cmd.Context(), id, state)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "User #%d deleted (%d users remain)\n", id, refreshed.Stats.TotalUsers)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

func updateFromUser(user domain.User) domain.UserUpdate {
	return domain.UserUpdate{
		Name:          user.Name,
		Email:         user.Email,
		Age:           user.Age,
		Gender:        user.Gender,
		Height:        user.Height,
		Weight:        user.Weight,
		TargetWeight:  user.TargetWeight,
		ActivityLevel: user.ActivityLevel,
		Goal:          user.Goal,
	}
}

func writeUserDetail(w io.Writer, user domain.User) {
	field := func(label, value string) {
		_, _ = fmt.Fprintf(w, "%-15s %s\n", label, value)
	}

	field("ID:", strconv.Itoa(user.ID))
	field("Email:", user.Email)
	field("Name:", textOrDash(user.Name))
	field("Age:", intTextOrDash(user.Age))
	field("Gender:", textOrDash(user.Gender))
	field("Height:", floatTextOrDash(user.Height))
	field("Weight:", floatTextOrDash(user.Weight))
	field("Target weight:", floatTextOrDash(user.TargetWeight))
	field("Activity level:", textOrDash(user.ActivityLevel))
	field("Goal:", textOrDash(user.Goal))
	field("Created:", user.CreatedAt)
}

func parseRecordID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid record id %q", raw)
	}
	return id, nil
}

func textOrDash(value *string) string {
	if value == nil || *value == "" {
		return "-"
	}
	return *value
}

func intTextOrDash(value *int) string {
	if value == nil {
		return "-"
	}
	return strconv.Itoa(*value)
}

func floatTextOrDash(value *float64) string {
	if value == nil {
		return "-"
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}
