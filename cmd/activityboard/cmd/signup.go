package cmd

import (
	"errors"
	"fmt"

	"github.com/nfrund/activityboard/internal/board"
	"github.com/spf13/cobra"
)

var (
	changeActivity string
	changeEmail    string
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Sign a student up for an activity",
	Long: `Sign a student up for an activity. Both values are sent as given; the
activities service decides whether to accept them.

Example:
  activityboard signup --activity "Chess Club" --email michael@mergington.edu`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cfg, err := newApp()
		if err != nil {
			return err
		}
		b, err := a.Board()
		if err != nil {
			return err
		}

		msg := b.SubmitSignup(cmd.Context(), resolveLocale(cfg), changeEmail, changeActivity)
		if msg.Kind == board.KindError {
			return errors.New(msg.Text)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg.Text)
		return nil
	},
}

var unregisterCmd = &cobra.Command{
	Use:   "unregister",
	Short: "Remove a student from an activity",
	Long: `Remove a student from an activity.

Example:
  activityboard unregister --activity "Chess Club" --email michael@mergington.edu`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cfg, err := newApp()
		if err != nil {
			return err
		}
		b, err := a.Board()
		if err != nil {
			return err
		}

		res := b.RemoveParticipant(cmd.Context(), resolveLocale(cfg), changeActivity, changeEmail)
		if res.Failed() {
			return errors.New(res.Alert)
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Text)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{signupCmd, unregisterCmd} {
		c.Flags().StringVar(&changeActivity, "activity", "", "activity name")
		c.Flags().StringVar(&changeEmail, "email", "", "student email")
		rootCmd.AddCommand(c)
	}
}
