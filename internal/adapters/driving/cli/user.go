package cli

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

var (
	userID      int
	userEmail   string
	reportMonth int
	reportYear  int
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Look up, manage and report on users",
	Long: `User operations are split into small capabilities: reading a profile,
managing accounts, sending password resets and rendering reports. Each
subcommand only touches the one it needs.`,
}

var userGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show a user profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserGet,
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	RunE:  runUserCreate,
}

var userUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update a user's email",
	RunE:  runUserUpdate,
}

var userDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserDelete,
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	RunE:  runUserList,
}

var userResetPasswordCmd = &cobra.Command{
	Use:   "reset-password [id]",
	Short: "Send a password reset email",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserResetPassword,
}

var userReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the monthly user report as CSV",
	RunE:  runUserReport,
}

func init() {
	for _, c := range []*cobra.Command{userCreateCmd, userUpdateCmd} {
		c.Flags().IntVar(&userID, "id", 0, "user id")
		c.Flags().StringVar(&userEmail, "email", "", "user email")
	}
	now := time.Now()
	userReportCmd.Flags().IntVar(&reportMonth, "month", int(now.Month()), "report month (1-12)")
	userReportCmd.Flags().IntVar(&reportYear, "year", now.Year(), "report year")

	userCmd.AddCommand(userGetCmd)
	userCmd.AddCommand(userCreateCmd)
	userCmd.AddCommand(userUpdateCmd)
	userCmd.AddCommand(userDeleteCmd)
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userResetPasswordCmd)
	userCmd.AddCommand(userReportCmd)
	rootCmd.AddCommand(userCmd)
}

func parseUserID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: user id %q is not a number", domain.ErrInvalidInput, arg)
	}
	return id, nil
}

func runUserGet(cmd *cobra.Command, args []string) error {
	if profileReader == nil {
		return errors.New("user profile reader not configured")
	}
	id, err := parseUserID(args[0])
	if err != nil {
		return err
	}

	user, err := profileReader.GetProfile(cmd.Context(), id)
	if err != nil {
		return err
	}
	cmd.Printf("User %d: %s\n", user.ID, user.Email)
	return nil
}

func runUserCreate(cmd *cobra.Command, _ []string) error {
	if userAdmin == nil {
		return errors.New("user administration not configured")
	}
	if err := userAdmin.CreateUser(cmd.Context(), domain.User{ID: userID, Email: userEmail}); err != nil {
		return err
	}
	cmd.Printf("User %d created\n", userID)
	return nil
}

func runUserUpdate(cmd *cobra.Command, _ []string) error {
	if userAdmin == nil {
		return errors.New("user administration not configured")
	}
	if err := userAdmin.UpdateUser(cmd.Context(), domain.User{ID: userID, Email: userEmail}); err != nil {
		return err
	}
	cmd.Printf("User %d updated\n", userID)
	return nil
}

func runUserDelete(cmd *cobra.Command, args []string) error {
	if userAdmin == nil {
		return errors.New("user administration not configured")
	}
	id, err := parseUserID(args[0])
	if err != nil {
		return err
	}
	if err := userAdmin.DeleteUser(cmd.Context(), id); err != nil {
		return err
	}
	cmd.Printf("User %d deleted\n", id)
	return nil
}

func runUserList(cmd *cobra.Command, _ []string) error {
	if userAdmin == nil {
		return errors.New("user administration not configured")
	}
	users, err := userAdmin.ListUsers(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}
	if len(users) == 0 {
		cmd.Println("No users stored.")
		return nil
	}
	for i := range users {
		cmd.Printf("%6d  %s\n", users[i].ID, users[i].Email)
	}
	return nil
}

func runUserResetPassword(cmd *cobra.Command, args []string) error {
	if passwordReset == nil {
		return errors.New("password reset service not configured")
	}
	id, err := parseUserID(args[0])
	if err != nil {
		return err
	}
	return passwordReset.ResetPassword(cmd.Context(), id)
}

func runUserReport(cmd *cobra.Command, _ []string) error {
	if userReports == nil {
		return errors.New("user report service not configured")
	}
	data, err := userReports.MonthlyReport(cmd.Context(), reportMonth, reportYear)
	if err != nil {
		return err
	}
	cmd.Print(string(data))
	return nil
}
