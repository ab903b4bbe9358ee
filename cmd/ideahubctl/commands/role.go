package commands

import (
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/ideahub-backend/cmd/ideahubctl/output"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/repository"
	"github.com/spf13/cobra"
)

func setRole(cmd *cobra.Command, email, role string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer database.Close(db)

	repo := repository.New(db)
	if err := repo.Users.SetRole(cmd.Context(), email, role); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			output.Warning("no user with email %s", email)
			return fmt.Errorf("user not found")
		}
		return err
	}
	output.Success("%s is now %s", email, role)
	return nil
}

var promoteCmd = &cobra.Command{
	Use:   "promote <email>",
	Short: "Give a user the admin role",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setRole(cmd, args[0], models.RoleAdmin)
	},
}

var demoteCmd = &cobra.Command{
	Use:   "demote <email>",
	Short: "Return an admin to the user role",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setRole(cmd, args[0], models.RoleUser)
	},
}

func init() {
	rootCmd.AddCommand(promoteCmd, demoteCmd)
}
