package commands

import (
	"fmt"
	"os"

	"github.com/ahmetcoskunkizilkaya/ideahub-backend/cmd/ideahubctl/output"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/database"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "ideahubctl",
	Short: "Operator tasks for the IdeaHub backend",
	Long: `ideahubctl runs maintenance tasks against the IdeaHub database using the same
environment variables as the API server.

Commands:
  migrate   - Create or update the schema
  seed      - Insert the curated idea catalogue
  promote   - Give a user the admin role
  demote    - Return an admin to the user role`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		output.Error("%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to an env file loaded before the environment")
}

// openDB loads config and connects; the caller closes the handle.
func openDB() (*gorm.DB, error) {
	cfg := config.LoadFrom(envFile)
	if cfg.DBPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is not set")
	}
	return database.Connect(cfg)
}
