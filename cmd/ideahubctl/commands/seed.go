package commands

import (
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/cmd/ideahubctl/output"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/seed"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/services"
	"github.com/spf13/cobra"
)

var seedFeatured bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the curated idea catalogue",
	Long: `Insert the built-in admin-curated ideas. Titles that already exist are skipped,
so the command is safe to run repeatedly.

Examples:
  ideahubctl seed              # Insert missing ideas
  ideahubctl seed --featured   # Insert them flagged as featured`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := database.Migrate(db); err != nil {
			return err
		}

		repo := repository.New(db)
		res, err := seed.Run(cmd.Context(), services.NewIdeaService(repo.Ideas), seedFeatured)
		if err != nil {
			return err
		}

		output.Success("created %d ideas", res.Created)
		if res.Skipped > 0 {
			output.Muted("skipped %d existing titles", res.Skipped)
		}
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedFeatured, "featured", false, "Mark inserted ideas as featured")
	rootCmd.AddCommand(seedCmd)
}
