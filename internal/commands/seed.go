package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"task-manager/internal/model"
	"task-manager/internal/repository"
	"task-manager/internal/service"
)

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the default categories if they are missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Starting category seeding...")

			_, db, err := openDB()
			if err != nil {
				return fmt.Errorf("category seeding failed: %w", err)
			}
			defer repository.Close(db)

			// The seeder always owns the categories table.
			if err := repository.Migrate(db, &model.Category{}); err != nil {
				return fmt.Errorf("category seeding failed: %w", err)
			}

			svc := service.NewCategoryService(repository.NewCategoryRepository(db))
			result, err := svc.SeedDefaults(cmd.Context())
			for _, name := range result.Created {
				fmt.Fprintf(out, "Created category: %q\n", name)
			}
			for _, name := range result.Skipped {
				fmt.Fprintf(out, "Category already exists: %q\n", name)
			}
			if err != nil {
				return fmt.Errorf("category seeding failed: %w", err)
			}

			fmt.Fprintln(out, "Category seeding completed.")
			fmt.Fprintf(out, "  created: %d\n", len(result.Created))
			fmt.Fprintf(out, "  skipped (already exist): %d\n", len(result.Skipped))
			fmt.Fprintf(out, "  processed: %d\n", result.Processed())
			fmt.Fprintf(out, "  total in database: %d\n", result.Total)
			return nil
		},
	}
}
