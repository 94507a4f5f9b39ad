// Package commands wires configuration, storage and services into the
// taskapi command line.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"task-manager/internal/config"
	"task-manager/internal/repository"
)

var configPath string

// NewRootCommand builds the taskapi command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "taskapi",
		Short:         "Task and category REST backend",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file (defaults to $TASKAPI_CONFIG)")

	root.AddCommand(newServeCommand())
	root.AddCommand(newSeedCommand())
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// openDB loads configuration and opens the database; it is the single
// startup step each command runs before doing work.
func openDB() (config.Config, *gorm.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, nil, fmt.Errorf("config: %w", err)
	}
	db, err := repository.NewDB(cfg)
	if err != nil {
		return cfg, nil, fmt.Errorf("db: %w", err)
	}
	return cfg, db, nil
}
