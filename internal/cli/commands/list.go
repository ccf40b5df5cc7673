package commands

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aredridel/best6/internal/collect"
	"github.com/aredridel/best6/internal/config"
	"github.com/aredridel/best6/internal/discovery"
	"github.com/aredridel/best6/internal/modload"
	"github.com/aredridel/best6/internal/storage"
	"github.com/aredridel/best6/internal/ui"
)

// ListCommand prints the selected suite without executing it.
type ListCommand struct {
	config    *config.Config
	registry  *modload.Registry
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, registry *modload.Registry, st storage.Storage, formatter *ui.Formatter) *ListCommand {
	return &ListCommand{
		config:    cfg,
		registry:  registry,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	masks, err := discovery.ParseMasks(args)
	if err != nil {
		return &UsageError{Err: err}
	}

	// Imports may register the modules being listed.
	for _, name := range lc.config.Imports {
		if err := lc.registry.Import(name); err != nil {
			return err
		}
	}

	if !lc.config.ExplicitIncludes {
		if _, err := os.Stat(config.DefaultInclude); err != nil {
			color.Yellow("No tests found")
			return nil
		}
	}

	scanner := discovery.NewScanner(lc.config.Extensions, lc.formatter.Warnf)
	files, err := scanner.Scan(lc.config.Includes)
	if err != nil {
		return err
	}

	collector := collect.New(lc.registry, masks, lc.config.Verbose, lc.formatter.Warnf)
	suite, err := collector.Collect(files)
	if err != nil {
		return err
	}
	if len(suite) == 0 {
		color.Yellow("No tests found")
		return nil
	}

	failed := map[string]bool{}
	if output, err := lc.storage.Load(); err == nil {
		failed = storage.FailedNames(output)
	}

	lc.formatter.PrintSuite(suite, failed)
	return nil
}
