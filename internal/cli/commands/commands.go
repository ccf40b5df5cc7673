package commands

import (
	"github.com/spf13/cobra"

	"github.com/aredridel/best6/internal/cli"
	"github.com/aredridel/best6/internal/config"
	"github.com/aredridel/best6/internal/modload"
	"github.com/aredridel/best6/internal/storage"
	"github.com/aredridel/best6/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, registry *modload.Registry) *Commands {
	formatter := ui.NewFormatter(cfg)
	jsonStorage := storage.NewJSONStorage(cfg)
	viewer := ui.NewViewer()

	return &Commands{
		Run:      NewRunCommand(cfg, registry, jsonStorage, formatter),
		List:     NewListCommand(cfg, registry, jsonStorage, formatter),
		Failures: NewFailuresCommand(jsonStorage, viewer),
	}
}

// Register wires the commands and their flags into the root command. The
// root command itself is the runner; list and failures are subcommands.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		*cfg = *config.Load(flags.ToConfigFlags())
		return nil
	}

	rootCmd.RunE = c.Run.Execute
	rootCmd.PreRunE = applyFlags

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "enable verbose diagnostics (per-test stack traces, extra warnings)")
	pf.StringArrayVarP(&flags.Includes, "include", "I", nil, "directory or file supplying test sources (repeatable; default \"test\")")
	pf.StringArrayVarP(&flags.Imports, "import", "i", nil, "module to import for side effects before any test runs (repeatable)")
	pf.StringArrayVarP(&flags.Requires, "require", "r", nil, "alias of --import")
	pf.MarkHidden("require")

	rootCmd.Flags().BoolVar(&flags.Failed, "failed", false, "run only the tests that failed in the last saved run")

	listCmd := &cobra.Command{
		Use:     "list [test_name ...]",
		Short:   "List discovered tests without executing them",
		Long:    "Discover and print the selected suite as a tree; failures from the last saved run are marked.",
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	rootCmd.AddCommand(listCmd)

	failuresCmd := &cobra.Command{
		Use:     "failures",
		Short:   "Browse failures of the last run interactively",
		RunE:    c.Failures.Execute,
		PreRunE: applyFlags,
	}
	rootCmd.AddCommand(failuresCmd)
}
