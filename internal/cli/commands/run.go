package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aredridel/best6/internal/collect"
	"github.com/aredridel/best6/internal/config"
	"github.com/aredridel/best6/internal/discovery"
	"github.com/aredridel/best6/internal/domain"
	"github.com/aredridel/best6/internal/execution"
	"github.com/aredridel/best6/internal/modload"
	"github.com/aredridel/best6/internal/storage"
	"github.com/aredridel/best6/internal/ui"
)

// RunCommand discovers, collects and executes the suite.
type RunCommand struct {
	config    *config.Config
	registry  *modload.Registry
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, registry *modload.Registry, st storage.Storage, formatter *ui.Formatter) *RunCommand {
	return &RunCommand{
		config:    cfg,
		registry:  registry,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command. Positional arguments are test name masks; a
// leading "-" negates. An empty suite is a successful run.
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	masks, err := discovery.ParseMasks(args)
	if err != nil {
		return &UsageError{Err: err}
	}

	// Side-effect imports run before anything else; a failure aborts.
	for _, name := range rc.config.Imports {
		if err := rc.registry.Import(name); err != nil {
			return err
		}
	}

	// The implicit default include may simply not exist yet; that is
	// an empty discovery, not an error. Explicit -I paths stay fatal.
	if !rc.config.ExplicitIncludes {
		if _, err := os.Stat(config.DefaultInclude); err != nil {
			rc.formatter.Warnf("no test files found")
			return nil
		}
	}

	scanner := discovery.NewScanner(rc.config.Extensions, rc.formatter.Warnf)
	files, err := scanner.Scan(rc.config.Includes)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		rc.formatter.Warnf("no test files found")
		return nil
	}

	collector := collect.New(rc.registry, masks, rc.config.Verbose, rc.formatter.Warnf)
	suite, err := collector.Collect(files)
	if err != nil {
		return err
	}

	if rc.config.OnlyFailed {
		suite = rc.onlyFailed(suite)
	}
	if len(suite) == 0 {
		rc.formatter.Warnf("no tests selected")
		return nil
	}

	var progress *ui.Progress
	if !rc.config.Verbose && ui.ProgressEnabled() {
		progress = ui.NewProgress(len(suite))
	}

	var failures []domain.FailureRecord
	executor := execution.New(func(result domain.TestResult) {
		rc.formatter.PrintResult(result)
		if progress != nil {
			progress.Observe(result)
		}
		if !result.Passed {
			failures = append(failures, rc.formatter.FailureRecord(result))
		}
	})

	summary := executor.Run(cmd.Context(), suite)
	if progress != nil {
		progress.Finish()
	}

	if err := rc.storage.Save(summary, failures); err != nil {
		rc.formatter.Warnf("could not save results: %v", err)
	}

	rc.formatter.PrintSummary(summary)
	if summary.Failed > 0 {
		return &RunFailure{Failed: summary.Failed}
	}
	return nil
}

// onlyFailed restricts the suite to tests that failed in the last saved
// run. Without a saved run the full suite is kept.
func (rc *RunCommand) onlyFailed(suite []domain.TestCase) []domain.TestCase {
	output, err := rc.storage.Load()
	if err != nil {
		rc.formatter.Warnf("no saved results; running the full suite")
		return suite
	}
	failed := storage.FailedNames(output)
	var selected []domain.TestCase
	for _, tc := range suite {
		if failed[tc.Name] {
			selected = append(selected, tc)
		}
	}
	return selected
}
