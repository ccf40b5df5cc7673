package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aredridel/best6/internal/storage"
	"github.com/aredridel/best6/internal/ui"
)

// FailuresCommand opens the interactive viewer over the last saved run.
type FailuresCommand struct {
	storage storage.Storage
	viewer  *ui.Viewer
}

// NewFailuresCommand creates a new FailuresCommand
func NewFailuresCommand(st storage.Storage, viewer *ui.Viewer) *FailuresCommand {
	return &FailuresCommand{storage: st, viewer: viewer}
}

// Execute runs the command
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	output, err := fc.storage.Load()
	if err != nil {
		return fmt.Errorf("no saved test results: %w", err)
	}
	return fc.viewer.View(output)
}
