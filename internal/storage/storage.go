package storage

import (
	"github.com/aredridel/best6/internal/config"
	"github.com/aredridel/best6/internal/domain"
)

// Storage persists the results of the last run, for the failures viewer
// and for --failed re-run selection.
type Storage interface {
	Save(summary domain.RunSummary, failures []domain.FailureRecord) error
	Load() (*domain.RunOutput, error)
}

// JSONStorage stores results in a JSON file under the configured results
// path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage reading and writing the config's
// results path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}

// FailedNames returns the qualified names that failed in a saved run.
func FailedNames(output *domain.RunOutput) map[string]bool {
	failed := make(map[string]bool, len(output.Failures))
	for _, f := range output.Failures {
		failed[f.TestName] = true
	}
	return failed
}
