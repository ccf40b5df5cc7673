package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aredridel/best6/internal/domain"
)

// Save writes the run summary and failure details to the results file.
func (s *JSONStorage) Save(summary domain.RunSummary, failures []domain.FailureRecord) error {
	output := domain.RunOutput{
		Meta: domain.RunMeta{
			TotalTests:      summary.Total,
			PassedTests:     summary.Total - summary.Failed,
			FailedTests:     summary.Failed,
			Duration:        summary.Duration.String(),
			DurationSeconds: summary.Duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Failures: failures,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	path := s.cfg.ResultsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create results dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// Load reads the last run from the results file.
func (s *JSONStorage) Load() (*domain.RunOutput, error) {
	data, err := os.ReadFile(s.cfg.ResultsPath())
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}
