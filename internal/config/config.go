package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the full configuration of one run. It is assembled once
// from flags and the environment and passed through the components
// explicitly; nothing reads flag state behind its back.
type Config struct {
	Verbose    bool
	Includes   []string
	Imports    []string
	OnlyFailed bool

	// ExplicitIncludes is set when --include was given. A missing
	// explicit path is fatal; the implicit default merely yields an
	// empty discovery.
	ExplicitIncludes bool

	// Recognized test source extensions
	Extensions []string

	// Depth bounds failure value formatting (BEST_DEPTH)
	Depth int

	ResultsDir  string
	ResultsFile string
}

// Flags holds parsed command-line values before they are folded into a
// Config.
type Flags struct {
	Verbose    bool
	Includes   []string
	Imports    []string
	OnlyFailed bool
}

// New creates a Config with defaults.
func New() *Config {
	cfg := &Config{
		Includes:    []string{DefaultInclude},
		Depth:       DefaultDepth,
		ResultsDir:  DefaultResultsDir,
		ResultsFile: DefaultResultsFile,
	}
	cfg.Extensions = make([]string, len(RecognizedExtensions))
	copy(cfg.Extensions, RecognizedExtensions)
	return cfg
}

// Load builds the run configuration from flags and the environment. A
// .env file in the working directory is honored when present.
func Load(flags Flags) *Config {
	_ = godotenv.Load()

	cfg := New()
	cfg.Verbose = flags.Verbose
	cfg.Imports = flags.Imports
	cfg.OnlyFailed = flags.OnlyFailed
	if len(flags.Includes) > 0 {
		cfg.Includes = flags.Includes
		cfg.ExplicitIncludes = true
	}
	if v := os.Getenv(EnvDepth); v != "" {
		if depth, err := strconv.Atoi(v); err == nil && depth > 0 {
			cfg.Depth = depth
		}
	}
	return cfg
}

// ResultsPath returns the absolute path of the saved last-run results, so
// run, list and failures always agree on the file regardless of cwd.
func (c *Config) ResultsPath() string {
	p := filepath.Join(c.ResultsDir, c.ResultsFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
