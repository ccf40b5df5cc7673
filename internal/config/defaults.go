package config

const (
	// DefaultInclude is scanned recursively when no --include is given
	DefaultInclude = "test"
	// DefaultDepth bounds how deeply failure values are formatted
	DefaultDepth = 3
	// DefaultResultsDir is where last-run results are kept
	DefaultResultsDir = ".best"
	// DefaultResultsFile is the last-run results file name
	DefaultResultsFile = "results.json"
	// EnvDepth overrides DefaultDepth from the environment
	EnvDepth = "BEST_DEPTH"
)

// RecognizedExtensions are the test source extensions picked up during
// discovery; other files under an included directory are skipped.
var RecognizedExtensions = []string{".mjs", ".cjs", ".node", ".js"}
