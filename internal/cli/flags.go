package cli

import "github.com/aredridel/best6/internal/config"

// Flags holds raw command-line values before they are folded into the
// run configuration.
type Flags struct {
	Verbose  bool
	Includes []string
	Imports  []string
	Requires []string
	Failed   bool
}

// ToConfigFlags merges the --require alias into the import list and
// converts to the config layer's flag struct.
func (f *Flags) ToConfigFlags() config.Flags {
	imports := make([]string, 0, len(f.Imports)+len(f.Requires))
	imports = append(imports, f.Imports...)
	imports = append(imports, f.Requires...)
	return config.Flags{
		Verbose:    f.Verbose,
		Includes:   f.Includes,
		Imports:    imports,
		OnlyFailed: f.Failed,
	}
}
