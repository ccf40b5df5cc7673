package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aredridel/best6/internal/cli"
	"github.com/aredridel/best6/internal/cli/commands"
	"github.com/aredridel/best6/internal/config"
	"github.com/aredridel/best6/internal/modload"
)

var version = "dev"

// newRootCommand builds the CLI; main and the tests wire it the same way.
func newRootCommand(cfg *config.Config, registry *modload.Registry) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "best [flags] [test_name ...]",
		Short: "Minimal test runner",
		Long: `A minimal test runner. Test modules register their exported functions
under their source path; best discovers the sources, selects tests by
name mask (prefix a mask with '-' to exclude) and runs them one at a
time, in order, reporting PASS/FAIL per test with diff detail on
failure.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var flags cli.Flags
	cmds := commands.NewCommands(cfg, registry)
	cmds.Register(rootCmd, &flags, cfg)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &commands.UsageError{Err: err}
	})
	return rootCmd
}

// rewriteArgs reorders argv so pflag never consumes a negated test name
// mask ("-a/b") as a shorthand flag: flags stay in front, positionals go
// behind a literal "--" in their original relative order. A leading
// subcommand name stays first so cobra still dispatches it.
func rewriteArgs(root *cobra.Command, args []string) []string {
	var flags, positionals []string

	i := 0
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		if cmd, _, err := root.Find(args[:1]); err == nil && cmd != root {
			flags = append(flags, args[0])
			i = 1
		}
	}

	for ; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positionals = append(positionals, args[i+1:]...)
			i = len(args)
		case strings.HasPrefix(arg, "--"):
			flags = append(flags, arg)
			if takesValue(arg) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			if isMask(arg) {
				positionals = append(positionals, arg)
				continue
			}
			flags = append(flags, arg)
			if takesValue(arg) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		default:
			positionals = append(positionals, arg)
		}
	}

	if len(positionals) == 0 {
		return flags
	}
	return append(append(flags, "--"), positionals...)
}

// isMask reports whether a '-'-prefixed token reads as a negated test
// name mask rather than a flag: flags never contain '/', and every
// registered shorthand is a single letter out of a known set.
func isMask(arg string) bool {
	if strings.Contains(arg, "/") {
		return true
	}
	body := arg[1:]
	if strings.Contains(body, "=") {
		return false
	}
	for _, r := range body {
		if !strings.ContainsRune("vIir", r) {
			return true
		}
	}
	return false
}

// takesValue lists the flags whose next token is a value, so include
// directories are not mistaken for masks.
func takesValue(arg string) bool {
	switch arg {
	case "--include", "--import", "--require", "-I", "-i", "-r":
		return true
	}
	return false
}

func main() {
	cfg := config.New()
	rootCmd := newRootCommand(cfg, modload.Default)

	// --help exits with the usage status, like an invalid invocation.
	helpShown := false
	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpShown = true
		defaultHelp(cmd, args)
	})

	rootCmd.SetArgs(rewriteArgs(rootCmd, os.Args[1:]))
	err := rootCmd.Execute()
	if helpShown {
		os.Exit(2)
	}
	if err == nil {
		return
	}

	var usage *commands.UsageError
	if errors.As(err, &usage) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	var failed *commands.RunFailure
	if errors.As(err, &failed) {
		// The summary banner already reported the failures.
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
