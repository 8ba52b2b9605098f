package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	verbose := hasFlag(os.Args[1:], "-v", "--verbose")

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// commands lists the subcommand names. Anything else is an input document
// for the default convert command.
var commands = map[string]bool{
	"convert":    true,
	"filter":     true,
	"filters":    true,
	"doctor":     true,
	"init":       true,
	"completion": true,
	"version":    true,
	"help":       true,
}

// runMain dispatches args to a command and returns the process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	switch cmd {
	case "convert":
		return report(env, runConvert(ctx, rest, env))
	case "filter":
		return runFilterCmd(rest, env)
	case "filters":
		runFiltersCmd(env)
		return ExitSuccess
	case "doctor":
		return runDoctorCmd(rest, env)
	case "init":
		return report(env, runInit(rest, env))
	case "completion":
		return report(env, runCompletion(rest, env))
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "html2pdf %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(rest, env)
	}

	if isConvertInvocation(cmd) {
		return report(env, runConvert(ctx, args[1:], env))
	}

	fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
	printUsage(env.Stderr)
	return ExitUsage
}

// isConvertInvocation reports whether the first argument starts a convert
// command without naming it: a flag or something shaped like a file.
func isConvertInvocation(arg string) bool {
	if commands[arg] {
		return false
	}
	return strings.HasPrefix(arg, "-") ||
		filepath.Ext(arg) != "" ||
		strings.ContainsAny(arg, `/\`)
}

// report prints err with its hint and returns the matching exit code.
func report(env *Environment, err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "error: %v\n", err)
	return exitCodeFor(err)
}

// hasFlag reports whether any of names appears in args before a "--".
func hasFlag(args []string, names ...string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		for _, n := range names {
			if a == n {
				return true
			}
		}
	}
	return false
}
