package main

import (
	"fmt"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/alnah/go-html2pdf/internal/config"
	"github.com/alnah/go-html2pdf/internal/filter"
	"github.com/alnah/go-html2pdf/internal/hints"
	"github.com/alnah/go-html2pdf/internal/logging"
)

// runFilterCmd runs built-in filters as a pandoc filter process:
//
//	pandoc in.html -t json | html2pdf filter strip-image-slash html5 | pandoc -f json -o out.pdf
//
// Logging follows HTML2PDF_LOG_LEVEL and HTML2PDF_LOG_FORMAT; stdout carries
// only the tree.
func runFilterCmd(args []string, env *Environment) int {
	if len(args) == 0 {
		fmt.Fprintln(env.Stderr, "Usage: html2pdf filter <name>[,<name>...] [format]")
		return ExitUsage
	}

	filters, err := filter.Resolve(args[0])
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hints.ForUnknownFilter(filter.Names()))
		return ExitUsage
	}
	if len(filters) == 0 {
		fmt.Fprintln(env.Stderr, "error: no filter named")
		return ExitUsage
	}

	logger := logging.New(config.LogConfig{
		Level:  os.Getenv("HTML2PDF_LOG_LEVEL"),
		Format: os.Getenv("HTML2PDF_LOG_FORMAT"),
	}, env.Stderr)

	procArgs := append([]string{"html2pdf-filter"}, args[1:]...)
	return filter.Main(procArgs, env.Stdin, env.Stdout, env.Stderr, logger, filters...)
}

// runFiltersCmd lists the built-in filters.
func runFiltersCmd(env *Environment) {
	defaults := config.DefaultConfig().Filters

	tw := tabwriter.NewWriter(env.Stdout, 0, 0, 2, ' ', 0)
	for _, f := range filter.Builtins() {
		mark := ""
		if slices.Contains(defaults, f.Name) {
			mark = " (default)"
		}
		fmt.Fprintf(tw, "%s\t%s%s\n", f.Name, f.Description, mark)
	}
	_ = tw.Flush()
}
