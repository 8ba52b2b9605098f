package main

import (
	"fmt"
	"io"
	"strings"

	html2pdf "github.com/alnah/go-html2pdf"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2pdf <command> [flags] [args]")
	fmt.Fprintln(w, "       html2pdf <input.html> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert     Convert a document with pandoc (default)")
	fmt.Fprintln(w, "  filter      Run built-in filters as a pandoc filter")
	fmt.Fprintln(w, "  filters     List built-in filters")
	fmt.Fprintln(w, "  doctor      Check pandoc, PDF engines and Chrome")
	fmt.Fprintln(w, "  init        Write a default config file")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'html2pdf help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2pdf convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Read a document with pandoc, run the filters in order, and render it.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>         Output file or directory (default: output.pdf)")
	fmt.Fprintln(w, "  -f, --from <format>         pandoc reader (default: html)")
	fmt.Fprintln(w, "  -T, --to <format>           pandoc writer (default: pdf)")
	fmt.Fprintln(w, "  -r, --resource-path <dir>   Image search directory, repeatable (default: assets/images)")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -e, --engine <name>         PDF engine (default: wkhtmltopdf)")
	fmt.Fprintf(w, "                              %s\n", strings.Join(html2pdf.Engines(), ", "))
	fmt.Fprintln(w, "      --css <path|name>       Stylesheet file or built-in style (default: pdf_styles.css)")
	fmt.Fprintln(w, "      --no-style              Do not pass a stylesheet")
	fmt.Fprintln(w, "      --asset-path <dir>      Directory with styles/{name}.css")
	fmt.Fprintln(w, "      --pandoc <path>         pandoc executable")
	fmt.Fprintln(w, "  -t, --timeout <duration>    Conversion timeout (default: 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Filters:")
	fmt.Fprintln(w, "  -F, --filter <name|path>    Filter, applied in order, repeatable (default: strip-image-slash)")
	fmt.Fprintln(w, "      --no-filters            Disable all filters")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Log every stage")
	fmt.Fprintln(w, "      --log-level <level>     debug, info, warn, error")
	fmt.Fprintln(w, "      --log-format <format>   text, json")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  HTML2PDF_CONFIG, HTML2PDF_FROM, HTML2PDF_TO, HTML2PDF_OUTPUT,")
	fmt.Fprintln(w, "  HTML2PDF_RESOURCE_PATH, HTML2PDF_CSS, HTML2PDF_ASSET_PATH, HTML2PDF_ENGINE,")
	fmt.Fprintln(w, "  HTML2PDF_PANDOC, HTML2PDF_TIMEOUT, HTML2PDF_FILTERS, HTML2PDF_LOG_LEVEL,")
	fmt.Fprintln(w, "  HTML2PDF_LOG_FORMAT. Flags override environment, which overrides the config file.")
}

// printFilterUsage prints usage for the filter command.
func printFilterUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2pdf filter <name>[,<name>...] [format]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Read a pandoc JSON tree on stdin, apply built-in filters in order,")
	fmt.Fprintln(w, "and write the tree to stdout. format is the target writer (e.g. html5).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes: 0 ok, 1 error, 5 input is not a pandoc tree, 6 malformed node.")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2pdf doctor [--json] [--engine <name>] [--pandoc <path>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that pandoc, the PDF engine and Chrome are installed.")
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2pdf init [path] [--force]")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Write the default configuration to path (default: %s).\n", defaultConfigFile)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "filter":
		printFilterUsage(env.Stdout)
	case "filters":
		fmt.Fprintln(env.Stdout, "Usage: html2pdf filters")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "List built-in filters.")
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: html2pdf version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: html2pdf help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
