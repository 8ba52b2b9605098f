package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// sourceFlags holds flags describing how the input is read.
type sourceFlags struct {
	from         string
	resourcePath []string
}

// renderFlags holds rendering backend flags.
type renderFlags struct {
	to        string
	engine    string
	css       string
	assetPath string
	pandoc    string
	timeout   string
	noStyle   bool
}

// filterFlags holds the filter list flags.
type filterFlags struct {
	names     []string
	noFilters bool
}

// logFlags holds log output flags.
type logFlags struct {
	level  string
	format string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common  commonFlags
	output  string
	source  sourceFlags
	render  renderFlags
	filters filterFlags
	log     logFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log every stage (debug level)")
}

// addSourceFlags adds input flags to a FlagSet.
func addSourceFlags(fs *flag.FlagSet, f *sourceFlags) {
	fs.StringVarP(&f.from, "from", "f", "", "pandoc reader (default: html)")
	fs.StringSliceVarP(&f.resourcePath, "resource-path", "r", nil, "directories searched for images (repeatable)")
}

// addRenderFlags adds rendering flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVarP(&f.to, "to", "T", "", "pandoc writer (default: pdf)")
	fs.StringVarP(&f.engine, "engine", "e", "", "PDF engine, or chrome for headless Chrome (default: wkhtmltopdf)")
	fs.StringVar(&f.css, "css", "", "stylesheet file path or built-in style name")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with styles/{name}.css overriding built-in styles")
	fs.StringVar(&f.pandoc, "pandoc", "", "pandoc executable (default: pandoc)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "conversion timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.noStyle, "no-style", false, "do not pass a stylesheet")
}

// addFilterFlags adds filter flags to a FlagSet.
func addFilterFlags(fs *flag.FlagSet, f *filterFlags) {
	fs.StringSliceVarP(&f.names, "filter", "F", nil, "built-in filter name or executable, applied in order (repeatable)")
	fs.BoolVar(&f.noFilters, "no-filters", false, "disable all filters")
}

// addLogFlags adds log flags to a FlagSet.
func addLogFlags(fs *flag.FlagSet, f *logFlags) {
	fs.StringVar(&f.level, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&f.format, "log-format", "", "log format: text, json")
}

// registerConvertFlags adds every convert flag to fs.
// Shared by parseConvertFlags and completion.
func registerConvertFlags(fs *flag.FlagSet, f *convertFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: output.pdf)")

	addCommonFlags(fs, &f.common)
	addSourceFlags(fs, &f.source)
	addRenderFlags(fs, &f.render)
	addFilterFlags(fs, &f.filters)
	addLogFlags(fs, &f.log)
}

// parseConvertFlags parses convert command flags and returns positional args.
// Parse errors and usage go to stderr.
func parseConvertFlags(args []string, stderr io.Writer) (*convertFlags, *flag.FlagSet, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}
	registerConvertFlags(fs, f)

	fs.SetOutput(stderr)
	fs.Usage = func() { printConvertUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, nil, err
	}

	return f, fs, fs.Args(), nil
}
