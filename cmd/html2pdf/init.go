package main

import (
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-html2pdf/internal/config"
	"github.com/alnah/go-html2pdf/internal/fileutil"
)

// defaultConfigFile is where init writes when no path is given, and the
// name LoadConfig finds as "html2pdf".
const defaultConfigFile = "html2pdf.yaml"

// filePermissions is rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// runInit writes the default configuration to a YAML file.
func runInit(args []string, env *Environment) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	force := fs.Bool("force", false, "overwrite an existing file")
	fs.Usage = func() { printInitUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("%w: init takes at most one path", ErrUsage)
	}

	path := defaultConfigFile
	if fs.NArg() == 1 {
		path = fs.Arg(0)
	}

	if fileutil.FileExists(path) && !*force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrOutputExists, path)
	}

	data, err := config.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := fileutil.WriteFileAtomic(path, data, filePermissions); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Fprintf(env.Stdout, "wrote %s\n", path)
	return nil
}
