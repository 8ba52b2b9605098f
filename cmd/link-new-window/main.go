// Command link-new-window is a pandoc filter that makes every link open in a
// new window (target="_blank", rel="noopener noreferrer").
package main

import (
	"os"

	"github.com/alnah/go-html2pdf/internal/config"
	"github.com/alnah/go-html2pdf/internal/filter"
	"github.com/alnah/go-html2pdf/internal/logging"
)

func main() {
	logger := logging.New(config.LogConfig{
		Level:  os.Getenv("HTML2PDF_LOG_LEVEL"),
		Format: os.Getenv("HTML2PDF_LOG_FORMAT"),
	}, os.Stderr)

	os.Exit(filter.Main(os.Args, os.Stdin, os.Stdout, os.Stderr, logger, filter.LinkNewWindow()))
}
