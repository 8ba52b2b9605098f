// Command strip-image-slash is a pandoc filter that removes one leading "/"
// from every image URL, so root-relative paths resolve against
// --resource-path:
//
//	pandoc index.html --filter strip-image-slash --resource-path assets/images -o out.pdf
//
// Set HTML2PDF_LOG_LEVEL=debug to log each rewrite on stderr.
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

	os.Exit(filter.Main(os.Args, os.Stdin, os.Stdout, os.Stderr, logger, filter.StripImageSlash()))
}
