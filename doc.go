// Package html2pdf converts documents to PDF by driving pandoc, applying
// filters to pandoc's document tree between reading and rendering.
//
// # Quick Start
//
//	conv, err := html2pdf.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, html2pdf.Input{
//	    Path:         "index.html",
//	    Output:       "output.pdf",
//	    ResourcePath: []string{"assets/images"},
//	    CSS:          "pdf_styles.css",
//	    Engine:       "wkhtmltopdf",
//	    Filters:      []string{"strip-image-slash"},
//	})
//
// # Conversion Pipeline
//
//  1. Read: pandoc parses the input into its JSON document tree
//     (pandoc <input> -f <from> -t json).
//  2. Filter: each filter runs in order over the tree. Built-in filters
//     (see internal/filter) run in-process; any other entry is an executable
//     speaking pandoc's filter protocol: the writer format as its only
//     argument, the tree on stdin, the rewritten tree on stdout.
//  3. Render: pandoc writes the filtered tree with the configured PDF engine
//     (wkhtmltopdf, weasyprint, prince, pdflatex, typst, ...), or, for the
//     "chrome" engine, writes standalone HTML that headless Chrome (go-rod)
//     prints to PDF.
//
// Filters receive the writer format pandoc itself would use for the chosen
// engine: "html5" for HTML-based engines and Chrome, "latex" for LaTeX
// engines, "typst" for typst, and the target format for non-PDF output.
//
// # Browser Requirements
//
// The chrome engine needs Chrome/Chromium. go-rod downloads a managed
// Chromium on first run (~/.cache/rod/browser/). Set ROD_BROWSER_BIN to use
// an installed browser and ROD_NO_SANDBOX=1 in containers.
package html2pdf
