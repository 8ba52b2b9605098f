// Package assets provides the stylesheets applied to rendered documents.
//
// Styles come from two places:
//
//	StyleLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in styles compiled into the binary
//	    ├── FilesystemLoader  - {basePath}/styles/{name}.css on disk
//	    └── Resolver          - custom directory first, embedded fallback
//
// A stylesheet reference is either a file path ("pdf_styles.css",
// "./print/a4.css") or a style name ("default"). Resolver.Resolve accepts
// both; names are validated so they cannot escape the styles directory.
package assets
