// Package pipeline prepares pandoc's standalone HTML for rendering in
// headless Chrome.
//
// pandoc-driven PDF engines read the stylesheet and resolve images through
// --css and --resource-path themselves. Chrome only sees a single HTML file
// loaded from a temporary location, so before rendering the page needs:
//   - the stylesheet inlined as a <style> block in <head>
//   - relative img[src] and a[href] references resolved against the
//     resource search path and rewritten to absolute file:// URLs
//
// Both steps operate on one parsed tree (golang.org/x/net/html): Parse,
// then InjectCSS and RewriteResourcePaths, then Render.
package pipeline
