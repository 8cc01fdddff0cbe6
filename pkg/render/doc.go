// Package render serializes live widget trees to HTML.
//
// Nodes are converted to golang.org/x/net/html nodes and written with
// html.Render, which handles escaping, void elements and raw-text elements.
//
// # Basic Usage
//
// To render a node to a string:
//
//	renderer := render.NewRenderer(render.Config{})
//	html, err := renderer.RenderToString(root)
//
// To stream HTML to a writer:
//
//	err := renderer.RenderToWriter(w, root)
//
// # Markers
//
// Region markers and empty placeholders are empty text nodes and produce no
// output. With Config.MarkerComments set they render as <!--arbor--> so the
// region structure is visible when debugging.
//
// # Full Page Rendering
//
// To render a complete HTML document around a mounted tree:
//
//	err := renderer.RenderPage(w, render.Page{
//	    Title: "Preview",
//	    Body:  target,
//	})
//
// # Properties
//
// Properties become attributes in first-set order. Booleans follow the HTML
// boolean attribute rules, nil and function values are skipped and every
// other value is formatted with fmt.
package render
