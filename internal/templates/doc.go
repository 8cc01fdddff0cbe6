// Package templates provides project scaffolding templates.
//
// Templates produce a working starter project: an arbor.yaml config and a
// manifest that renders and serves without further edits.
//
// # Available Templates
//
//   - minimal: a single static page
//   - counter: stores bound to text and class lists
//   - host: a manifest mounted into an existing HTML shell
//
// # Usage
//
//	tmpl, err := templates.Get("counter")
//	if err != nil {
//	    return err
//	}
//	if err := tmpl.Create(projectDir, templates.Config{Title: "Demo"}); err != nil {
//	    return err
//	}
//
// # Template Variables
//
// Templates support variable substitution:
//
//	{{.Title}}   - Page title
//	{{.Target}}  - Id of the mount element
//	{{.Addr}}    - Preview server address
package templates
