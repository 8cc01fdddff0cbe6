// Package errors provides structured, coded errors for arbor.
//
// Every error carries a code (e.g. "E101") that maps to a short message and a
// longer explanation. Errors raised while reading a manifest also carry the
// source location, and Format renders the offending lines:
//
//	err := errors.New("E122").
//	    WithLocation("page.yaml", 12, 9).
//	    WithSuggestion(`Declare the store under "stores:"`)
//
//	fmt.Println(err.Format())
//	// ERROR E122: Unknown store
//	//
//	//   page.yaml:12:9
//	//   ...
//
// # Error Categories
//
//   - runtime: engine diagnostics (invalid children, observer loops)
//   - manifest: declarative tree file errors
//   - config: configuration loading errors
//   - cli: command-line and I/O errors
package errors
