// Package errors provides structured, coded errors for vtl.
//
// Every error carries a short code (e.g. "Q001") that maps to a registered
// category and message. Query failures attach the pretty-printed DOM of the
// container they searched as Detail, so a failing test shows what was on
// screen at the time.
//
// # Error Categories
//
//   - query: an element query found nothing, too much, or timed out
//   - render: mounting or hook setup failed
//   - config: vtl.json or environment could not be parsed
//   - cli: command line usage errors
//
// # Usage
//
//	err := errors.New("Q001").
//	    WithMessagef("Unable to find an element with the text: %s", "Submit").
//	    WithDetail(prettyDOM)
//
//	fmt.Println(err.Format())
package errors
