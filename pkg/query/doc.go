// Package query finds elements in a rendered DOM the way a user would:
// by their text, role, label, placeholder, alt text, title, display value
// or test id.
//
// Every query comes in six variants:
//
//	GetBy      exactly one match, error otherwise
//	GetAllBy   at least one match, error otherwise
//	QueryBy    zero or one match, error on several
//	QueryAllBy any number of matches
//	FindBy     GetBy retried until it succeeds or the timeout elapses
//	FindAllBy  GetAllBy retried the same way
//
// Queries are usually called through a [BoundQueries] scoped to a
// container:
//
//	q := query.Within(container)
//	button, err := q.GetByRole("button", query.Name("Save"))
//	if err != nil {
//	    t.Fatal(err)
//	}
//	query.Fire.Click(button)
//
// Failed queries return a *errors.VtlError whose detail is the pretty
// printed container, so the test log shows what was actually rendered.
//
// Find* and WaitFor poll on the calling goroutine. Work that updates the
// DOM from another goroutine must synchronize with the test itself.
package query
