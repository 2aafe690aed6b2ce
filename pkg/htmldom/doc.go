// Package htmldom synchronizes parsed HTML documents with back-office data.
//
// It covers the two mutations a server-rendered page needs after a REST
// call succeeds: dropping a table row by its data-id attribute, and filling
// a form's named controls from a key/value map. Documents are *html.Node
// trees from golang.org/x/net/html.
//
// Each mutation is split into a pure planning step that describes what
// would change (PlanRemoveRow, PlanForm) and a thin adapter that applies
// the plan to the tree. RemoveRow and PopulateForm combine both for
// callers that don't need the intermediate plan.
//
// Absence is not an error here: a row or field that doesn't exist yields a
// false return or a silent skip. Only missing arguments (row id, form id)
// produce errors.
package htmldom
