package htmldom

import (
	"errors"

	"golang.org/x/net/html"
)

// ErrMissingRowID is returned when a row operation is called without an id.
var ErrMissingRowID = errors.New("row id is required")

// RowIDAttr is the attribute correlating a table row with a backend entity.
const RowIDAttr = "data-id"

// RowRemoval describes the outcome of planning a row removal.
type RowRemoval struct {
	// Row is the matched row, or nil when no row matched.
	Row *html.Node
	// Scoped reports whether the search was confined to a resolved table.
	Scoped bool
}

// PlanRemoveRow locates the first <tr> whose data-id attribute equals id,
// without mutating the document.
//
// When tableRef is non-empty it is resolved first as an element id, then as
// a minimal selector (#id, .class, tag). If it resolves, the search is
// confined to that table: a table that exists but holds no matching row
// yields an empty plan, with no global fallback. An empty or unresolvable
// tableRef falls back to a single whole-document search.
func PlanRemoveRow(doc *html.Node, tableRef, id string) (*RowRemoval, error) {
	if id == "" {
		return nil, ErrMissingRowID
	}

	scope := doc
	scoped := false
	if tableRef != "" {
		if table := resolveContainer(doc, tableRef); table != nil {
			scope = table
			scoped = true
		}
	}

	row := findElement(scope, func(n *html.Node) bool {
		if n.Data != "tr" {
			return false
		}
		v, ok := attr(n, RowIDAttr)
		return ok && v == id
	})
	return &RowRemoval{Row: row, Scoped: scoped}, nil
}

// RemoveRow plans and applies a row removal. It reports whether a row was
// actually removed; a missing row is not an error.
func RemoveRow(doc *html.Node, tableRef, id string) (bool, error) {
	plan, err := PlanRemoveRow(doc, tableRef, id)
	if err != nil {
		return false, err
	}
	return plan.Apply(), nil
}

// Apply detaches the planned row from its parent. It reports whether a
// removal occurred and is safe to call on an empty plan.
func (r *RowRemoval) Apply() bool {
	if r == nil || r.Row == nil || r.Row.Parent == nil {
		return false
	}
	r.Row.Parent.RemoveChild(r.Row)
	return true
}

// resolveContainer resolves a table reference: by id attribute first, then
// as a minimal selector.
func resolveContainer(doc *html.Node, ref string) *html.Node {
	if n := elementByID(doc, ref); n != nil {
		return n
	}
	return findElement(doc, selectorPredicate(ref))
}
