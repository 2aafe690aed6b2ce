package htmldom

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func parseDoc(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}
	return doc
}

func renderDoc(t *testing.T, doc *html.Node) string {
	t.Helper()
	var sb strings.Builder
	if err := html.Render(&sb, doc); err != nil {
		t.Fatalf("failed to render document: %v", err)
	}
	return sb.String()
}

const ordersPage = `
<table id="orders-table" class="data">
  <tr data-id="41"><td>first</td></tr>
  <tr data-id="42"><td>second</td></tr>
</table>
<table id="other-table">
  <tr data-id="99"><td>elsewhere</td></tr>
</table>`

func TestRemoveRow_ScopedByTableID(t *testing.T) {
	doc := parseDoc(t, ordersPage)

	removed, err := RemoveRow(doc, "orders-table", "42")
	if err != nil {
		t.Fatalf("RemoveRow() error = %v", err)
	}
	if !removed {
		t.Fatal("RemoveRow() = false, want true")
	}
	out := renderDoc(t, doc)
	if strings.Contains(out, "second") {
		t.Error("row 42 still present after removal")
	}
	if !strings.Contains(out, "first") {
		t.Error("row 41 should be untouched")
	}

	// Second removal of the same row finds nothing.
	removed, err = RemoveRow(doc, "orders-table", "42")
	if err != nil {
		t.Fatalf("RemoveRow() error = %v", err)
	}
	if removed {
		t.Error("second RemoveRow() = true, want false")
	}
}

func TestRemoveRow_NoGlobalFallbackWhenTableResolves(t *testing.T) {
	doc := parseDoc(t, ordersPage)

	// Row 99 lives in other-table; searching orders-table must not find it.
	removed, err := RemoveRow(doc, "orders-table", "99")
	if err != nil {
		t.Fatalf("RemoveRow() error = %v", err)
	}
	if removed {
		t.Error("RemoveRow() = true, want false for row outside the scoped table")
	}
	if !strings.Contains(renderDoc(t, doc), "elsewhere") {
		t.Error("row 99 must survive a scoped search of another table")
	}
}

func TestRemoveRow_GlobalSearchWithoutTableRef(t *testing.T) {
	doc := parseDoc(t, ordersPage)

	removed, err := RemoveRow(doc, "", "99")
	if err != nil {
		t.Fatalf("RemoveRow() error = %v", err)
	}
	if !removed {
		t.Error("RemoveRow() = false, want true via global search")
	}
}

func TestRemoveRow_UnresolvableRefFallsBackGlobally(t *testing.T) {
	doc := parseDoc(t, ordersPage)

	removed, err := RemoveRow(doc, "no-such-table", "41")
	if err != nil {
		t.Fatalf("RemoveRow() error = %v", err)
	}
	if !removed {
		t.Error("RemoveRow() = false, want true via fallback for unresolvable ref")
	}
}

func TestRemoveRow_SelectorForms(t *testing.T) {
	for _, ref := range []string{"#orders-table", ".data", "table"} {
		doc := parseDoc(t, ordersPage)
		removed, err := RemoveRow(doc, ref, "41")
		if err != nil {
			t.Fatalf("RemoveRow(%q) error = %v", ref, err)
		}
		if !removed {
			t.Errorf("RemoveRow(%q) = false, want true", ref)
		}
	}
}

func TestRemoveRow_MissingID(t *testing.T) {
	doc := parseDoc(t, ordersPage)
	_, err := RemoveRow(doc, "orders-table", "")
	if !errors.Is(err, ErrMissingRowID) {
		t.Errorf("RemoveRow('') error = %v, want ErrMissingRowID", err)
	}
}

func TestPlanRemoveRow_DoesNotMutate(t *testing.T) {
	doc := parseDoc(t, ordersPage)
	before := renderDoc(t, doc)

	plan, err := PlanRemoveRow(doc, "orders-table", "42")
	if err != nil {
		t.Fatalf("PlanRemoveRow() error = %v", err)
	}
	if plan.Row == nil {
		t.Fatal("PlanRemoveRow().Row = nil, want match")
	}
	if !plan.Scoped {
		t.Error("PlanRemoveRow().Scoped = false, want true")
	}
	if got := renderDoc(t, doc); got != before {
		t.Error("planning mutated the document")
	}

	if !plan.Apply() {
		t.Error("Apply() = false, want true")
	}
	if plan.Apply() {
		t.Error("second Apply() = true, want false for detached row")
	}
}

func TestRemoveRow_IDWithSpecialCharacters(t *testing.T) {
	doc := parseDoc(t, `<table id="t"><tr data-id="a&quot;b\c"><td>x</td></tr></table>`)
	removed, err := RemoveRow(doc, "t", `a"b\c`)
	if err != nil {
		t.Fatalf("RemoveRow() error = %v", err)
	}
	if !removed {
		t.Error("RemoveRow() = false, want true for id containing quotes and backslashes")
	}
}
