package htmldom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// attr returns the value of the named attribute, if present.
func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// setAttr sets or replaces the named attribute.
func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// removeAttr deletes the named attribute if present.
func removeAttr(n *html.Node, key string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// findElement walks n depth-first in document order and returns the first
// element node for which pred is true.
func findElement(n *html.Node, pred func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && pred(n) {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findElement(child, pred); found != nil {
			return found
		}
	}
	return nil
}

// collectElements returns every element under n matching pred, in document
// order.
func collectElements(n *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && pred(n) {
			out = append(out, n)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return out
}

// elementByID returns the first element whose id attribute equals id.
func elementByID(root *html.Node, id string) *html.Node {
	return findElement(root, func(n *html.Node) bool {
		v, ok := attr(n, "id")
		return ok && v == id
	})
}

// selectorPredicate compiles a minimal selector: "#id" matches by id
// attribute, ".class" by class-list membership, anything else by tag name.
// Attribute comparisons happen on the parsed tree, so no character escaping
// is needed for values containing quotes or backslashes.
func selectorPredicate(sel string) func(*html.Node) bool {
	switch {
	case strings.HasPrefix(sel, "#"):
		want := sel[1:]
		return func(n *html.Node) bool {
			v, ok := attr(n, "id")
			return ok && v == want
		}
	case strings.HasPrefix(sel, "."):
		want := sel[1:]
		return func(n *html.Node) bool {
			classes, _ := attr(n, "class")
			for _, c := range strings.Fields(classes) {
				if c == want {
					return true
				}
			}
			return false
		}
	default:
		want := strings.ToLower(sel)
		return func(n *html.Node) bool {
			return n.Data == want
		}
	}
}

// setTextContent replaces all children of n with a single text node.
func setTextContent(n *html.Node, text string) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// textContent concatenates the text nodes under n.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return sb.String()
}

// stringValue renders a field value the way a form control stores it.
// Nil becomes the empty string.
func stringValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(val)
	}
}

// truthy reports whether a value should check a checkbox. Mirrors the
// loose-truthiness contract of the consuming pages: empty strings, zero
// numbers, false, and nil are all false; everything else is true.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case int:
		return val != 0
	case int64:
		return val != 0
	case float64:
		return val != 0
	default:
		return true
	}
}
