package htmldom

import (
	"errors"
	"sort"

	"golang.org/x/net/html"
)

// ErrMissingFormID is returned when a form operation is called without a
// form id.
var ErrMissingFormID = errors.New("form id is required")

// FieldKind classifies a form control for dispatch.
type FieldKind string

// Field kinds.
const (
	FieldCheckbox FieldKind = "checkbox"
	FieldRadio    FieldKind = "radio"
	FieldSelect   FieldKind = "select"
	FieldTextarea FieldKind = "textarea"
	FieldInput    FieldKind = "input"
	FieldOther    FieldKind = "other"
)

// FieldChange describes one pending mutation to a form control.
type FieldChange struct {
	// Name is the control's name attribute.
	Name string
	// Kind is the dispatch class of the control.
	Kind FieldKind
	// Value is the string form of the assigned value.
	Value string
	// Checked is the target state for checkbox controls.
	Checked bool

	node   *html.Node   // the control itself (select element for selects)
	option *html.Node   // matched option or radio input
	group  []*html.Node // radio group members / select options
}

// FormPlan is the pure description of a form population: which controls
// change, which keys had no control, and which controls were found but
// left untouched because no option matched the supplied value.
type FormPlan struct {
	Form      *html.Node
	Changes   []FieldChange
	Skipped   []string
	Untouched []string
}

// PlanForm computes the changes PopulateForm would make, without mutating
// the document. formID must be non-empty. A form that cannot be located or
// a nil data map yields a nil plan with no error; keys without a matching
// named control are recorded as skipped.
func PlanForm(doc *html.Node, formID string, data map[string]any) (*FormPlan, error) {
	if formID == "" {
		return nil, ErrMissingFormID
	}
	form := elementByID(doc, formID)
	if form == nil || form.Data != "form" || data == nil {
		return nil, nil
	}

	plan := &FormPlan{Form: form}

	// Deterministic order regardless of map iteration.
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		controls := collectElements(form, func(n *html.Node) bool {
			v, ok := attr(n, "name")
			return ok && v == key
		})
		if len(controls) == 0 {
			plan.Skipped = append(plan.Skipped, key)
			continue
		}
		change, matched := planField(key, controls, data[key])
		if !matched {
			plan.Untouched = append(plan.Untouched, key)
			continue
		}
		plan.Changes = append(plan.Changes, change)
	}
	return plan, nil
}

// planField dispatches on the first named control. Radio groups consider
// every control sharing the name. The second return value is false when
// the control exists but nothing would change (unmatched radio or select
// value).
func planField(key string, controls []*html.Node, value any) (FieldChange, bool) {
	first := controls[0]
	change := FieldChange{Name: key, node: first}

	switch first.Data {
	case "input":
		typ, _ := attr(first, "type")
		switch typ {
		case "checkbox":
			change.Kind = FieldCheckbox
			change.Checked = truthy(value)
			return change, true
		case "radio":
			change.Kind = FieldRadio
			change.Value = stringValue(value)
			change.group = controls
			for _, radio := range controls {
				if v, _ := attr(radio, "value"); v == change.Value {
					change.option = radio
					return change, true
				}
			}
			return change, false
		default:
			change.Kind = FieldInput
			change.Value = stringValue(value)
			return change, true
		}
	case "select":
		change.Kind = FieldSelect
		change.Value = stringValue(value)
		change.group = collectElements(first, func(n *html.Node) bool {
			return n.Data == "option"
		})
		for _, opt := range change.group {
			if optionValue(opt) == change.Value {
				change.option = opt
				return change, true
			}
		}
		return change, false
	case "textarea":
		change.Kind = FieldTextarea
		change.Value = stringValue(value)
		return change, true
	default:
		change.Kind = FieldOther
		change.Value = stringValue(value)
		return change, true
	}
}

// optionValue is the option's value attribute, or its text when the
// attribute is absent, matching form-element semantics.
func optionValue(opt *html.Node) string {
	if v, ok := attr(opt, "value"); ok {
		return v
	}
	return textContent(opt)
}

// Apply mutates the document according to the plan. Safe on a nil plan.
func (p *FormPlan) Apply() {
	if p == nil {
		return
	}
	for _, change := range p.Changes {
		applyField(change)
	}
}

func applyField(change FieldChange) {
	switch change.Kind {
	case FieldCheckbox:
		if change.Checked {
			setAttr(change.node, "checked", "checked")
		} else {
			removeAttr(change.node, "checked")
		}
	case FieldRadio:
		for _, radio := range change.group {
			removeAttr(radio, "checked")
		}
		if change.option != nil {
			setAttr(change.option, "checked", "checked")
		}
	case FieldSelect:
		for _, opt := range change.group {
			removeAttr(opt, "selected")
		}
		if change.option != nil {
			setAttr(change.option, "selected", "selected")
		}
	case FieldTextarea, FieldOther:
		setTextContent(change.node, change.Value)
	case FieldInput:
		setAttr(change.node, "value", change.Value)
	}
}

// PopulateForm plans and applies a form population. It returns false when
// the form cannot be located or data is nil, and true once iteration
// completes, even if some keys were skipped.
func PopulateForm(doc *html.Node, formID string, data map[string]any) (bool, error) {
	plan, err := PlanForm(doc, formID, data)
	if err != nil {
		return false, err
	}
	if plan == nil {
		return false, nil
	}
	plan.Apply()
	return true, nil
}
