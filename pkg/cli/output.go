package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printTable writes records as an aligned table using the given columns.
// Column names are matched against record keys; missing values render
// empty.
func printTable(w io.Writer, columns []string, records []map[string]any) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, col := range columns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, col)
	}
	fmt.Fprintln(tw)
	for _, rec := range records {
		for i, col := range columns {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			if v, ok := rec[col]; ok && v != nil {
				fmt.Fprint(tw, formatCell(v))
			}
		}
		fmt.Fprintln(tw)
	}
	_ = tw.Flush()
}

// formatCell renders a single value compactly; nested structures fall back
// to JSON.
func formatCell(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	case map[string]any, []any:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(data)
	default:
		return fmt.Sprint(val)
	}
}

// toRecords converts any slice of structs or maps into generic records via
// a JSON round trip, so filtering and table rendering see wire-shaped keys.
func toRecords(v any) ([]map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal records: %w", err)
	}
	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to convert records: %w", err)
	}
	return records, nil
}
