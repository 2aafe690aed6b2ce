package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/net/html"

	"github.com/inkops/inkops/pkg/htmldom"
)

func init() {
	pageCmd := &cobra.Command{
		Use:   "page",
		Short: "Edit saved server-rendered HTML pages offline",
		Long: `The page commands apply the same row/form updates the live UI performs
to a saved HTML page, which is useful for building and repairing test
fixtures without a running server.`,
	}

	var dropTable, dropOut string
	dropCmd := &cobra.Command{
		Use:   "drop-row FILE ID",
		Short: "Remove the table row whose data-id matches ID",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := parsePageFile(args[0])
			if err != nil {
				return err
			}
			removed, err := htmldom.RemoveRow(doc, dropTable, args[1])
			if err != nil {
				return err
			}
			if !removed {
				fmt.Fprintf(cmd.OutOrStdout(), "No row with %s=%q found\n", htmldom.RowIDAttr, args[1])
				return nil
			}
			if err := writePageFile(outputPath(dropOut, args[0]), doc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed row %s\n", args[1])
			return nil
		},
	}
	dropCmd.Flags().StringVar(&dropTable, "table", "", "Confine the search to a table (id or #id/.class/tag selector)")
	dropCmd.Flags().StringVarP(&dropOut, "output", "o", "", "Write to a file instead of editing in place")

	var fillOut string
	fillCmd := &cobra.Command{
		Use:   "fill-form FILE FORM_ID KEY=VALUE...",
		Short: "Populate a form's named fields",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseAssignments(args[2:])
			if err != nil {
				return err
			}
			doc, err := parsePageFile(args[0])
			if err != nil {
				return err
			}
			done, err := htmldom.PopulateForm(doc, args[1], data)
			if err != nil {
				return err
			}
			if !done {
				return fmt.Errorf("form %q not found", args[1])
			}
			if err := writePageFile(outputPath(fillOut, args[0]), doc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Populated form %s\n", args[1])
			return nil
		},
	}
	fillCmd.Flags().StringVarP(&fillOut, "output", "o", "", "Write to a file instead of editing in place")

	pageCmd.AddCommand(dropCmd, fillCmd)
	rootCmd.AddCommand(pageCmd)
}

func parsePageFile(path string) (*html.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	defer func() { _ = f.Close() }()
	doc, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	return doc, nil
}

func writePageFile(path string, doc *html.Node) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}
	defer func() { _ = f.Close() }()
	return html.Render(f, doc)
}

func outputPath(override, original string) string {
	if override != "" {
		return override
	}
	return original
}

// parseAssignments turns KEY=VALUE arguments into a data map. Values that
// parse as JSON scalars (true, 3, null) keep their type; everything else
// stays a string.
func parseAssignments(args []string) (map[string]any, error) {
	data := make(map[string]any, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid assignment %q, want KEY=VALUE", arg)
		}
		var parsed any
		if err := json.Unmarshal([]byte(value), &parsed); err == nil {
			switch parsed.(type) {
			case map[string]any, []any:
				data[key] = value
			default:
				data[key] = parsed
			}
		} else {
			data[key] = value
		}
	}
	return data, nil
}
