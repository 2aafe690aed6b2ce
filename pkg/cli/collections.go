package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/inkops/inkops/pkg/resource"
	"github.com/inkops/inkops/pkg/studio"
	"github.com/inkops/inkops/pkg/validation"
)

// defaultColumns are the table columns shown per collection.
var defaultColumns = map[string][]string{
	studio.CollectionClients:   {"id", "name", "email", "phone", "active"},
	studio.CollectionPayments:  {"id", "clientId", "amount", "method", "paidAt"},
	studio.CollectionSessions:  {"id", "clientId", "artist", "scheduledAt", "status", "price"},
	studio.CollectionInventory: {"id", "name", "sku", "quantity", "unit", "reorderLevel"},
}

// listEnvelopeKey maps a collection to the array field of its list
// response.
var listEnvelopeKey = map[string]string{
	studio.CollectionClients:   "clients",
	studio.CollectionPayments:  "payments",
	studio.CollectionSessions:  "sessions",
	studio.CollectionInventory: "items",
}

func init() {
	rootCmd.AddCommand(
		newCollectionCommand(studio.CollectionClients, "client", "Manage studio clients"),
		newCollectionCommand(studio.CollectionPayments, "payment", "Manage recorded payments"),
		newCollectionCommand(studio.CollectionSessions, "session", "Manage appointments"),
		newCollectionCommand(studio.CollectionInventory, "item", "Manage inventory"),
	)
}

// newCollectionCommand builds the list/get/create/update/delete command
// group for one collection. All groups share one code path so behavior
// stays uniform across resources.
func newCollectionCommand(name, singular, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
	}

	var filterExpr, pathExpr string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List all %s", name),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := collectionClient(name)
			if err != nil {
				return err
			}
			res, err := rc.List(cmd.Context())
			if err != nil {
				return err
			}
			records, err := envelopeRecords(name, res.Value)
			if err != nil {
				return err
			}
			if filterExpr != "" {
				if records, err = filterRecords(records, filterExpr); err != nil {
					return err
				}
			}
			if pathExpr != "" {
				matches, err := extractPath(anySlice(records), pathExpr)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), matches)
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), records)
			}
			printTable(cmd.OutOrStdout(), defaultColumns[name], records)
			return nil
		},
	}
	listCmd.Flags().StringVar(&filterExpr, "filter", "", "Keep records matching an expression, e.g. 'quantity < reorderLevel'")
	listCmd.Flags().StringVar(&pathExpr, "path", "", "Extract values with a JSONPath, e.g. '$[*].name'")

	getCmd := &cobra.Command{
		Use:   "get ID",
		Short: fmt.Sprintf("Get one %s", singular),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := collectionClient(name)
			if err != nil {
				return err
			}
			res, err := rc.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res.Value)
		},
	}

	var createFile, createData string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: fmt.Sprintf("Create a %s from --file or --data", singular),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := loadRecord(createFile, createData)
			if err != nil {
				return err
			}
			if err := validateRecord(name, record); err != nil {
				return err
			}
			rc, err := collectionClient(name)
			if err != nil {
				return err
			}
			res, err := rc.Create(cmd.Context(), record)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res.Value)
		},
	}
	createCmd.Flags().StringVarP(&createFile, "file", "f", "", "Record file (JSON or YAML)")
	createCmd.Flags().StringVarP(&createData, "data", "d", "", "Record as inline JSON")

	var updateFile, updateData string
	updateCmd := &cobra.Command{
		Use:   "update ID",
		Short: fmt.Sprintf("Replace a %s from --file or --data", singular),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := loadRecord(updateFile, updateData)
			if err != nil {
				return err
			}
			if err := validateRecord(name, record); err != nil {
				return err
			}
			rc, err := collectionClient(name)
			if err != nil {
				return err
			}
			res, err := rc.Update(cmd.Context(), args[0], record)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res.Value)
		},
	}
	updateCmd.Flags().StringVarP(&updateFile, "file", "f", "", "Record file (JSON or YAML)")
	updateCmd.Flags().StringVarP(&updateData, "data", "d", "", "Record as inline JSON")

	deleteCmd := &cobra.Command{
		Use:   "delete ID",
		Short: fmt.Sprintf("Delete a %s", singular),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := collectionClient(name)
			if err != nil {
				return err
			}
			if _, err := rc.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s\n", singular, args[0])
			return nil
		},
	}

	cmd.AddCommand(listCmd, getCmd, createCmd, updateCmd, deleteCmd)
	return cmd
}

// collectionClient resolves the generic resource client for a collection.
func collectionClient(name string) (*resource.Client, error) {
	sc, err := newStudioClient()
	if err != nil {
		return nil, err
	}
	rc, ok := sc.Resource(name)
	if !ok {
		return nil, fmt.Errorf("unknown collection: %s", name)
	}
	return rc, nil
}

// envelopeRecords unwraps a list response body into generic records.
// Bare arrays are accepted alongside the usual {<collection>: [...]}
// envelope.
func envelopeRecords(name string, value any) ([]map[string]any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []any:
		return toRecords(v)
	case map[string]any:
		items, ok := v[listEnvelopeKey[name]]
		if !ok {
			return nil, fmt.Errorf("list response has no %q field", listEnvelopeKey[name])
		}
		return toRecords(items)
	default:
		return nil, fmt.Errorf("unexpected list response type %T", value)
	}
}

// anySlice widens records for JSONPath evaluation.
func anySlice(records []map[string]any) []any {
	out := make([]any, len(records))
	for i, r := range records {
		out[i] = r
	}
	return out
}

// loadRecord reads a record from a file (JSON or YAML by extension) or
// from inline JSON. Exactly one source must be provided.
func loadRecord(file, data string) (map[string]any, error) {
	if (file == "") == (data == "") {
		return nil, fmt.Errorf("provide exactly one of --file or --data")
	}
	var record map[string]any
	if data != "" {
		if err := json.Unmarshal([]byte(data), &record); err != nil {
			return nil, fmt.Errorf("invalid inline JSON: %w", err)
		}
		return record, nil
	}
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(file))
	if ext == ".yaml" || ext == ".yml" {
		if err := yaml.Unmarshal(raw, &record); err != nil {
			return nil, fmt.Errorf("invalid YAML in %s: %w", file, err)
		}
		return record, nil
	}
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", file, err)
	}
	return record, nil
}

// validateRecord checks a record against its collection schema.
func validateRecord(collection string, record map[string]any) error {
	v, err := validation.New()
	if err != nil {
		return err
	}
	result, err := v.Validate(collection, record)
	if err != nil {
		return err
	}
	if !result.Valid {
		return fmt.Errorf("invalid %s record: %s", collection, result.Error())
	}
	return nil
}
