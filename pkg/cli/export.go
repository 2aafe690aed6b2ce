package cli

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/beevik/etree"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/inkops/inkops/pkg/studio"
)

func init() {
	var format, outFile string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all collections as JSON, YAML, or XML",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := newStudioClient()
			if err != nil {
				return err
			}

			snapshot := map[string][]map[string]any{}
			for _, name := range sc.Collections() {
				rc, _ := sc.Resource(name)
				res, err := rc.List(cmd.Context())
				if err != nil {
					return err
				}
				records, err := envelopeRecords(name, res.Value)
				if err != nil {
					return err
				}
				snapshot[name] = records
			}

			out := cmd.OutOrStdout()
			if outFile != "" {
				f, err := os.Create(outFile)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", outFile, err)
				}
				defer func() { _ = f.Close() }()
				out = f
			}
			return renderExport(out, format, snapshot)
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json, yaml, or xml")
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "Write to a file instead of stdout")
	rootCmd.AddCommand(cmd)
}

// renderExport writes the snapshot in the requested format.
func renderExport(w io.Writer, format string, snapshot map[string][]map[string]any) error {
	switch format {
	case "json":
		return printJSON(w, snapshot)
	case "yaml":
		data, err := yaml.Marshal(snapshot)
		if err != nil {
			return fmt.Errorf("failed to marshal export: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "xml":
		return renderExportXML(w, snapshot)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// singularElement maps a collection to its per-record XML element name.
var singularElement = map[string]string{
	studio.CollectionClients:   "client",
	studio.CollectionPayments:  "payment",
	studio.CollectionSessions:  "session",
	studio.CollectionInventory: "item",
}

// renderExportXML builds a <backoffice> document with one element per
// record and one child element per field, fields in sorted order so the
// output is stable.
func renderExportXML(w io.Writer, snapshot map[string][]map[string]any) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("backoffice")

	collections := make([]string, 0, len(snapshot))
	for name := range snapshot {
		collections = append(collections, name)
	}
	sort.Strings(collections)

	for _, name := range collections {
		group := root.CreateElement(name)
		elem := singularElement[name]
		if elem == "" {
			elem = "record"
		}
		for _, record := range snapshot[name] {
			node := group.CreateElement(elem)
			keys := make([]string, 0, len(record))
			for k := range record {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				node.CreateElement(k).SetText(formatCell(record[k]))
			}
		}
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}
