package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/inkops/inkops/pkg/validation"
)

// importFile is the on-disk shape of a bulk import file.
type importFile struct {
	Collection string           `json:"collection" yaml:"collection"`
	Records    []map[string]any `json:"records" yaml:"records"`
}

func init() {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "import PATTERN...",
		Short: "Bulk-create records from JSON/YAML files",
		Long: `Import record files matched by glob patterns (** is supported) and
create their records through the API. Each file names its collection:

  collection: inventory
  records:
    - name: black ink
      quantity: 12

Records are validated against the collection schema before anything is
sent; a file with an invalid record is skipped entirely.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := expandPatterns(args)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no files matched")
			}

			validator, err := validation.New()
			if err != nil {
				return err
			}

			created, skipped := 0, 0
			for _, path := range paths {
				file, err := loadImportFile(path)
				if err != nil {
					return err
				}
				if err := validateImportFile(validator, path, file); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
					skipped++
					continue
				}
				if dryRun {
					created += len(file.Records)
					continue
				}
				rc, err := collectionClient(file.Collection)
				if err != nil {
					return err
				}
				for _, record := range file.Records {
					if _, err := rc.Create(cmd.Context(), record); err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					created++
				}
			}

			verb := "Created"
			if dryRun {
				verb = "Validated"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d records from %d files (%d skipped)\n",
				verb, created, len(paths)-skipped, skipped)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate files without creating anything")
	rootCmd.AddCommand(cmd)
}

// expandPatterns resolves glob patterns (with ** support) to a sorted,
// de-duplicated file list. Literal paths pass through untouched.
func expandPatterns(patterns []string) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, pattern := range patterns {
		var matches []string
		if strings.ContainsAny(pattern, "*?[{") {
			var err error
			matches, err = doublestar.FilepathGlob(pattern)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
			}
		} else {
			matches = []string{pattern}
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out, nil
}

func loadImportFile(path string) (*importFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var file importFile
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
		}
	} else {
		if err := json.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
		}
	}
	if file.Collection == "" {
		return nil, fmt.Errorf("%s: missing collection field", path)
	}
	return &file, nil
}

func validateImportFile(v *validation.Validator, path string, file *importFile) error {
	for i, record := range file.Records {
		result, err := v.Validate(file.Collection, record)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if !result.Valid {
			return fmt.Errorf("%s: record %d invalid: %s", path, i+1, result.Error())
		}
	}
	return nil
}
