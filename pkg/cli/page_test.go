package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageFixture = `<html><body>
<table id="orders-table"><tbody>
<tr data-id="41"><td>kept</td></tr>
<tr data-id="42"><td>dropped</td></tr>
</tbody></table>
<form id="client-form">
<input type="text" name="name" value="">
<input type="checkbox" name="active">
</form>
</body></html>`

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestPageDropRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(pageFixture), 0o600))

	out := runCommand(t, "page", "drop-row", path, "42", "--table", "orders-table", "-o", path)
	assert.Contains(t, out, "Removed row 42")

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(saved), "dropped")
	assert.Contains(t, string(saved), "kept")
}

func TestPageDropRow_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(pageFixture), 0o600))

	out := runCommand(t, "page", "drop-row", path, "99", "--table", "orders-table", "-o", path)
	assert.Contains(t, out, `No row with data-id="99"`)

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(saved), "dropped")
}

func TestPageFillForm(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	outPath := filepath.Join(dir, "filled.html")
	require.NoError(t, os.WriteFile(path, []byte(pageFixture), 0o600))

	out := runCommand(t, "page", "fill-form", path, "client-form", "name=Ana", "active=true", "-o", outPath)
	assert.Contains(t, out, "Populated form client-form")

	saved, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(saved), `value="Ana"`)
	assert.Contains(t, string(saved), `checked`)
}

func TestPageFillForm_MissingForm(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(pageFixture), 0o600))

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"page", "fill-form", path, "no-such-form", "name=Ana", "-o", path})
	err := rootCmd.Execute()
	assert.ErrorContains(t, err, `form "no-such-form" not found`)
}

func TestParseAssignments(t *testing.T) {
	data, err := parseAssignments([]string{"name=Ana", "active=true", "price=120.5", "notes=", "sku=A=B"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", data["name"])
	assert.Equal(t, true, data["active"])
	assert.Equal(t, 120.5, data["price"])
	assert.Equal(t, "", data["notes"])
	assert.Equal(t, "A=B", data["sku"])
}

func TestParseAssignments_Invalid(t *testing.T) {
	_, err := parseAssignments([]string{"noequals"})
	assert.ErrorContains(t, err, "invalid assignment")

	_, err = parseAssignments([]string{"=value"})
	assert.ErrorContains(t, err, "invalid assignment")
}
