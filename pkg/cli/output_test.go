package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkops/inkops/pkg/api/types"
)

func TestFormatCell(t *testing.T) {
	assert.Equal(t, "abc", formatCell("abc"))
	assert.Equal(t, "3", formatCell(3.0))
	assert.Equal(t, "2.5", formatCell(2.5))
	assert.Equal(t, "true", formatCell(true))
	assert.Equal(t, `["a"]`, formatCell([]any{"a"}))
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	printTable(&buf, []string{"id", "name"}, []map[string]any{
		{"id": 1.0, "name": "black ink", "ignored": "x"},
		{"id": 2.0},
	})
	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "id")
	assert.Contains(t, lines[0], "name")
	assert.Contains(t, lines[1], "black ink")
	assert.NotContains(t, out, "ignored")
}

func TestToRecords(t *testing.T) {
	records, err := toRecords([]*types.InventoryItem{{Name: "gloves", Quantity: 4}})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "gloves", records[0]["name"])
	assert.Equal(t, 4.0, records[0]["quantity"])
}

func TestEnvelopeRecords(t *testing.T) {
	// Enveloped form.
	records, err := envelopeRecords("inventory", map[string]any{
		"items": []any{map[string]any{"name": "gloves"}},
		"count": 1.0,
	})
	require.NoError(t, err)
	require.Len(t, records, 1)

	// Bare array form.
	records, err = envelopeRecords("inventory", []any{map[string]any{"name": "gloves"}})
	require.NoError(t, err)
	require.Len(t, records, 1)

	// Nil body.
	records, err = envelopeRecords("inventory", nil)
	require.NoError(t, err)
	assert.Empty(t, records)

	// Envelope missing its field.
	_, err = envelopeRecords("inventory", map[string]any{"wrong": []any{}})
	assert.ErrorContains(t, err, `no "items" field`)
}
