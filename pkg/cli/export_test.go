package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var exportFixture = map[string][]map[string]any{
	"inventory": {
		{"id": 1.0, "name": "black ink", "quantity": 12.0},
	},
	"clients": {
		{"id": 2.0, "name": "Ana", "active": true},
	},
}

func TestRenderExport_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderExport(&buf, "json", exportFixture))
	assert.Contains(t, buf.String(), `"black ink"`)
	assert.Contains(t, buf.String(), `"clients"`)
}

func TestRenderExport_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderExport(&buf, "yaml", exportFixture))

	var parsed map[string][]map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &parsed))
	require.Len(t, parsed["inventory"], 1)
	assert.Equal(t, "black ink", parsed["inventory"][0]["name"])
}

func TestRenderExport_XML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderExport(&buf, "xml", exportFixture))
	out := buf.String()
	assert.Contains(t, out, "<backoffice>")
	assert.Contains(t, out, "<inventory>")
	assert.Contains(t, out, "<item>")
	assert.Contains(t, out, "<name>black ink</name>")
	assert.Contains(t, out, "<client>")
	assert.Contains(t, out, "<active>true</active>")
}

func TestRenderExport_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := renderExport(&buf, "csv", exportFixture)
	assert.ErrorContains(t, err, "unknown format")
}
