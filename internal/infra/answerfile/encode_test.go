package answerfile

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/git-scaffold/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleAnswers() *domain.Answers {
	a := domain.NewAnswers()
	a.Set("name", "widget")
	a.Set("version", "1.0")
	a.Set("description", `say "hi"`)
	a.Set("author", "")
	return a
}

// assertKeyOrder checks that keys appear in the encoded output in order.
func assertKeyOrder(t *testing.T, out string, keys ...string) {
	t.Helper()
	last := -1
	for _, k := range keys {
		idx := strings.Index(out, k)
		require.GreaterOrEqual(t, idx, 0, "key %q missing in:\n%s", k, out)
		assert.Greater(t, idx, last, "key %q out of order in:\n%s", k, out)
		last = idx
	}
}

func TestEncode_TOML(t *testing.T) {
	out, err := Encode(sampleAnswers(), domain.FormatTOML)
	require.NoError(t, err)

	assertKeyOrder(t, string(out), "name", "version", "description", "author")

	var got map[string]string
	require.NoError(t, toml.Unmarshal(out, &got))
	assert.Equal(t, sampleAnswers().Map(), got)
}

func TestEncode_YAML(t *testing.T) {
	out, err := Encode(sampleAnswers(), domain.FormatYAML)
	require.NoError(t, err)

	assertKeyOrder(t, string(out), "name", "version", "description", "author")

	var got map[string]string
	require.NoError(t, yaml.Unmarshal(out, &got))
	assert.Equal(t, sampleAnswers().Map(), got)
}

func TestEncode_YAMLKeepsNumericLookingValuesAsStrings(t *testing.T) {
	a := domain.NewAnswers()
	a.Set("version", "1.0")
	a.Set("private", "true")

	out, err := Encode(a, "yml")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(out, &got))
	assert.Equal(t, "1.0", got["version"])
	assert.Equal(t, "true", got["private"])
}

func TestEncode_JSON(t *testing.T) {
	out, err := Encode(sampleAnswers(), domain.FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"name\": \"widget\",\n  \"version\": \"1.0\",\n  \"description\": \"say \\\"hi\\\"\",\n  \"author\": \"\"\n}\n", string(out))

	var got map[string]string
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, sampleAnswers().Map(), got)
}

func TestEncode_Empty(t *testing.T) {
	out, err := Encode(domain.NewAnswers(), domain.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(out))

	out, err = Encode(domain.NewAnswers(), domain.FormatTOML)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestEncode_UnknownFormat(t *testing.T) {
	_, err := Encode(sampleAnswers(), "xml")
	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleAnswers(), domain.FormatJSON))
	assert.True(t, strings.HasPrefix(buf.String(), "{\n  \"name\""))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "answers.toml")

	require.NoError(t, WriteFile(path, sampleAnswers(), domain.FormatTOML))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	var got map[string]string
	require.NoError(t, toml.Unmarshal(content, &got))
	assert.Equal(t, "widget", got["name"])

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", domain.FormatTOML},
		{"TOML", domain.FormatTOML},
		{"yml", domain.FormatYAML},
		{"yaml", domain.FormatYAML},
		{"json", domain.FormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"answers.toml", domain.FormatTOML},
		{"answers.YAML", domain.FormatYAML},
		{"answers.yml", domain.FormatYAML},
		{"answers.json", domain.FormatJSON},
		{"answers", "fallback"},
		{"answers.txt", "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFromPath(tt.path, "fallback"))
		})
	}
}
