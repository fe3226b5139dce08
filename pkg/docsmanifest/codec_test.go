package docsmanifest

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"yaml", FormatYAML, false},
		{".yml", FormatYAML, false},
		{".YAML", FormatYAML, false},
		{"json", FormatJSON, false},
		{".json", FormatJSON, false},
		{".toml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedExt)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestManifest_UnmarshalYAML_PreservesOrder(t *testing.T) {
	data := `
vue:
  - id: b
    title: B
    description: Second letter.
  - id: a
    title: A
    description: First letter.
js:
  - id: z
    title: Z
    description: Last letter.
`
	var m Manifest
	require.NoError(t, yaml.Unmarshal([]byte(data), &m))

	assert.Equal(t, []Platform{PlatformVue, PlatformJS}, m.Platforms())
	assert.Equal(t, "b", m.Sections[0].Entries[0].ID)
	assert.Equal(t, "a", m.Sections[0].Entries[1].ID)
}

func TestManifest_UnmarshalYAML_RejectsNonMapping(t *testing.T) {
	var m Manifest
	err := yaml.Unmarshal([]byte("- js\n- react\n"), &m)
	assert.Error(t, err)
}

func TestManifest_UnmarshalJSON_PreservesOrder(t *testing.T) {
	data := `{
		"react": [{"id": "b", "title": "B", "description": "Second."}],
		"js": [
			{"id": "y", "title": "Y", "description": "Penultimate."},
			{"id": "x", "title": "X", "description": "Antepenultimate."}
		]
	}`
	var m Manifest
	require.NoError(t, json.Unmarshal([]byte(data), &m))

	assert.Equal(t, []Platform{PlatformReact, PlatformJS}, m.Platforms())
	assert.Equal(t, "y", m.Sections[1].Entries[0].ID)
	assert.Equal(t, "x", m.Sections[1].Entries[1].ID)
}

func TestManifest_UnmarshalJSON_RejectsNonObject(t *testing.T) {
	var m Manifest
	assert.Error(t, json.Unmarshal([]byte(`["js"]`), &m))
	assert.Error(t, json.Unmarshal([]byte(`{"js": "quick-start"}`), &m))
}

func TestManifest_MarshalJSON_Order(t *testing.T) {
	m := &Manifest{Sections: []Section{
		{Platform: PlatformVue, Entries: []DocEntry{{ID: "v", Title: "V", Description: "Vue."}}},
		{Platform: PlatformJS, Entries: []DocEntry{{ID: "j", Title: "J", Description: "JS."}}},
	}}

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t,
		`{"vue":[{"id":"v","title":"V","description":"Vue."}],"js":[{"id":"j","title":"J","description":"JS."}]}`,
		string(data))
}

func TestEncode_RoundTrip(t *testing.T) {
	original, err := Load()
	require.NoError(t, err)

	for _, format := range []Format{FormatYAML, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Encode(original, format)
			require.NoError(t, err)

			reloaded, err := NewLoader().LoadFromBytes(data, string(format))
			require.NoError(t, err)
			assert.True(t, original.Equal(reloaded))

			again, err := Encode(reloaded, format)
			require.NoError(t, err)
			assert.Equal(t, string(data), string(again))
		})
	}
}

func TestEncode_YAMLStartsWithFirstPlatform(t *testing.T) {
	data, err := Encode(testManifest(), FormatYAML)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "js:"), string(data))
	assert.Less(t, strings.Index(string(data), "js:"), strings.Index(string(data), "react:"))
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	_, err := Encode(testManifest(), Format("toml"))
	assert.ErrorIs(t, err, ErrUnsupportedExt)
}
