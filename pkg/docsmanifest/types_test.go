package docsmanifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManifest() *Manifest {
	return &Manifest{Sections: []Section{
		{Platform: PlatformJS, Entries: []DocEntry{
			{ID: "quick-start", Title: "Quick start", Description: "Install and animate."},
			{ID: "motion-value", Title: "Motion values", Description: "Track animated state."},
		}},
		{Platform: PlatformReact, Entries: []DocEntry{
			{ID: "motion-value", Title: "Motion values", Description: "Track animated state in React."},
		}},
	}}
}

func TestPlatform_Valid(t *testing.T) {
	tests := []struct {
		key  Platform
		want bool
	}{
		{"js", true},
		{"react", true},
		{"react-native", true},
		{"vue3", true},
		{"", false},
		{"React", false},
		{"3d", false},
		{"-vue", false},
		{"vue js", false},
		{"vue_js", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.Valid())
		})
	}
}

func TestKnownPlatforms(t *testing.T) {
	assert.Equal(t, []Platform{"js", "react", "vue"}, KnownPlatforms())
}

func TestManifest_Accessors(t *testing.T) {
	m := testManifest()

	assert.Equal(t, []Platform{PlatformJS, PlatformReact}, m.Platforms())
	assert.Equal(t, 3, m.Len())

	section, ok := m.Section(PlatformReact)
	require.True(t, ok)
	assert.Len(t, section.Entries, 1)

	_, ok = m.Section(PlatformVue)
	assert.False(t, ok)
}

func TestManifest_Clone(t *testing.T) {
	m := testManifest()
	clone := m.Clone()

	require.True(t, m.Equal(clone))

	clone.Sections[0].Entries[0].Title = "Changed"
	clone.Sections = append(clone.Sections, Section{Platform: PlatformVue})

	assert.Equal(t, "Quick start", m.Sections[0].Entries[0].Title)
	assert.Len(t, m.Sections, 2)
	assert.False(t, m.Equal(clone))
}

func TestManifest_Equal_OrderSensitive(t *testing.T) {
	m := testManifest()
	swapped := m.Clone()
	entries := swapped.Sections[0].Entries
	entries[0], entries[1] = entries[1], entries[0]

	assert.False(t, m.Equal(swapped))
}
