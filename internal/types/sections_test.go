package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedSections(t *testing.T) {
	fixed := FixedSections()

	require.Len(t, fixed, 11)
	assert.Equal(t, SectionSummary, fixed[0])
	assert.NotContains(t, fixed, SectionCustom)

	seen := make(map[string]bool, len(fixed))
	for _, id := range fixed {
		assert.False(t, seen[id], id)
		seen[id] = true
	}
}

func TestIsCustomSectionID(t *testing.T) {
	assert.True(t, IsCustomSectionID("custom-3f9a"))
	assert.False(t, IsCustomSectionID("custom"))
	assert.False(t, IsCustomSectionID("work"))
	assert.False(t, IsCustomSectionID(""))
}

func TestCustomSectionID_RoundTrip(t *testing.T) {
	id := CustomSectionID("3f9a")
	assert.Equal(t, "custom-3f9a", id)

	trimmed, ok := TrimCustomSectionID(id)
	require.True(t, ok)
	assert.Equal(t, "3f9a", trimmed)
}

func TestTrimCustomSectionID_RejectsNonCustom(t *testing.T) {
	_, ok := TrimCustomSectionID("work")
	assert.False(t, ok)

	_, ok = TrimCustomSectionID("custom")
	assert.False(t, ok)
}

func TestSectionOrderFor(t *testing.T) {
	doc := &Document{
		Custom: []CustomSection{
			{ID: "vol", Title: "Volunteering"},
			{ID: "talks", Title: "Talks"},
		},
	}

	order := SectionOrderFor(doc)

	require.Len(t, order, 13)
	assert.Equal(t, FixedSections(), order[:11])
	assert.Equal(t, []string{"custom-vol", "custom-talks"}, order[11:])
}

func TestSectionOrderFor_NilDocument(t *testing.T) {
	assert.Equal(t, FixedSections(), SectionOrderFor(nil))
}
