package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielcho/resume-composer/internal/render"
)

func fullFields() HeaderFields {
	return HeaderFields{
		Title:     "Acme Corp",
		Subtitle:  "Staff Engineer",
		Location:  "Berlin",
		DateRange: "2019 — 2023",
	}
}

// collectText flattens every text run in the tree, in order.
func collectText(n *render.Node) []string {
	if n == nil {
		return nil
	}
	var out []string
	if n.Text != "" {
		out = append(out, n.Text)
	}
	for _, c := range n.Children {
		out = append(out, collectText(c)...)
	}
	return out
}

func TestEntryHeader_Variant1_TitleAndDateOnFirstRow(t *testing.T) {
	n := EntryHeader(fullFields(), 1, HeaderStyles{})

	require.NotNil(t, n)
	require.GreaterOrEqual(t, len(n.Children), 2)
	firstRow := collectText(n.Children[0])
	assert.Equal(t, []string{"Acme Corp", "2019 — 2023"}, firstRow)
	assert.Contains(t, strings.Join(collectText(n.Children[1]), " "), "Staff Engineer, Berlin")
}

func TestEntryHeader_Variant2_SingleLine(t *testing.T) {
	n := EntryHeader(fullFields(), 2, HeaderStyles{})

	require.NotNil(t, n)
	text := collectText(n)
	assert.Equal(t, "Acme Corp | Staff Engineer | Berlin", text[0])
	assert.Equal(t, "2019 — 2023", text[1])
}

func TestEntryHeader_Variant3_TitleAlone(t *testing.T) {
	n := EntryHeader(fullFields(), 3, HeaderStyles{})

	require.NotNil(t, n)
	text := collectText(n)
	assert.Equal(t, "Acme Corp", text[0])
	assert.Equal(t, "Staff Engineer | Berlin | 2019 — 2023", text[1])
}

func TestEntryHeader_Variant4_FullyStacked(t *testing.T) {
	n := EntryHeader(fullFields(), 4, HeaderStyles{})

	require.NotNil(t, n)
	assert.Equal(t, []string{"Acme Corp", "Staff Engineer", "Berlin", "2019 — 2023"}, collectText(n))
}

func TestEntryHeader_Variant5_Compact(t *testing.T) {
	n := EntryHeader(fullFields(), 5, HeaderStyles{})

	require.NotNil(t, n)
	text := collectText(n)
	assert.Equal(t, "Acme Corp, Staff Engineer, Berlin (2019 — 2023)", text[0])
}

func TestEntryHeader_MissingFieldsLeaveNoSeparators(t *testing.T) {
	f := HeaderFields{Title: "Acme Corp", DateRange: "2020"}

	for variant := 1; variant <= EntryLayoutCount; variant++ {
		n := EntryHeader(f, variant, HeaderStyles{})
		require.NotNil(t, n, "variant %d", variant)
		for _, text := range collectText(n) {
			assert.NotContains(t, text, "|", "variant %d", variant)
			assert.NotContains(t, text, ", ,", "variant %d", variant)
			assert.False(t, strings.HasPrefix(text, ","), "variant %d: %q", variant, text)
		}
	}
}

func TestEntryHeader_TitleOnly(t *testing.T) {
	f := HeaderFields{Title: "Acme Corp"}

	n := EntryHeader(f, 5, HeaderStyles{})

	require.NotNil(t, n)
	assert.Equal(t, []string{"Acme Corp"}, collectText(n))
}

func TestEntryHeader_AllEmptyRendersNothing(t *testing.T) {
	assert.Nil(t, EntryHeader(HeaderFields{}, 1, HeaderStyles{}))
}

func TestEntryHeader_OutOfRangeVariantFailsClosed(t *testing.T) {
	want := EntryHeader(fullFields(), 1, HeaderStyles{})
	got := EntryHeader(fullFields(), 42, HeaderStyles{})

	assert.Equal(t, collectText(want), collectText(got))
}

func TestPhotoGeometry(t *testing.T) {
	circle := PhotoGeometry(72, PhotoCircle)
	assert.Equal(t, 72.0, circle.SizePt)
	assert.Equal(t, 36.0, circle.RadiusPt)

	rounded := PhotoGeometry(64, PhotoRounded)
	assert.Equal(t, 8.0, rounded.RadiusPt)

	square := PhotoGeometry(64, PhotoSquare)
	assert.Equal(t, 0.0, square.RadiusPt)

	unknown := PhotoGeometry(64, "hexagon")
	assert.Equal(t, 0.0, unknown.RadiusPt)

	fallback := PhotoGeometry(0, PhotoCircle)
	assert.Equal(t, 72.0, fallback.SizePt)
}
