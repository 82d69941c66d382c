package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielcho/resume-composer/internal/render"
)

func TestHeadingStyle_PlainVariant(t *testing.T) {
	deco := HeadingStyle(1, "#2563eb")

	assert.Empty(t, deco.Borders)
	assert.Empty(t, deco.Background)
}

func TestHeadingStyle_UnderlineVariants(t *testing.T) {
	thin := HeadingStyle(2, "#2563eb")
	require.Len(t, thin.Borders, 1)
	assert.Equal(t, render.BorderBottom, thin.Borders[0].Side)
	assert.Equal(t, "#2563eb", thin.Borders[0].Color)

	thick := HeadingStyle(3, "#2563eb")
	require.Len(t, thick.Borders, 1)
	assert.Greater(t, thick.Borders[0].WidthPt, thin.Borders[0].WidthPt)
}

func TestHeadingStyle_BackgroundVariantTintsAccent(t *testing.T) {
	deco := HeadingStyle(5, "#2563eb")

	assert.NotEmpty(t, deco.Background)
	assert.NotEqual(t, "#2563eb", deco.Background)
}

func TestHeadingStyle_BoxedVariantHasFourBorders(t *testing.T) {
	deco := HeadingStyle(8, "#2563eb")

	sides := make(map[render.BorderSide]bool)
	for _, b := range deco.Borders {
		sides[b.Side] = true
	}
	assert.Len(t, sides, 4)
}

func TestHeadingStyle_AllVariantsDistinct(t *testing.T) {
	seen := make(map[string]int)
	for id := 1; id <= HeadingStyleCount; id++ {
		deco := HeadingStyle(id, "#2563eb")
		key := deco.Background
		for _, b := range deco.Borders {
			key += "|" + string(b.Side) + ":" + b.Line
		}
		if prev, ok := seen[key]; ok {
			t.Fatalf("variants %d and %d produce identical decorations", prev, id)
		}
		seen[key] = id
	}
}

func TestHeadingStyle_OutOfRangeFailsClosedToPlain(t *testing.T) {
	assert.Equal(t, HeadingStyle(1, "#2563eb"), HeadingStyle(0, "#2563eb"))
	assert.Equal(t, HeadingStyle(1, "#2563eb"), HeadingStyle(99, "#2563eb"))
	assert.Equal(t, HeadingStyle(1, "#2563eb"), HeadingStyle(-3, "#2563eb"))
}

func TestTransform(t *testing.T) {
	assert.Equal(t, "WORK HISTORY", Transform("work history", "uppercase"))
	assert.Equal(t, "work history", Transform("Work History", "lowercase"))
	assert.Equal(t, "Work History", Transform("work history", "capitalize"))
	assert.Equal(t, "work history", Transform("work history", "none"))
	assert.Equal(t, "work history", Transform("work history", "wiggle"))
}

func TestTransform_CapitalizeMultiRuneUppercase(t *testing.T) {
	// strings.ToUpper("ß") is "SS", two runes for one.
	assert.Equal(t, "SSeta Test", Transform("ßeta test", "capitalize"))
	assert.Equal(t, "Überblick", Transform("überblick", "capitalize"))
}

func TestTint_BlendsTowardWhite(t *testing.T) {
	tint := Tint("#2563eb")

	require.Len(t, tint, 7)
	assert.NotEqual(t, "#2563eb", tint)
	// Every channel moves up toward 0xff.
	assert.Greater(t, fromHex(tint[1]), fromHex('2'))
}

func TestTint_NonHexPassesThrough(t *testing.T) {
	assert.Equal(t, "rebeccapurple", Tint("rebeccapurple"))
	assert.Equal(t, "#abc", Tint("#abc"))
}
