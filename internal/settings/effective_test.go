package settings

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffective_Int_AcceptsJSONFloat(t *testing.T) {
	// json.Unmarshal delivers every number as float64.
	overrides := Settings{KeyColumnCount: float64(2)}
	eff := Resolve(Defaults(), nil, overrides)

	assert.Equal(t, 2, eff.Int(KeyColumnCount))
}

func TestEffective_FailsClosedOnWrongType(t *testing.T) {
	overrides := Settings{
		KeyColumnCount: "three",
		KeyFontSize:    true,
		KeyFontFamily:  42,
		KeyNameBold:    "yes",
	}
	eff := Resolve(Defaults(), nil, overrides)

	assert.Equal(t, 1, eff.Int(KeyColumnCount))
	assert.Equal(t, 10.0, eff.Float(KeyFontSize))
	assert.Equal(t, "Inter", eff.String(KeyFontFamily))
	assert.Equal(t, true, eff.Bool(KeyNameBold))
}

func TestEffective_Strings_AcceptsAnySlice(t *testing.T) {
	// JSON round-trips deliver arrays as []any.
	overrides := Settings{KeySectionOrder: []any{"education", "work", 7, "skills"}}
	eff := Resolve(Defaults(), nil, overrides)

	assert.Equal(t, []string{"education", "work", "skills"}, eff.Strings(KeySectionOrder))
}

func TestEffective_SurvivesJSONRoundTrip(t *testing.T) {
	overrides := Settings{
		KeyColumnCount:  2,
		KeyNameBold:     false,
		KeySectionOrder: []string{"work", "education"},
	}
	data, err := json.Marshal(overrides)
	require.NoError(t, err)

	var decoded Settings
	require.NoError(t, json.Unmarshal(data, &decoded))

	eff := Resolve(Defaults(), nil, decoded)
	assert.Equal(t, 2, eff.Int(KeyColumnCount))
	assert.False(t, eff.Bool(KeyNameBold))
	assert.Equal(t, []string{"work", "education"}, eff.Strings(KeySectionOrder))
}

func TestEffective_FieldStyle(t *testing.T) {
	overrides := Settings{
		BoldKey("work", "company"):    false,
		ItalicKey("work", "company"):  true,
		ItalicKey("work", "position"): true,
	}
	eff := Resolve(Defaults(), nil, overrides)

	assert.Equal(t, FieldStyle{Bold: false, Italic: true}, eff.FieldStyle("work", "company"))
	assert.Equal(t, FieldStyle{Bold: false, Italic: true}, eff.FieldStyle("work", "position"))
	// Defaults: primary field bold, nothing italic.
	assert.Equal(t, FieldStyle{Bold: true}, eff.FieldStyle("education", "institution"))
}

func TestEffective_FieldStyle_UnknownFieldIsZero(t *testing.T) {
	eff := Resolve(Defaults(), nil, nil)

	assert.Equal(t, FieldStyle{}, eff.FieldStyle("work", "nonexistent"))
}

func TestEffective_ListStyle(t *testing.T) {
	eff := Resolve(Defaults(), nil, Settings{ListStyleKey("work", "highlights"): "dash"})

	assert.Equal(t, "dash", eff.ListStyle("work", "highlights"))
	assert.Equal(t, "inline", eff.ListStyle("skills", "keywords"))
}

func TestEffective_HeadingVisible_DefaultsTrueForUnknownSection(t *testing.T) {
	eff := Resolve(Defaults(), nil, nil)

	assert.True(t, eff.HeadingVisible("custom-abc"))
}

func TestEffective_SectionOrder(t *testing.T) {
	eff := Resolve(Defaults(), nil, Settings{KeySectionOrder: []string{"education", "work"}})

	assert.Equal(t, []string{"education", "work"}, eff.SectionOrder())
}
