package style

import (
	"strings"

	"github.com/danielcho/resume-composer/internal/render"
)

// HeadingDecoration describes one of the eight section heading variants:
// borders, background tint, and padding. Text transform and color
// resolution are shared across all eight and applied separately.
type HeadingDecoration struct {
	Borders    []render.Border
	Background string
	PaddingPt  float64
}

// HeadingStyleCount is the number of heading decoration variants.
const HeadingStyleCount = 8

// HeadingStyle maps a style id (1–8) to its decoration descriptor. The
// accent color is used for any accent-weight edge. Out-of-range ids fail
// closed to the plain variant.
func HeadingStyle(id int, accent string) HeadingDecoration {
	switch id {
	case 2:
		return HeadingDecoration{Borders: []render.Border{
			{Side: render.BorderBottom, WidthPt: 0.5, Line: "solid", Color: accent},
		}}
	case 3:
		return HeadingDecoration{Borders: []render.Border{
			{Side: render.BorderBottom, WidthPt: 2, Line: "solid", Color: accent},
		}}
	case 4:
		return HeadingDecoration{Borders: []render.Border{
			{Side: render.BorderTop, WidthPt: 0.5, Line: "solid", Color: accent},
			{Side: render.BorderBottom, WidthPt: 0.5, Line: "solid", Color: accent},
		}}
	case 5:
		return HeadingDecoration{Background: Tint(accent), PaddingPt: 3}
	case 6:
		return HeadingDecoration{
			Borders:   []render.Border{{Side: render.BorderLeft, WidthPt: 3, Line: "solid", Color: accent}},
			PaddingPt: 4,
		}
	case 7:
		return HeadingDecoration{Borders: []render.Border{
			{Side: render.BorderBottom, WidthPt: 1, Line: "dotted", Color: accent},
		}}
	case 8:
		return HeadingDecoration{
			Borders: []render.Border{
				{Side: render.BorderTop, WidthPt: 0.5, Line: "solid", Color: accent},
				{Side: render.BorderBottom, WidthPt: 0.5, Line: "solid", Color: accent},
				{Side: render.BorderLeft, WidthPt: 0.5, Line: "solid", Color: accent},
				{Side: render.BorderRight, WidthPt: 0.5, Line: "solid", Color: accent},
			},
			PaddingPt: 3,
		}
	default: // 1 and anything out of range
		return HeadingDecoration{}
	}
}

// Transform applies the shared heading text transform: "uppercase",
// "capitalize", or "lowercase". Unrecognized modes leave the text as-is.
func Transform(text, mode string) string {
	switch mode {
	case "uppercase":
		return strings.ToUpper(text)
	case "lowercase":
		return strings.ToLower(text)
	case "capitalize":
		words := strings.Fields(text)
		for i, w := range words {
			r := []rune(w)
			// The uppercase mapping of one rune can be several runes (ß -> SS).
			words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
		}
		return strings.Join(words, " ")
	default:
		return text
	}
}

// Tint derives a light background tint from a hex accent color by blending
// it toward white. Non-hex input is returned unchanged.
func Tint(hex string) string {
	if len(hex) != 7 || hex[0] != '#' {
		return hex
	}
	const ratio = 0.88 // distance toward white
	out := []byte{'#'}
	for i := 1; i < 7; i += 2 {
		v := fromHex(hex[i])<<4 | fromHex(hex[i+1])
		blended := v + int(float64(255-v)*ratio)
		out = append(out, toHex(blended>>4), toHex(blended&0xf))
	}
	return string(out)
}

func fromHex(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	default:
		return 0
	}
}

func toHex(v int) byte {
	if v < 10 {
		return byte('0' + v)
	}
	return byte('a' + v - 10)
}
