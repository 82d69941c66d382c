package style

import (
	"strings"

	"github.com/danielcho/resume-composer/internal/render"
)

// HeaderFields are the fields an entry header arranges. URL is passed as a
// pre-built node (or nil) because its display mode is resolved by the
// section renderer, not by the layout variant.
type HeaderFields struct {
	Title     string
	Subtitle  string
	Location  string
	DateRange string
	URL       *render.Node
}

// HeaderStyles carry the resolved typography for the header's field groups.
type HeaderStyles struct {
	Title    render.Style
	Subtitle render.Style
	Meta     render.Style // location and date range
}

// EntryLayoutCount is the number of entry header layout variants.
const EntryLayoutCount = 5

// EntryHeader arranges the entry fields according to the layout variant
// (1–5). Absent fields are omitted along with their separators; no variant
// ever renders empty punctuation. Out-of-range variants fail closed to 1.
func EntryHeader(f HeaderFields, variant int, st HeaderStyles) *render.Node {
	if f.Title == "" && f.Subtitle == "" && f.Location == "" && f.DateRange == "" && f.URL == nil {
		return nil
	}

	switch variant {
	case 2:
		// Everything on one line, pipe separated, date right-aligned.
		left := joinParts(" | ", f.Title, f.Subtitle, f.Location)
		row := render.Container("entry-header", render.Style{Direction: "row", Align: "space-between"},
			render.Text(left, st.Title),
			render.Text(f.DateRange, st.Meta),
		)
		row.Append(f.URL)
		return row

	case 3:
		// Title alone, then subtitle, location, and date together.
		second := joinParts(" | ", f.Subtitle, f.Location, f.DateRange)
		return render.Container("entry-header", render.Style{Direction: "column"},
			render.Text(f.Title, st.Title),
			render.Container("entry-subheader", render.Style{Direction: "row", GapPt: 4},
				render.Text(second, st.Subtitle),
				f.URL,
			),
		)

	case 4:
		// Fully stacked, one field per line.
		return render.Container("entry-header", render.Style{Direction: "column"},
			render.Text(f.Title, st.Title),
			render.Text(f.Subtitle, st.Subtitle),
			render.Text(f.Location, st.Meta),
			render.Text(f.DateRange, st.Meta),
			f.URL,
		)

	case 5:
		// Compact: one concatenated run with the date appended.
		line := joinParts(", ", f.Title, f.Subtitle, f.Location)
		if f.DateRange != "" {
			line = joinParts(" ", line, "("+f.DateRange+")")
		}
		row := render.Container("entry-header", render.Style{Direction: "row", GapPt: 3},
			render.Text(line, st.Title),
		)
		row.Append(f.URL)
		return row

	default:
		// Variant 1: title + date on the first line, subtitle and location
		// on the second.
		second := joinParts(", ", f.Subtitle, f.Location)
		return render.Container("entry-header", render.Style{Direction: "column"},
			render.Container("entry-header-row", render.Style{Direction: "row", Align: "space-between"},
				render.Text(f.Title, st.Title),
				render.Text(f.DateRange, st.Meta),
			),
			render.Container("entry-subheader", render.Style{Direction: "row", GapPt: 4},
				render.Text(second, st.Subtitle),
				f.URL,
			),
		)
	}
}

// joinParts joins the non-empty parts with sep.
func joinParts(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
