package sections

import (
	"github.com/danielcho/resume-composer/internal/render"
	"github.com/danielcho/resume-composer/internal/style"
	"github.com/danielcho/resume-composer/internal/types"
)

// renderPublications renders the publications section.
func renderPublications(p Props) *render.Node {
	if len(p.Doc.Publications) == 0 {
		return nil
	}

	section := types.SectionPublications
	headerStyles := p.entryHeaderStyles(section, "name", "publisher")

	entries := make([]*render.Node, 0, len(p.Doc.Publications))
	for _, pub := range p.Doc.Publications {
		header := p.entryHeader(style.HeaderFields{
			Title:     pub.Name,
			Subtitle:  pub.Publisher,
			DateRange: pub.ReleaseDate,
			URL:       p.urlAffordance(pub.URL),
		}, headerStyles)

		entry := render.Container("entry", render.Style{Direction: "column", GapPt: 2},
			header,
			p.fieldText(section, "summary", pub.Summary),
		)
		entries = append(entries, entry)
	}

	return p.sectionContainer(section, p.sectionHeading(section, sectionTitles[section]), entries...)
}
