package sections

import (
	"github.com/danielcho/resume-composer/internal/render"
	"github.com/danielcho/resume-composer/internal/style"
	"github.com/danielcho/resume-composer/internal/types"
)

// renderAwards renders the awards section.
func renderAwards(p Props) *render.Node {
	if len(p.Doc.Awards) == 0 {
		return nil
	}

	section := types.SectionAwards
	headerStyles := p.entryHeaderStyles(section, "title", "awarder")

	entries := make([]*render.Node, 0, len(p.Doc.Awards))
	for _, award := range p.Doc.Awards {
		header := p.entryHeader(style.HeaderFields{
			Title:     award.Title,
			Subtitle:  award.Awarder,
			DateRange: award.Date,
		}, headerStyles)

		entry := render.Container("entry", render.Style{Direction: "column", GapPt: 2},
			header,
			p.fieldText(section, "summary", award.Summary),
		)
		entries = append(entries, entry)
	}

	return p.sectionContainer(section, p.sectionHeading(section, sectionTitles[section]), entries...)
}
