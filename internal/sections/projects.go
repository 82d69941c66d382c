package sections

import (
	"github.com/danielcho/resume-composer/internal/render"
	"github.com/danielcho/resume-composer/internal/style"
	"github.com/danielcho/resume-composer/internal/types"
)

// renderProjects renders the projects section.
func renderProjects(p Props) *render.Node {
	if len(p.Doc.Projects) == 0 {
		return nil
	}

	section := types.SectionProjects
	headerStyles := p.entryHeaderStyles(section, "name", "description")

	entries := make([]*render.Node, 0, len(p.Doc.Projects))
	for _, proj := range p.Doc.Projects {
		header := p.entryHeader(style.HeaderFields{
			Title:     proj.Name,
			DateRange: dateRange(proj.StartDate, proj.EndDate),
			URL:       p.urlAffordance(proj.URL),
		}, headerStyles)

		entry := render.Container("entry", render.Style{Direction: "column", GapPt: 2},
			header,
			p.fieldText(section, "description", proj.Description),
			p.itemList(section, "highlights", proj.Highlights),
		)
		entries = append(entries, entry)
	}

	return p.sectionContainer(section, p.sectionHeading(section, sectionTitles[section]), entries...)
}
