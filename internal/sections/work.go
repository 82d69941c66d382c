package sections

import (
	"github.com/danielcho/resume-composer/internal/render"
	"github.com/danielcho/resume-composer/internal/style"
	"github.com/danielcho/resume-composer/internal/types"
)

// renderWork renders the work history section.
func renderWork(p Props) *render.Node {
	if len(p.Doc.Work) == 0 {
		return nil
	}

	section := types.SectionWork
	headerStyles := p.entryHeaderStyles(section, "company", "position")

	entries := make([]*render.Node, 0, len(p.Doc.Work))
	for _, job := range p.Doc.Work {
		header := p.entryHeader(style.HeaderFields{
			Title:     job.Company,
			Subtitle:  job.Position,
			Location:  job.Location,
			DateRange: dateRange(job.StartDate, job.EndDate),
			URL:       p.urlAffordance(job.URL),
		}, headerStyles)

		entry := render.Container("entry", render.Style{Direction: "column", GapPt: 2},
			header,
			p.fieldText(section, "summary", job.Summary),
			p.itemList(section, "highlights", job.Highlights),
		)
		entries = append(entries, entry)
	}

	return p.sectionContainer(section, p.sectionHeading(section, sectionTitles[section]), entries...)
}
