package sections

import (
	"github.com/danielcho/resume-composer/internal/render"
	"github.com/danielcho/resume-composer/internal/style"
	"github.com/danielcho/resume-composer/internal/types"
)

// renderEducation renders the education section.
func renderEducation(p Props) *render.Node {
	if len(p.Doc.Education) == 0 {
		return nil
	}

	section := types.SectionEducation
	headerStyles := p.entryHeaderStyles(section, "institution", "area")

	entries := make([]*render.Node, 0, len(p.Doc.Education))
	for _, edu := range p.Doc.Education {
		subtitle := edu.Area
		if edu.StudyType != "" && edu.Area != "" {
			subtitle = edu.StudyType + " in " + edu.Area
		} else if edu.StudyType != "" {
			subtitle = edu.StudyType
		}

		header := p.entryHeader(style.HeaderFields{
			Title:     edu.Institution,
			Subtitle:  subtitle,
			Location:  edu.Location,
			DateRange: dateRange(edu.StartDate, edu.EndDate),
			URL:       p.urlAffordance(edu.URL),
		}, headerStyles)

		var score *render.Node
		if edu.Score != "" {
			score = p.fieldText(section, "score", "Score: "+edu.Score)
		}

		entry := render.Container("entry", render.Style{Direction: "column", GapPt: 2},
			header,
			score,
			p.itemList(section, "courses", edu.Courses),
		)
		entries = append(entries, entry)
	}

	return p.sectionContainer(section, p.sectionHeading(section, sectionTitles[section]), entries...)
}
