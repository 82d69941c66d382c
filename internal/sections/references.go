package sections

import (
	"github.com/danielcho/resume-composer/internal/render"
	"github.com/danielcho/resume-composer/internal/types"
)

// renderReferences renders the references section.
func renderReferences(p Props) *render.Node {
	if len(p.Doc.References) == 0 {
		return nil
	}

	section := types.SectionReferences
	entries := make([]*render.Node, 0, len(p.Doc.References))
	for _, ref := range p.Doc.References {
		entry := render.Container("entry", render.Style{Direction: "column", GapPt: 1},
			p.fieldText(section, "name", ref.Name),
			p.fieldText(section, "reference", ref.Reference),
		)
		entries = append(entries, entry)
	}

	return p.sectionContainer(section, p.sectionHeading(section, sectionTitles[section]), entries...)
}
