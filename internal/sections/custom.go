package sections

import (
	"github.com/danielcho/resume-composer/internal/render"
	"github.com/danielcho/resume-composer/internal/types"
)

// renderCustom renders one user-defined custom section: its user-chosen
// title styled like any other heading, and a flat item list.
func renderCustom(p Props, section *types.CustomSection) *render.Node {
	if section == nil || len(section.Items) == 0 {
		return nil
	}

	list := p.itemList(types.SectionCustom, "items", section.Items)
	if list == nil {
		return nil
	}

	return p.sectionContainer(types.SectionCustom,
		p.sectionHeading(types.SectionCustom, section.Title), list)
}
