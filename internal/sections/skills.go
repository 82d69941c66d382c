package sections

import (
	"github.com/danielcho/resume-composer/internal/render"
	"github.com/danielcho/resume-composer/internal/settings"
	"github.com/danielcho/resume-composer/internal/style"
	"github.com/danielcho/resume-composer/internal/theme"
	"github.com/danielcho/resume-composer/internal/types"
)

// renderSkills renders the skills section in the configured display style.
// The display styles change structural layout only; the same entries are
// representable in every style without data loss.
func renderSkills(p Props) *render.Node {
	if len(p.Doc.Skills) == 0 {
		return nil
	}

	section := types.SectionSkills
	var body *render.Node
	switch p.Cfg.String(settings.KeySkillsDisplay) {
	case settings.SkillsDisplayLeveled:
		body = p.skillsLeveled()
	case settings.SkillsDisplayCompact:
		body = p.skillsCompact()
	case settings.SkillsDisplayTags:
		body = p.skillsTags()
	default:
		body = p.skillsGrid()
	}

	return p.sectionContainer(section, p.sectionHeading(section, sectionTitles[section]), body)
}

// skillsGrid lays skills out as name rows, each with its keyword list.
func (p Props) skillsGrid() *render.Node {
	section := types.SectionSkills
	grid := render.Container("skills-grid", render.Style{Direction: "column", GapPt: 3})
	for _, skill := range p.Doc.Skills {
		cell := render.Container("skill", render.Style{Direction: "column", GapPt: 1},
			p.fieldText(section, "name", skill.Name),
			p.itemList(section, "keywords", skill.Keywords),
		)
		grid.Append(cell)
	}
	return grid
}

// skillsLeveled renders each skill with its proficiency indicator.
func (p Props) skillsLeveled() *render.Node {
	section := types.SectionSkills
	levelColor := p.Colors.Color(theme.TargetDecorations, p.textColor())
	list := render.Container("skills-leveled", render.Style{Direction: "column", GapPt: 3})
	for _, skill := range p.Doc.Skills {
		row := render.Container("skill", render.Style{Direction: "row", Align: "space-between"},
			p.fieldText(section, "name", skill.Name),
			style.LevelIndicator(skill.Level, p.Cfg.Int(settings.KeyLevelStyle), levelColor, p.FontSizePt),
		)
		list.Append(row)
	}
	return list
}

// skillsCompact joins all skill names into one run of text.
func (p Props) skillsCompact() *render.Node {
	names := make([]string, 0, len(p.Doc.Skills))
	for _, skill := range p.Doc.Skills {
		names = append(names, skill.Name)
	}
	return render.Container("skills-compact", render.Style{},
		render.Text(style.JoinInline(names), p.baseText(p.Cfg.FieldStyle(types.SectionSkills, "name"))))
}

// skillsTags renders each skill name as a tag bubble.
func (p Props) skillsTags() *render.Node {
	accent := p.Colors.Color(theme.TargetDecorations, defaultMetaColor)
	row := render.Container("skills-tags", render.Style{Direction: "row", GapPt: 3})
	for _, skill := range p.Doc.Skills {
		tag := render.Container("tag", render.Style{
			Background: style.Tint(accent),
			PaddingPt:  2.5,
			RadiusPt:   4,
		}, render.Text(skill.Name, render.Style{
			Color:      p.textColor(),
			FontFamily: p.FontFamily,
			FontSizePt: p.FontSizePt * 0.9,
		}))
		row.Append(tag)
	}
	return row
}
