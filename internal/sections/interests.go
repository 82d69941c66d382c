package sections

import (
	"github.com/danielcho/resume-composer/internal/render"
	"github.com/danielcho/resume-composer/internal/settings"
	"github.com/danielcho/resume-composer/internal/style"
	"github.com/danielcho/resume-composer/internal/theme"
	"github.com/danielcho/resume-composer/internal/types"
)

// renderInterests renders the interests section in the configured display
// style.
func renderInterests(p Props) *render.Node {
	if len(p.Doc.Interests) == 0 {
		return nil
	}

	section := types.SectionInterests
	var body *render.Node
	switch p.Cfg.String(settings.KeyInterestsDisplay) {
	case settings.ListDisplayCompact:
		body = p.interestsCompact()
	case settings.ListDisplayTags:
		body = p.interestsTags()
	default:
		body = p.interestsList()
	}

	return p.sectionContainer(section, p.sectionHeading(section, sectionTitles[section]), body)
}

// interestsList renders one row per interest with its keywords.
func (p Props) interestsList() *render.Node {
	section := types.SectionInterests
	list := render.Container("interests-list", render.Style{Direction: "column", GapPt: 2})
	for _, interest := range p.Doc.Interests {
		list.Append(render.Container("interest", render.Style{Direction: "column", GapPt: 1},
			p.fieldText(section, "name", interest.Name),
			p.itemList(section, "keywords", interest.Keywords),
		))
	}
	return list
}

// interestsCompact joins all interest names into one run of text.
func (p Props) interestsCompact() *render.Node {
	names := make([]string, 0, len(p.Doc.Interests))
	for _, interest := range p.Doc.Interests {
		names = append(names, interest.Name)
	}
	return render.Container("interests-compact", render.Style{},
		render.Text(style.JoinInline(names), p.baseText(p.Cfg.FieldStyle(types.SectionInterests, "name"))))
}

// interestsTags renders each interest as a tag bubble.
func (p Props) interestsTags() *render.Node {
	accent := p.Colors.Color(theme.TargetDecorations, defaultMetaColor)
	row := render.Container("interests-tags", render.Style{Direction: "row", GapPt: 3})
	for _, interest := range p.Doc.Interests {
		row.Append(render.Container("tag", render.Style{
			Background: style.Tint(accent),
			PaddingPt:  2.5,
			RadiusPt:   4,
		}, render.Text(interest.Name, render.Style{
			Color:      p.textColor(),
			FontFamily: p.FontFamily,
			FontSizePt: p.FontSizePt * 0.9,
		})))
	}
	return row
}
