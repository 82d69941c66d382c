package sections

import (
	"github.com/danielcho/resume-composer/internal/render"
	"github.com/danielcho/resume-composer/internal/settings"
	"github.com/danielcho/resume-composer/internal/style"
	"github.com/danielcho/resume-composer/internal/theme"
	"github.com/danielcho/resume-composer/internal/types"
)

// renderLanguages renders the languages section in the configured display
// style. Proficiency is shown via the level indicator.
func renderLanguages(p Props) *render.Node {
	if len(p.Doc.Languages) == 0 {
		return nil
	}

	section := types.SectionLanguages
	var body *render.Node
	switch p.Cfg.String(settings.KeyLanguagesDisplay) {
	case settings.ListDisplayCompact:
		body = p.languagesCompact()
	case settings.ListDisplayTags:
		body = p.languagesTags()
	default:
		body = p.languagesList()
	}

	return p.sectionContainer(section, p.sectionHeading(section, sectionTitles[section]), body)
}

// languagesList renders one row per language with its level indicator.
func (p Props) languagesList() *render.Node {
	section := types.SectionLanguages
	levelColor := p.Colors.Color(theme.TargetDecorations, p.textColor())
	list := render.Container("languages-list", render.Style{Direction: "column", GapPt: 3})
	for _, lang := range p.Doc.Languages {
		row := render.Container("language", render.Style{Direction: "row", Align: "space-between"},
			p.fieldText(section, "language", lang.Language),
			style.LevelIndicator(lang.Fluency, p.Cfg.Int(settings.KeyLevelStyle), levelColor, p.FontSizePt),
		)
		list.Append(row)
	}
	return list
}

// languagesCompact joins languages with their fluency into one run.
func (p Props) languagesCompact() *render.Node {
	parts := make([]string, 0, len(p.Doc.Languages))
	for _, lang := range p.Doc.Languages {
		part := lang.Language
		if lang.Fluency != "" {
			part += " (" + lang.Fluency + ")"
		}
		parts = append(parts, part)
	}
	return render.Container("languages-compact", render.Style{},
		render.Text(style.JoinInline(parts), p.baseText(p.Cfg.FieldStyle(types.SectionLanguages, "language"))))
}

// languagesTags renders each language as a tag bubble.
func (p Props) languagesTags() *render.Node {
	accent := p.Colors.Color(theme.TargetDecorations, defaultMetaColor)
	row := render.Container("languages-tags", render.Style{Direction: "row", GapPt: 3})
	for _, lang := range p.Doc.Languages {
		row.Append(render.Container("tag", render.Style{
			Background: style.Tint(accent),
			PaddingPt:  2.5,
			RadiusPt:   4,
		}, render.Text(lang.Language, render.Style{
			Color:      p.textColor(),
			FontFamily: p.FontFamily,
			FontSizePt: p.FontSizePt * 0.9,
		})))
	}
	return row
}
