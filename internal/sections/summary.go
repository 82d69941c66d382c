package sections

import (
	"strings"

	"github.com/danielcho/resume-composer/internal/render"
	"github.com/danielcho/resume-composer/internal/settings"
	"github.com/danielcho/resume-composer/internal/types"
)

// renderSummary renders the free-text summary section. An empty or
// whitespace-only summary renders nothing, heading included.
func renderSummary(p Props) *render.Node {
	text := strings.TrimSpace(p.Doc.Basics.Summary)
	if text == "" {
		return nil
	}

	section := types.SectionSummary
	body := render.Text(text, render.Style{
		Color:      p.textColor(),
		FontFamily: p.FontFamily,
		FontSizePt: p.FontSizePt,
		LineHeight: p.Cfg.Float(settings.KeyLineHeight),
		Justify:    p.Cfg.Bool(settings.KeySummaryJustified),
	})

	return p.sectionContainer(section, p.sectionHeading(section, sectionTitles[section]), body)
}
