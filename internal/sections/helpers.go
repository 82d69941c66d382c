package sections

import (
	"strings"

	"github.com/danielcho/resume-composer/internal/render"
	"github.com/danielcho/resume-composer/internal/settings"
	"github.com/danielcho/resume-composer/internal/style"
	"github.com/danielcho/resume-composer/internal/theme"
)

// Default fallback colors used when a target is not bound to the accent.
const (
	defaultTextColor = "#1a1a1a"
	defaultMetaColor = "#666666"
)

// textColor resolves the body text color for the current configuration.
func (p Props) textColor() string {
	return p.Colors.Color(theme.TargetText, defaultTextColor)
}

// metaColor resolves the color for dates, locations, and other secondary
// runs.
func (p Props) metaColor() string {
	return p.Colors.Color(theme.TargetMeta, defaultMetaColor)
}

// baseText returns the body text style with optional per-field bold/italic
// applied.
func (p Props) baseText(fs settings.FieldStyle) render.Style {
	return render.Style{
		Color:      p.textColor(),
		FontFamily: p.FontFamily,
		FontSizePt: p.FontSizePt,
		Bold:       fs.Bold,
		Italic:     fs.Italic,
	}
}

// metaText returns the secondary text style with per-field toggles applied.
func (p Props) metaText(fs settings.FieldStyle) render.Style {
	return render.Style{
		Color:      p.metaColor(),
		FontFamily: p.FontFamily,
		FontSizePt: p.FontSizePt * 0.92,
		Bold:       fs.Bold,
		Italic:     fs.Italic,
	}
}

// fieldText renders one field as a text run with its configured style, or
// nil when the field is empty.
func (p Props) fieldText(section, field, text string) *render.Node {
	return render.Text(text, p.baseText(p.Cfg.FieldStyle(section, field)))
}

// sectionHeading renders the decorated section heading, or nil when the
// heading is disabled for this section.
func (p Props) sectionHeading(sectionID, title string) *render.Node {
	if title == "" || !p.Cfg.HeadingVisible(sectionID) {
		return nil
	}

	transform := p.Cfg.String(settings.KeyHeadingTransform)
	headingColor := p.Colors.Color(theme.TargetHeadings, defaultTextColor)
	decoColor := p.Colors.Color(theme.TargetDecorations, headingColor)
	deco := style.HeadingStyle(p.Cfg.Int(settings.KeySectionHeadingStyle), decoColor)

	return render.Container("section-heading", render.Style{
		Background: deco.Background,
		PaddingPt:  deco.PaddingPt,
		Borders:    deco.Borders,
		MarginBot:  p.Cfg.Float(settings.KeyItemSpacing) / 2,
	}, render.Text(style.Transform(title, transform), render.Style{
		Color:      headingColor,
		FontFamily: p.FontFamily,
		FontSizePt: p.Cfg.Float(settings.KeyHeadingFontSize),
		Bold:       true,
		Transform:  transform,
	}))
}

// urlAffordance renders the link for an entry URL according to the global
// link display mode: a compact glyph, the full address, or nothing.
func (p Props) urlAffordance(url string) *render.Node {
	if url == "" {
		return nil
	}
	linkStyle := render.Style{
		Color:      p.Colors.Color(theme.TargetLinks, defaultMetaColor),
		FontFamily: p.FontFamily,
		FontSizePt: p.FontSizePt * 0.92,
	}
	switch p.Cfg.String(settings.KeyLinkDisplay) {
	case settings.LinkDisplayFull:
		return render.Link(url, strings.TrimPrefix(strings.TrimPrefix(url, "https://"), "http://"), linkStyle)
	case settings.LinkDisplayHidden:
		return nil
	default:
		return render.Link(url, "↗", linkStyle)
	}
}

// itemList renders a list-bearing field with the configured list style. The
// inline style joins all items into one run of text; the other styles emit
// one marker-plus-text row per item. Empty input renders nothing.
func (p Props) itemList(section, field string, items []string) *render.Node {
	kept := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			kept = append(kept, item)
		}
	}
	if len(kept) == 0 {
		return nil
	}

	listStyle := style.ParseListStyle(p.Cfg.ListStyle(section, field))
	textStyle := render.Style{
		Color:      p.textColor(),
		FontFamily: p.FontFamily,
		FontSizePt: p.FontSizePt,
	}

	if listStyle == style.ListInline {
		return render.Container("item-list-inline", render.Style{},
			render.Text(style.JoinInline(kept), textStyle))
	}

	list := render.Container("item-list", render.Style{Direction: "column", GapPt: 1.5})
	markerStyle := textStyle
	markerStyle.Color = p.Colors.Color(theme.TargetDecorations, p.textColor())
	for i, item := range kept {
		row := render.Container("item-list-row", render.Style{Direction: "row", GapPt: 4})
		if marker := style.Marker(listStyle, i); marker != "" {
			row.Append(render.Text(marker, markerStyle))
		}
		row.Append(render.Text(item, textStyle))
		list.Append(row)
	}
	return list
}

// entryHeaderStyles builds the header typography for a section from its
// primary, secondary, and date field styles.
func (p Props) entryHeaderStyles(section, primary, secondary string) style.HeaderStyles {
	return style.HeaderStyles{
		Title:    p.baseText(p.Cfg.FieldStyle(section, primary)),
		Subtitle: p.baseText(p.Cfg.FieldStyle(section, secondary)),
		Meta:     p.metaText(p.Cfg.FieldStyle(section, "date")),
	}
}

// entryHeader renders the configured entry header variant for the fields.
func (p Props) entryHeader(f style.HeaderFields, st style.HeaderStyles) *render.Node {
	return style.EntryHeader(f, p.Cfg.Int(settings.KeyEntryLayoutStyle), st)
}

// sectionContainer wraps a heading and entry nodes into the section's outer
// container.
func (p Props) sectionContainer(sectionID string, heading *render.Node, entries ...*render.Node) *render.Node {
	return render.Container("section section-"+sectionID, render.Style{
		Direction: "column",
		GapPt:     p.Cfg.Float(settings.KeyItemSpacing),
		MarginBot: p.Cfg.Float(settings.KeySectionSpacing),
	}, append([]*render.Node{heading}, entries...)...)
}

// dateRange formats a start/end pair for display. An open end renders as
// "Present"; a missing start leaves just the end.
func dateRange(start, end string) string {
	switch {
	case start == "" && end == "":
		return ""
	case start == "":
		return end
	case end == "":
		return start + " — Present"
	default:
		return start + " — " + end
	}
}
