// Package compose is the engine entry point: it resolves the configuration
// cascade, orders and distributes the sections, and produces the final
// render tree for one document.
package compose

import (
	"github.com/danielcho/resume-composer/internal/layout"
	"github.com/danielcho/resume-composer/internal/render"
	"github.com/danielcho/resume-composer/internal/sections"
	"github.com/danielcho/resume-composer/internal/settings"
	"github.com/danielcho/resume-composer/internal/style"
	"github.com/danielcho/resume-composer/internal/templates"
	"github.com/danielcho/resume-composer/internal/theme"
	"github.com/danielcho/resume-composer/internal/types"
)

// Compose renders a document with the given user-override settings layer
// under a template. The call is a pure, synchronous transformation; it
// never performs I/O and never fails on missing optional data.
func Compose(doc *types.Document, overrides settings.Settings, tmpl templates.Template) *render.Node {
	cfg := settings.Resolve(settings.Defaults(), tmpl.Defaults, overrides)
	colors := theme.NewResolver(cfg.String(settings.KeyAccentColor), cfg.Strings(settings.KeyThemeColorTargets))

	p := sections.Props{
		Doc:        doc,
		Cfg:        cfg,
		Colors:     colors,
		FontFamily: cfg.String(settings.KeyFontFamily),
		FontSizePt: cfg.Float(settings.KeyFontSize),
	}

	order := layout.NormalizeOrder(cfg.SectionOrder(), types.SectionOrderFor(doc))
	columnCount := cfg.Int(settings.KeyColumnCount)
	distributed := layout.Distribute(order, columnCount, tmpl.Membership)

	body := render.Container("body", render.Style{Direction: "row", GapPt: cfg.Float(settings.KeySectionSpacing)})
	for i, columnIDs := range distributed {
		column := render.Container("column", render.Style{
			Direction:  "column",
			WidthRatio: columnWidth(i, len(distributed), cfg.Float(settings.KeyLeftColumnWidth)),
		}, sections.RenderMany(columnIDs, p, nil)...)
		body.Append(column)
	}

	return render.Container("page", render.Style{
		FontFamily: p.FontFamily,
		FontSizePt: p.FontSizePt,
		LineHeight: cfg.Float(settings.KeyLineHeight),
		PaddingPt:  cfg.Float(settings.KeyPageMargin),
		Direction:  "column",
		GapPt:      cfg.Float(settings.KeySectionSpacing),
	}, header(p), body)
}

// columnWidth derives a column's share of the page width from the
// configured left column ratio.
func columnWidth(index, count int, leftRatio float64) float64 {
	if count <= 1 {
		return 1
	}
	if leftRatio <= 0 || leftRatio >= 1 {
		leftRatio = 0.3
	}
	switch {
	case index == 0:
		return leftRatio
	case count == 2:
		return 1 - leftRatio
	case index == count-1:
		return leftRatio
	default:
		return 1 - 2*leftRatio
	}
}

// header renders the basics block: name, label, contact row, and the
// optional profile photo.
func header(p sections.Props) *render.Node {
	b := p.Doc.Basics
	cfg := p.Cfg

	nameStyle := render.Style{
		Color:      p.Colors.Color(theme.TargetName, "#111111"),
		FontFamily: p.FontFamily,
		FontSizePt: cfg.Float(settings.KeyNameFontSize),
		Bold:       cfg.Bool(settings.KeyNameBold),
	}
	if cfg.Bool(settings.KeyNameUppercase) {
		nameStyle.Transform = "uppercase"
	}

	labelStyle := render.Style{
		Color:      p.Colors.Color(theme.TargetTitle, "#444444"),
		FontFamily: p.FontFamily,
		FontSizePt: cfg.Float(settings.KeyTitleFontSize),
		Italic:     cfg.Bool(settings.KeyTitleItalic),
	}

	identity := render.Container("identity", render.Style{
		Direction: "column",
		Align:     cfg.String(settings.KeyHeaderAlignment),
		GapPt:     2,
	},
		render.Text(b.Name, nameStyle),
		render.Text(b.Label, labelStyle),
		contactRow(p),
	)

	head := render.Container("header", render.Style{
		Direction: "row",
		Align:     "space-between",
	}, identity)

	if cfg.Bool(settings.KeyPhotoVisible) && b.Photo != "" {
		photoStyle := style.PhotoGeometry(cfg.Float(settings.KeyPhotoSize), cfg.String(settings.KeyPhotoShape))
		head.Append(render.Image(b.Photo, photoStyle))
	}
	return head
}

// contactRow renders the contact fields present on the document, each with
// an optional leading icon glyph.
func contactRow(p sections.Props) *render.Node {
	b := p.Doc.Basics
	cfg := p.Cfg

	contactStyle := render.Style{
		Color:      p.Colors.Color(theme.TargetSubtext, "#555555"),
		FontFamily: p.FontFamily,
		FontSizePt: cfg.Float(settings.KeyContactFontSize),
	}
	iconColor := p.Colors.Color(theme.TargetIcons, contactStyle.Color)
	icons := cfg.Bool(settings.KeyContactIcons)

	row := render.Container("contact", render.Style{Direction: "row", GapPt: 8})
	add := func(icon, text string, link bool) {
		if text == "" {
			return
		}
		item := render.Container("contact-item", render.Style{Direction: "row", GapPt: 2})
		if icons {
			item.Append(render.Text(icon, render.Style{Color: iconColor, FontSizePt: contactStyle.FontSizePt}))
		}
		if link {
			linkStyle := contactStyle
			linkStyle.Color = p.Colors.Color(theme.TargetLinks, contactStyle.Color)
			item.Append(render.Link(text, text, linkStyle))
		} else {
			item.Append(render.Text(text, contactStyle))
		}
		row.Append(item)
	}

	add("✉", b.Email, false)
	add("☎", b.Phone, false)
	add("🌐", b.Website, true)
	add("📍", b.Location, false)

	if len(row.Children) == 0 {
		return nil
	}
	return row
}
