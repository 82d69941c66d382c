// Package export turns a composed render tree into delivery formats: a
// self-contained HTML page, and a PDF printed from that page in headless
// Chrome.
package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/danielcho/resume-composer/internal/render"
)

// HTML serializes a render tree into a self-contained HTML page with inline
// styles. The output is deterministic for a given tree; the page carries no
// external stylesheets or scripts.
func HTML(root *render.Node) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"UTF-8\">\n")
	sb.WriteString("<style>body{margin:0;padding:0;} a{text-decoration:none;}</style>\n")
	sb.WriteString("</head>\n<body>\n")
	writeNode(&sb, root)
	sb.WriteString("\n</body>\n</html>\n")
	return sb.String()
}

// writeNode serializes one node and its children.
func writeNode(sb *strings.Builder, n *render.Node) {
	if n == nil || n.Empty() {
		return
	}

	switch n.Kind {
	case render.KindContainer:
		openTag(sb, "div", n)
		for _, c := range n.Children {
			writeNode(sb, c)
		}
		sb.WriteString("</div>")

	case render.KindText:
		openTag(sb, "span", n)
		sb.WriteString(html.EscapeString(n.Text))
		sb.WriteString("</span>")

	case render.KindLink:
		sb.WriteString(`<a href="` + html.EscapeString(n.Href) + `"`)
		writeAttrs(sb, n)
		sb.WriteString(">")
		sb.WriteString(html.EscapeString(n.Text))
		sb.WriteString("</a>")

	case render.KindImage:
		sb.WriteString(`<img src="` + html.EscapeString(n.Src) + `"`)
		writeAttrs(sb, n)
		sb.WriteString(">")
	}
}

func openTag(sb *strings.Builder, tag string, n *render.Node) {
	sb.WriteString("<" + tag)
	writeAttrs(sb, n)
	sb.WriteString(">")
}

func writeAttrs(sb *strings.Builder, n *render.Node) {
	if n.Class != "" {
		sb.WriteString(` class="` + html.EscapeString(n.Class) + `"`)
	}
	// Style values come from user-controlled settings (accent color, font
	// family) and must not be able to break out of the attribute.
	if styles := css(n); styles != "" {
		sb.WriteString(` style="` + html.EscapeString(styles) + `"`)
	}
}

// css maps a resolved node style onto inline CSS declarations, in a fixed
// order so output stays deterministic.
func css(n *render.Node) string {
	s := n.Style
	var d []string
	add := func(prop, val string) {
		d = append(d, prop+":"+val)
	}
	pt := func(v float64) string {
		return strings.TrimSuffix(strings.TrimSuffix(fmt.Sprintf("%.2f", v), "0"), ".0") + "pt"
	}

	if n.Kind == render.KindContainer {
		add("display", "flex")
		dir := s.Direction
		if dir == "" {
			dir = "column"
		}
		add("flex-direction", map[string]string{"row": "row", "column": "column"}[dir])
		switch s.Align {
		case "space-between":
			add("justify-content", "space-between")
		case "center":
			add("align-items", "center")
		case "right":
			add("align-items", "flex-end")
		}
		if s.GapPt > 0 {
			add("gap", pt(s.GapPt))
		}
		if s.WidthRatio > 0 && s.WidthRatio < 1 {
			add("width", fmt.Sprintf("%.1f%%", s.WidthRatio*100))
		}
	}

	if s.Color != "" {
		add("color", s.Color)
	}
	if s.Background != "" {
		add("background", s.Background)
	}
	if s.FontFamily != "" {
		add("font-family", "'"+s.FontFamily+"', sans-serif")
	}
	if s.FontSizePt > 0 {
		add("font-size", pt(s.FontSizePt))
	}
	if s.LineHeight > 0 {
		add("line-height", fmt.Sprintf("%.2f", s.LineHeight))
	}
	if s.Bold {
		add("font-weight", "bold")
	}
	if s.Italic {
		add("font-style", "italic")
	}
	if s.Transform != "" {
		add("text-transform", s.Transform)
	}
	if s.Justify {
		add("text-align", "justify")
	}
	if s.PaddingPt > 0 {
		add("padding", pt(s.PaddingPt))
	}
	if s.MarginTop > 0 {
		add("margin-top", pt(s.MarginTop))
	}
	if s.MarginBot > 0 {
		add("margin-bottom", pt(s.MarginBot))
	}
	if s.SizePt > 0 {
		add("width", pt(s.SizePt))
		add("height", pt(s.SizePt))
	}
	if s.RadiusPt > 0 {
		add("border-radius", pt(s.RadiusPt))
	}
	for _, b := range s.Borders {
		line := b.Line
		if line == "" {
			line = "solid"
		}
		add("border-"+string(b.Side), pt(b.WidthPt)+" "+line+" "+b.Color)
	}

	return strings.Join(d, ";")
}
