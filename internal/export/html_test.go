package export

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielcho/resume-composer/internal/compose"
	"github.com/danielcho/resume-composer/internal/render"
	"github.com/danielcho/resume-composer/internal/settings"
	"github.com/danielcho/resume-composer/internal/templates"
	"github.com/danielcho/resume-composer/internal/types"
)

func parseHTML(t *testing.T, page string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func exportDoc() *types.Document {
	return &types.Document{
		Basics: types.Basics{
			Name:    "Alan Turing",
			Label:   "Mathematician",
			Summary: "Computability & cryptanalysis.",
			Email:   "alan@example.com",
			Website: "https://turing.example.com",
		},
		Work: []types.WorkEntry{
			{ID: "w1", Company: "GC&CS", Position: "Cryptanalyst", StartDate: "1939", EndDate: "1945",
				Highlights: []string{"Broke naval Enigma"}},
		},
		Skills: []types.SkillEntry{{ID: "s1", Name: "Logic", Keywords: []string{"lambda calculus"}}},
	}
}

func TestHTML_PageSkeleton(t *testing.T) {
	page := HTML(compose.Compose(exportDoc(), nil, templates.Default()))

	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	doc := parseHTML(t, page)
	assert.Equal(t, 1, doc.Find("div.page").Length())
	assert.Equal(t, 1, doc.Find("div.header").Length())
	assert.Equal(t, 1, doc.Find("div.body").Length())
	assert.Equal(t, 1, doc.Find("div.column").Length())
}

func TestHTML_SectionsCarrySemanticClasses(t *testing.T) {
	page := HTML(compose.Compose(exportDoc(), nil, templates.Default()))

	doc := parseHTML(t, page)
	assert.Equal(t, 1, doc.Find("div.section-work").Length())
	assert.Equal(t, 1, doc.Find("div.section-skills").Length())
	assert.Equal(t, 0, doc.Find("div.section-education").Length())
}

func TestHTML_TextContent(t *testing.T) {
	page := HTML(compose.Compose(exportDoc(), nil, templates.Default()))

	doc := parseHTML(t, page)
	assert.Contains(t, doc.Find("div.header").Text(), "Alan Turing")
	assert.Contains(t, doc.Find("div.section-work").Text(), "GC&CS")
	assert.Contains(t, doc.Find("div.section-work").Text(), "Broke naval Enigma")
	assert.Contains(t, doc.Find("div.section-work").Text(), "1939 — 1945")
}

func TestHTML_InlineStyles(t *testing.T) {
	page := HTML(compose.Compose(exportDoc(), nil, templates.Default()))

	doc := parseHTML(t, page)
	pageStyle, ok := doc.Find("div.page").Attr("style")
	require.True(t, ok)
	assert.Contains(t, pageStyle, "display:flex")
	assert.Contains(t, pageStyle, "flex-direction:column")
	assert.Contains(t, pageStyle, "font-family:'Inter', sans-serif")
	assert.Contains(t, pageStyle, "font-size:10pt")
	assert.Contains(t, pageStyle, "padding:40pt")
}

func TestHTML_SidebarColumnWidths(t *testing.T) {
	tmpl, err := templates.Get("sidebar")
	require.NoError(t, err)

	page := HTML(compose.Compose(exportDoc(), nil, tmpl))

	doc := parseHTML(t, page)
	columns := doc.Find("div.column")
	require.Equal(t, 2, columns.Length())
	left, _ := columns.First().Attr("style")
	right, _ := columns.Last().Attr("style")
	assert.Contains(t, left, "width:30.0%")
	assert.Contains(t, right, "width:70.0%")
}

func TestHTML_Links(t *testing.T) {
	page := HTML(compose.Compose(exportDoc(), nil, templates.Default()))

	doc := parseHTML(t, page)
	link := doc.Find(`a[href="https://turing.example.com"]`)
	require.Equal(t, 1, link.Length())
	assert.Equal(t, "https://turing.example.com", link.Text())
}

func TestHTML_EscapesUserText(t *testing.T) {
	d := exportDoc()
	d.Basics.Name = `<script>alert("x")</script> & Co`

	page := HTML(compose.Compose(d, nil, templates.Default()))

	assert.NotContains(t, page, `<script>alert`)
	doc := parseHTML(t, page)
	assert.Equal(t, 0, doc.Find("script").Length())
	assert.Contains(t, doc.Find("div.identity").Text(), `& Co`)
}

func TestHTML_EscapesStyleValues(t *testing.T) {
	// Font family and accent color come from the user-override layer, so a
	// quote in either must not break out of the style attribute.
	page := HTML(compose.Compose(exportDoc(), settings.Settings{
		"font_family":  `x'"><img src=x onerror=alert(1)>`,
		"accent_color": `#111" onmouseover="alert(1)`,
	}, templates.Default()))

	assert.NotContains(t, page, `"><img`)
	doc := parseHTML(t, page)
	assert.Equal(t, 0, doc.Find("img").Length())
	assert.Equal(t, 0, doc.Find("[onmouseover]").Length())
	assert.Equal(t, 0, doc.Find("[onerror]").Length())
}

func TestHTML_EscapesStyleValues_DirectNode(t *testing.T) {
	n := render.Container("page", render.Style{},
		render.Text("x", render.Style{FontFamily: `x'"><b>`, Color: `red"><b>`}),
	)

	page := HTML(n)

	doc := parseHTML(t, page)
	assert.Equal(t, 0, doc.Find("b").Length())
	span := doc.Find("span")
	require.Equal(t, 1, span.Length())
	style, ok := span.Attr("style")
	require.True(t, ok)
	assert.Contains(t, style, `x'"><b>`)
}

func TestHTML_AccentColorAppearsInline(t *testing.T) {
	page := HTML(compose.Compose(exportDoc(), settings.Settings{
		settings.KeyAccentColor: "#aa3366",
	}, templates.Default()))

	assert.Contains(t, page, "color:#aa3366")
}

func TestHTML_BoldAndTransformStyles(t *testing.T) {
	page := HTML(compose.Compose(exportDoc(), nil, templates.Default()))

	doc := parseHTML(t, page)
	heading := doc.Find("div.section-work div.section-heading span").First()
	style, ok := heading.Attr("style")
	require.True(t, ok)
	assert.Contains(t, style, "font-weight:bold")
	assert.Contains(t, style, "text-transform:uppercase")
}

func TestHTML_Deterministic(t *testing.T) {
	d := exportDoc()
	root := compose.Compose(d, nil, templates.Default())

	assert.Equal(t, HTML(root), HTML(root))
	assert.Equal(t, HTML(root), HTML(compose.Compose(d, nil, templates.Default())))
}

func TestHTML_EmptyTreeRendersNoBodyContent(t *testing.T) {
	page := HTML(render.Container("page", render.Style{}))

	doc := parseHTML(t, page)
	assert.Equal(t, 0, doc.Find("div").Length())
	assert.Equal(t, "", strings.TrimSpace(doc.Find("body").Text()))
}

func TestHTML_ImageGeometry(t *testing.T) {
	d := exportDoc()
	d.Basics.Photo = "photos/alan.jpg"

	page := HTML(compose.Compose(d, nil, templates.Default()))

	doc := parseHTML(t, page)
	img := doc.Find(`img[src="photos/alan.jpg"]`)
	require.Equal(t, 1, img.Length())
	style, ok := img.Attr("style")
	require.True(t, ok)
	assert.Contains(t, style, "width:72pt")
	assert.Contains(t, style, "border-radius:36pt")
}
