package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielcho/resume-composer/internal/render"
	"github.com/danielcho/resume-composer/internal/settings"
	"github.com/danielcho/resume-composer/internal/templates"
	"github.com/danielcho/resume-composer/internal/types"
)

func composeDoc() *types.Document {
	return &types.Document{
		Basics: types.Basics{
			Name:    "Grace Hopper",
			Label:   "Rear Admiral",
			Summary: "Compiler pioneer.",
			Email:   "grace@example.com",
			Phone:   "+1 555 0100",
		},
		Work: []types.WorkEntry{
			{ID: "w1", Company: "US Navy", Position: "Programmer", StartDate: "1943"},
		},
		Skills: []types.SkillEntry{
			{ID: "s1", Name: "COBOL", Level: "Expert"},
		},
		Languages: []types.LanguageEntry{
			{ID: "l1", Language: "English", Fluency: "Native"},
		},
	}
}

func findAll(n *render.Node, class string) []*render.Node {
	if n == nil {
		return nil
	}
	var out []*render.Node
	if n.Class == class {
		out = append(out, n)
	}
	for _, c := range n.Children {
		out = append(out, findAll(c, class)...)
	}
	return out
}

func findOne(t *testing.T, n *render.Node, class string) *render.Node {
	t.Helper()
	matches := findAll(n, class)
	require.Len(t, matches, 1, class)
	return matches[0]
}

func textRuns(n *render.Node) []string {
	if n == nil {
		return nil
	}
	var out []string
	if n.Text != "" {
		out = append(out, n.Text)
	}
	for _, c := range n.Children {
		out = append(out, textRuns(c)...)
	}
	return out
}

func TestCompose_PageStructure(t *testing.T) {
	root := Compose(composeDoc(), nil, templates.Default())

	require.NotNil(t, root)
	assert.Equal(t, "page", root.Class)
	findOne(t, root, "header")
	findOne(t, root, "body")
}

func TestCompose_SingleColumnTemplate(t *testing.T) {
	root := Compose(composeDoc(), nil, templates.Default())

	columns := findAll(root, "column")
	require.Len(t, columns, 1)
	assert.Equal(t, 1.0, columns[0].Style.WidthRatio)
}

func TestCompose_SidebarTemplateSplitsColumns(t *testing.T) {
	tmpl, err := templates.Get("sidebar")
	require.NoError(t, err)

	root := Compose(composeDoc(), nil, tmpl)

	columns := findAll(root, "column")
	require.Len(t, columns, 2)
	assert.InDelta(t, 0.3, columns[0].Style.WidthRatio, 1e-9)
	assert.InDelta(t, 0.7, columns[1].Style.WidthRatio, 1e-9)

	// Skills and languages belong to the sidebar, work to the main column.
	assert.NotEmpty(t, findAll(columns[0], "section section-skills"))
	assert.NotEmpty(t, findAll(columns[0], "section section-languages"))
	assert.NotEmpty(t, findAll(columns[1], "section section-work"))
	assert.Empty(t, findAll(columns[0], "section section-work"))
}

func TestCompose_OverrideColumnCount(t *testing.T) {
	tmpl, err := templates.Get("sidebar")
	require.NoError(t, err)

	root := Compose(composeDoc(), settings.Settings{settings.KeyColumnCount: 1}, tmpl)

	columns := findAll(root, "column")
	require.Len(t, columns, 1)
}

func TestCompose_HeaderContent(t *testing.T) {
	root := Compose(composeDoc(), nil, templates.Default())

	head := findOne(t, root, "header")
	runs := textRuns(head)
	assert.Contains(t, runs, "Grace Hopper")
	assert.Contains(t, runs, "Rear Admiral")

	contact := findOne(t, head, "contact")
	assert.Contains(t, textRuns(contact), "grace@example.com")
	assert.Contains(t, textRuns(contact), "+1 555 0100")
}

func TestCompose_ContactRowAbsentWithoutFields(t *testing.T) {
	doc := &types.Document{Basics: types.Basics{Name: "Grace Hopper"}}

	root := Compose(doc, nil, templates.Default())

	assert.Empty(t, findAll(root, "contact"))
}

func TestCompose_PhotoShownWhenVisibleAndSet(t *testing.T) {
	doc := composeDoc()
	doc.Basics.Photo = "photos/grace.jpg"

	shown := Compose(doc, nil, templates.Default())
	hidden := Compose(doc, settings.Settings{settings.KeyPhotoVisible: false}, templates.Default())
	noPhoto := Compose(composeDoc(), nil, templates.Default())

	images := findImages(shown)
	require.Len(t, images, 1)
	assert.Equal(t, "photos/grace.jpg", images[0].Src)
	assert.Empty(t, findImages(hidden))
	assert.Empty(t, findImages(noPhoto))
}

func TestCompose_EmptySectionsAbsent(t *testing.T) {
	root := Compose(composeDoc(), nil, templates.Default())

	assert.Empty(t, findAll(root, "section section-publications"))
	assert.Empty(t, findAll(root, "section section-references"))
	assert.NotEmpty(t, findAll(root, "section section-work"))
}

func TestCompose_SectionOrderOverride(t *testing.T) {
	root := Compose(composeDoc(), settings.Settings{
		settings.KeySectionOrder: []string{"skills", "work", "summary"},
	}, templates.Default())

	column := findOne(t, root, "column")
	var got []string
	for _, child := range column.Children {
		got = append(got, child.Class)
	}
	assert.Equal(t, []string{
		"section section-skills",
		"section section-work",
		"section section-summary",
		"section section-languages",
	}, got)
}

func TestCompose_IsDeterministic(t *testing.T) {
	doc := composeDoc()
	a := Compose(doc, nil, templates.Default())
	b := Compose(doc, nil, templates.Default())

	assert.Equal(t, a, b)
}

func findImages(n *render.Node) []*render.Node {
	if n == nil {
		return nil
	}
	var out []*render.Node
	if n.Kind == render.KindImage {
		out = append(out, n)
	}
	for _, c := range n.Children {
		out = append(out, findImages(c)...)
	}
	return out
}
