package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainer_DropsNilChildren(t *testing.T) {
	n := Container("row", Style{}, Text("a", Style{}), nil, Text("", Style{}), Text("b", Style{}))

	require.Len(t, n.Children, 2)
	assert.Equal(t, "a", n.Children[0].Text)
	assert.Equal(t, "b", n.Children[1].Text)
}

func TestText_EmptyIsNil(t *testing.T) {
	assert.Nil(t, Text("", Style{Bold: true}))
	assert.NotNil(t, Text("x", Style{}))
}

func TestLink(t *testing.T) {
	assert.Nil(t, Link("", "text", Style{}))

	n := Link("https://example.com", "", Style{})
	require.NotNil(t, n)
	assert.Equal(t, KindLink, n.Kind)
	assert.Equal(t, "https://example.com", n.Href)
	assert.Equal(t, "https://example.com", n.Text)

	n = Link("https://example.com", "Example", Style{})
	assert.Equal(t, "Example", n.Text)
}

func TestImage_EmptySrcIsNil(t *testing.T) {
	assert.Nil(t, Image("", Style{}))
	assert.Equal(t, KindImage, Image("photo.jpg", Style{}).Kind)
}

func TestAppend_SkipsNil(t *testing.T) {
	n := Container("row", Style{})
	n.Append(nil, Text("a", Style{}), nil)

	require.Len(t, n.Children, 1)
}

func TestEmpty(t *testing.T) {
	var nilNode *Node
	assert.True(t, nilNode.Empty())
	assert.True(t, Container("row", Style{}).Empty())
	assert.False(t, Container("row", Style{}, Text("a", Style{})).Empty())
	assert.False(t, Text("a", Style{}).Empty())
}

func TestNode_JSONRoundTrip(t *testing.T) {
	root := Container("page", Style{FontFamily: "Inter", FontSizePt: 10},
		Text("hello", Style{Bold: true, Color: "#111111"}),
		Link("https://example.com", "Example", Style{}),
	)

	data, err := json.Marshal(root)
	require.NoError(t, err)

	var decoded Node
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *root, decoded)
}

func TestNode_JSONOmitsZeroStyle(t *testing.T) {
	data, err := json.Marshal(Text("x", Style{}))
	require.NoError(t, err)

	assert.NotContains(t, string(data), "font_size_pt")
	assert.NotContains(t, string(data), "children")
}
