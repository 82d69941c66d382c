// Package render defines the typed output tree the composition engine hands
// to the export collaborators. The tree is ordered, nested, and carries
// fully resolved colors, fonts, and geometry; exporters never consult the
// configuration again.
package render

// Kind identifies the node variants exporters must understand.
type Kind string

// Node kinds.
const (
	KindContainer Kind = "container"
	KindText      Kind = "text"
	KindImage     Kind = "image"
	KindLink      Kind = "link"
)

// BorderSide positions a border edge on a container.
type BorderSide string

// Border sides.
const (
	BorderTop    BorderSide = "top"
	BorderBottom BorderSide = "bottom"
	BorderLeft   BorderSide = "left"
	BorderRight  BorderSide = "right"
)

// Border describes one resolved border edge.
type Border struct {
	Side    BorderSide `json:"side"`
	WidthPt float64    `json:"width_pt"`
	Line    string     `json:"line,omitempty"` // solid, dotted, double
	Color   string     `json:"color,omitempty"`
}

// Style carries the resolved visual attributes of a node. Zero values mean
// "inherit or none"; exporters must not re-derive anything from settings.
type Style struct {
	Color      string  `json:"color,omitempty"`
	Background string  `json:"background,omitempty"`
	FontFamily string  `json:"font_family,omitempty"`
	FontSizePt float64 `json:"font_size_pt,omitempty"`
	LineHeight float64 `json:"line_height,omitempty"`
	Bold       bool    `json:"bold,omitempty"`
	Italic     bool    `json:"italic,omitempty"`
	Transform  string  `json:"transform,omitempty"` // uppercase, capitalize, lowercase

	Direction  string  `json:"direction,omitempty"` // row or column, containers only
	Align      string  `json:"align,omitempty"`     // left, center, right, space-between
	Justify    bool    `json:"justify,omitempty"`
	GapPt      float64 `json:"gap_pt,omitempty"`
	PaddingPt  float64 `json:"padding_pt,omitempty"`
	MarginTop  float64 `json:"margin_top_pt,omitempty"`
	MarginBot  float64 `json:"margin_bottom_pt,omitempty"`
	WidthRatio float64 `json:"width_ratio,omitempty"` // fraction of the parent width
	SizePt     float64 `json:"size_pt,omitempty"`     // images: square edge length
	RadiusPt   float64 `json:"radius_pt,omitempty"`   // images: corner radius

	Borders []Border `json:"borders,omitempty"`
}

// Node is one element of the render tree.
type Node struct {
	Kind     Kind    `json:"kind"`
	Class    string  `json:"class,omitempty"` // semantic hint for exporters, e.g. "section-heading"
	Text     string  `json:"text,omitempty"`
	Src      string  `json:"src,omitempty"`  // images
	Href     string  `json:"href,omitempty"` // links
	Style    Style   `json:"style,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// Container builds a container node, dropping nil children so renderers can
// pass optional parts straight through.
func Container(class string, style Style, children ...*Node) *Node {
	n := &Node{Kind: KindContainer, Class: class, Style: style}
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Text builds a text-run node. Empty text yields nil so callers can emit
// optional fields without guarding every call site.
func Text(text string, style Style) *Node {
	if text == "" {
		return nil
	}
	return &Node{Kind: KindText, Text: text, Style: style}
}

// Link builds a link node wrapping the given display text.
func Link(href, text string, style Style) *Node {
	if href == "" {
		return nil
	}
	if text == "" {
		text = href
	}
	return &Node{Kind: KindLink, Href: href, Text: text, Style: style}
}

// Image builds an image node. An empty source yields nil.
func Image(src string, style Style) *Node {
	if src == "" {
		return nil
	}
	return &Node{Kind: KindImage, Src: src, Style: style}
}

// Append adds non-nil children to the node and returns it.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Empty reports whether the node renders nothing: nil, or a container with
// no children.
func (n *Node) Empty() bool {
	if n == nil {
		return true
	}
	return n.Kind == KindContainer && len(n.Children) == 0
}
