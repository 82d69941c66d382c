// Package settings implements the cascading layout configuration: the flat
// key space, the hardcoded defaults, the three-layer resolver, and the edit
// reducer that produces new override layers.
package settings

// Global typography and layout keys.
const (
	KeyFontFamily      = "font_family"
	KeyFontSize        = "font_size"
	KeyLineHeight      = "line_height"
	KeyPageMargin      = "page_margin"
	KeySectionSpacing  = "section_spacing"
	KeyItemSpacing     = "item_spacing"
	KeyColumnCount     = "column_count"
	KeyLeftColumnWidth = "left_column_width"
	KeyHeaderPosition  = "header_position"
	KeyHeaderAlignment = "header_alignment"

	KeyNameFontSize    = "name_font_size"
	KeyNameBold        = "name_bold"
	KeyNameUppercase   = "name_uppercase"
	KeyTitleFontSize   = "title_font_size"
	KeyTitleItalic     = "title_italic"
	KeyContactFontSize = "contact_font_size"
	KeyContactIcons    = "contact_icons"
	KeyLinkDisplay     = "link_display"
)

// Theme and structural keys.
const (
	KeyAccentColor       = "accent_color"
	KeyThemeColorTargets = "theme_color_targets"
	KeySectionOrder      = "section_order"

	KeySectionHeadingStyle = "section_heading_style"
	KeyHeadingTransform    = "heading_transform"
	KeyHeadingFontSize     = "heading_font_size"
	KeyEntryLayoutStyle    = "entry_layout_style"
	KeyLevelStyle          = "level_style"

	KeyPhotoVisible = "photo_visible"
	KeyPhotoSize    = "photo_size"
	KeyPhotoShape   = "photo_shape"

	KeySkillsDisplay    = "skills_display"
	KeyLanguagesDisplay = "languages_display"
	KeyInterestsDisplay = "interests_display"

	KeySummaryJustified = "summary_justified"
)

// Link display modes for KeyLinkDisplay.
const (
	LinkDisplayIcon   = "icon"
	LinkDisplayFull   = "full"
	LinkDisplayHidden = "hidden"
)

// Display styles for the skills section (KeySkillsDisplay).
const (
	SkillsDisplayGrid    = "grid"
	SkillsDisplayLeveled = "leveled"
	SkillsDisplayCompact = "compact"
	SkillsDisplayTags    = "tags"
)

// Display styles for the languages and interests sections.
const (
	ListDisplayList    = "list"
	ListDisplayCompact = "compact"
	ListDisplayTags    = "tags"
)

// BoldKey returns the per-section-per-field bold toggle key,
// e.g. BoldKey("work", "company") == "work_company_bold".
func BoldKey(section, field string) string {
	return section + "_" + field + "_bold"
}

// ItalicKey returns the per-section-per-field italic toggle key.
func ItalicKey(section, field string) string {
	return section + "_" + field + "_italic"
}

// ListStyleKey returns the list style key for a list-bearing field,
// e.g. ListStyleKey("work", "highlights") == "work_highlights_list_style".
func ListStyleKey(section, field string) string {
	return section + "_" + field + "_list_style"
}

// HeadingVisibleKey returns the per-section heading visibility key.
func HeadingVisibleKey(section string) string {
	return section + "_heading_visible"
}

// sectionFields enumerates the styleable fields per section. The map drives
// both default generation and the schema; renderers address fields through
// the same names.
var sectionFields = map[string][]string{
	"work":         {"company", "position", "date", "location", "summary"},
	"education":    {"institution", "area", "date", "location", "score"},
	"skills":       {"name", "level"},
	"projects":     {"name", "description", "date"},
	"certificates": {"name", "issuer", "date"},
	"languages":    {"language", "fluency"},
	"interests":    {"name"},
	"publications": {"name", "publisher", "date", "summary"},
	"awards":       {"title", "awarder", "date", "summary"},
	"references":   {"name", "reference"},
	"custom":       {"title"},
}

// boldByDefault lists the primary field per section, rendered bold unless
// overridden.
var boldByDefault = map[string]string{
	"work":         "company",
	"education":    "institution",
	"skills":       "name",
	"projects":     "name",
	"certificates": "name",
	"languages":    "language",
	"interests":    "name",
	"publications": "name",
	"awards":       "title",
	"references":   "name",
	"custom":       "title",
}

// listFields enumerates the list-bearing field per section, with its
// default list style.
var listFields = map[string]struct {
	field string
	style string
}{
	"work":      {"highlights", "bullet"},
	"education": {"courses", "inline"},
	"skills":    {"keywords", "inline"},
	"projects":  {"highlights", "bullet"},
	"interests": {"keywords", "inline"},
	"custom":    {"items", "bullet"},
}
