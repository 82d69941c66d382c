package settings

import "github.com/danielcho/resume-composer/internal/types"

// headingSections lists every section that carries a heading visibility
// toggle. Summary headings are hidden by default; everything else is shown.
var headingSections = []string{
	types.SectionSummary,
	types.SectionWork,
	types.SectionEducation,
	types.SectionSkills,
	types.SectionProjects,
	types.SectionCertificates,
	types.SectionLanguages,
	types.SectionInterests,
	types.SectionPublications,
	types.SectionAwards,
	types.SectionReferences,
	types.SectionCustom,
}

// Defaults returns the hardcoded default layer. This layer is total: it
// defines a value for every known key, so the cascade always resolves.
func Defaults() Settings {
	d := Settings{
		KeyFontFamily:      "Inter",
		KeyFontSize:        10.0,
		KeyLineHeight:      1.4,
		KeyPageMargin:      40.0,
		KeySectionSpacing:  14.0,
		KeyItemSpacing:     8.0,
		KeyColumnCount:     1,
		KeyLeftColumnWidth: 0.32,
		KeyHeaderPosition:  "top",
		KeyHeaderAlignment: "left",

		KeyNameFontSize:    26.0,
		KeyNameBold:        true,
		KeyNameUppercase:   false,
		KeyTitleFontSize:   13.0,
		KeyTitleItalic:     false,
		KeyContactFontSize: 9.0,
		KeyContactIcons:    true,
		KeyLinkDisplay:     LinkDisplayIcon,

		KeyAccentColor:       "#2563eb",
		KeyThemeColorTargets: []string{"name", "headings", "decorations"},
		KeySectionOrder:      types.FixedSections(),

		KeySectionHeadingStyle: 2,
		KeyHeadingTransform:    "uppercase",
		KeyHeadingFontSize:     12.0,
		KeyEntryLayoutStyle:    1,
		KeyLevelStyle:          1,

		KeyPhotoVisible: true,
		KeyPhotoSize:    72.0,
		KeyPhotoShape:   "circle",

		KeySkillsDisplay:    SkillsDisplayGrid,
		KeyLanguagesDisplay: ListDisplayList,
		KeyInterestsDisplay: ListDisplayList,

		KeySummaryJustified: false,
	}

	for section, fields := range sectionFields {
		primary := boldByDefault[section]
		for _, field := range fields {
			d[BoldKey(section, field)] = field == primary
			d[ItalicKey(section, field)] = false
		}
	}
	for section, lf := range listFields {
		d[ListStyleKey(section, lf.field)] = lf.style
	}
	for _, section := range headingSections {
		d[HeadingVisibleKey(section)] = section != types.SectionSummary
	}

	return d
}

// KnownKeys returns the set of keys the hardcoded layer defines. Keys
// outside this set are carried through the cascade untouched but never read
// by any accessor (forward compatibility per the settings-UI contract).
func KnownKeys() map[string]bool {
	known := make(map[string]bool)
	for k := range Defaults() {
		known[k] = true
	}
	return known
}
