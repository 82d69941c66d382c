package types

import "strings"

// Section id constants for the twelve fixed content categories.
const (
	SectionSummary      = "summary"
	SectionWork         = "work"
	SectionEducation    = "education"
	SectionSkills       = "skills"
	SectionProjects     = "projects"
	SectionCertificates = "certificates"
	SectionLanguages    = "languages"
	SectionInterests    = "interests"
	SectionPublications = "publications"
	SectionAwards       = "awards"
	SectionReferences   = "references"
	SectionCustom       = "custom"
)

// CustomSectionPrefix prefixes the ids under which individual custom
// sections appear in the section order (e.g. "custom-3f9a").
const CustomSectionPrefix = SectionCustom + "-"

// FixedSections returns the eleven non-custom section ids in their default
// document order. Custom sections are appended per document under
// "custom-<id>" ids.
func FixedSections() []string {
	return []string{
		SectionSummary,
		SectionWork,
		SectionEducation,
		SectionSkills,
		SectionProjects,
		SectionCertificates,
		SectionLanguages,
		SectionInterests,
		SectionPublications,
		SectionAwards,
		SectionReferences,
	}
}

// IsCustomSectionID reports whether id refers to an individual custom section.
func IsCustomSectionID(id string) bool {
	return strings.HasPrefix(id, CustomSectionPrefix)
}

// CustomSectionID returns the order-list id for a custom section.
func CustomSectionID(customID string) string {
	return CustomSectionPrefix + customID
}

// TrimCustomSectionID returns the custom section's own id given its
// order-list id, and whether the input was a custom section id at all.
func TrimCustomSectionID(id string) (string, bool) {
	if !IsCustomSectionID(id) {
		return "", false
	}
	return strings.TrimPrefix(id, CustomSectionPrefix), true
}

// SectionOrderFor returns the default section order for a document: the
// fixed sections followed by the document's custom sections in insertion
// order.
func SectionOrderFor(doc *Document) []string {
	order := FixedSections()
	if doc != nil {
		for _, c := range doc.Custom {
			order = append(order, CustomSectionID(c.ID))
		}
	}
	return order
}
