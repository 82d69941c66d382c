// Package types provides type definitions for structured data used throughout the resume-composer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Document represents a complete resume document: the basics block plus the
// twelve content collections. Insertion order within each collection is
// significant for default ordering only.
type Document struct {
	ID     string `json:"id,omitempty"`
	Basics Basics `json:"basics"`

	Work         []WorkEntry        `json:"work,omitempty"`
	Education    []EducationEntry   `json:"education,omitempty"`
	Skills       []SkillEntry       `json:"skills,omitempty"`
	Projects     []ProjectEntry     `json:"projects,omitempty"`
	Certificates []CertificateEntry `json:"certificates,omitempty"`
	Languages    []LanguageEntry    `json:"languages,omitempty"`
	Interests    []InterestEntry    `json:"interests,omitempty"`
	Publications []PublicationEntry `json:"publications,omitempty"`
	Awards       []AwardEntry       `json:"awards,omitempty"`
	References   []ReferenceEntry   `json:"references,omitempty"`
	Custom       []CustomSection    `json:"custom,omitempty"`
}

// Basics holds the document header fields: identity, contact information,
// the free-text summary, and an optional profile photo reference.
type Basics struct {
	Name     string `json:"name" validate:"required,min=1"`
	Label    string `json:"label,omitempty"`
	Summary  string `json:"summary,omitempty"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty"`
	Website  string `json:"website,omitempty"`
	Location string `json:"location,omitempty"`
	Photo    string `json:"photo,omitempty"` // storage key or URL, resolved by the export collaborator
}

// WorkEntry represents a single job in the work history.
type WorkEntry struct {
	ID         string   `json:"id"`
	Company    string   `json:"company"`
	Position   string   `json:"position,omitempty"`
	Location   string   `json:"location,omitempty"`
	URL        string   `json:"url,omitempty"`
	StartDate  string   `json:"start_date,omitempty"`
	EndDate    string   `json:"end_date,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

// EducationEntry represents a single education record.
type EducationEntry struct {
	ID          string   `json:"id"`
	Institution string   `json:"institution"`
	Area        string   `json:"area,omitempty"`
	StudyType   string   `json:"study_type,omitempty"`
	Location    string   `json:"location,omitempty"`
	URL         string   `json:"url,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Score       string   `json:"score,omitempty"`
	Courses     []string `json:"courses,omitempty"`
}

// SkillEntry represents a named skill with an optional free-text level and keywords.
type SkillEntry struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Level    string   `json:"level,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

// ProjectEntry represents a single project.
type ProjectEntry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
}

// CertificateEntry represents a single certificate or license.
type CertificateEntry struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
	URL    string `json:"url,omitempty"`
}

// LanguageEntry represents a spoken language with a free-text fluency level.
type LanguageEntry struct {
	ID       string `json:"id"`
	Language string `json:"language"`
	Fluency  string `json:"fluency,omitempty"`
}

// InterestEntry represents a single interest with optional keywords.
type InterestEntry struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Keywords []string `json:"keywords,omitempty"`
}

// PublicationEntry represents a single publication.
type PublicationEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Publisher   string `json:"publisher,omitempty"`
	ReleaseDate string `json:"release_date,omitempty"`
	URL         string `json:"url,omitempty"`
	Summary     string `json:"summary,omitempty"`
}

// AwardEntry represents a single award or honor.
type AwardEntry struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Awarder string `json:"awarder,omitempty"`
	Date    string `json:"date,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// ReferenceEntry represents a single personal reference.
type ReferenceEntry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Reference string `json:"reference,omitempty"`
}

// CustomSection represents a free-form user-defined section. The shape is
// uniform: a user-chosen title and a flat list of items. Custom sections
// appear in the section order under the id "custom-<ID>".
type CustomSection struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Items []string `json:"items,omitempty"`
}
