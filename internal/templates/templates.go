// Package templates defines the built-in document templates: per-template
// default settings and static column membership sets.
package templates

import (
	"fmt"
	"sort"

	"github.com/danielcho/resume-composer/internal/layout"
	"github.com/danielcho/resume-composer/internal/settings"
	"github.com/danielcho/resume-composer/internal/types"
)

// Template is one built-in document template. Defaults is the template
// layer of the settings cascade; Membership drives the column distributor.
type Template struct {
	ID         string
	Name       string
	Defaults   settings.Settings
	Membership layout.Membership
}

// DefaultTemplateID is used when a document names no template.
const DefaultTemplateID = "classic"

var builtins = map[string]Template{
	"classic": {
		ID:       "classic",
		Name:     "Classic",
		Defaults: settings.Settings{settings.KeyColumnCount: 1},
	},
	"sidebar": {
		ID:   "sidebar",
		Name: "Sidebar",
		Defaults: settings.Settings{
			settings.KeyColumnCount:         2,
			settings.KeyLeftColumnWidth:     0.3,
			settings.KeySectionHeadingStyle: 6,
			settings.KeySkillsDisplay:       settings.SkillsDisplayLeveled,
		},
		Membership: layout.Membership{
			Left: set(
				types.SectionSkills,
				types.SectionLanguages,
				types.SectionInterests,
				types.SectionCertificates,
				types.SectionAwards,
			),
			Main: set(
				types.SectionSummary,
				types.SectionWork,
				types.SectionEducation,
				types.SectionProjects,
				types.SectionPublications,
				types.SectionReferences,
			),
		},
	},
	"trio": {
		ID:   "trio",
		Name: "Trio",
		Defaults: settings.Settings{
			settings.KeyColumnCount:         3,
			settings.KeyLeftColumnWidth:     0.25,
			settings.KeySectionHeadingStyle: 4,
			settings.KeyHeadingTransform:    "capitalize",
		},
		Membership: layout.Membership{
			Left: set(
				types.SectionSkills,
				types.SectionLanguages,
				types.SectionInterests,
			),
			Main: set(
				types.SectionSummary,
				types.SectionWork,
				types.SectionEducation,
				types.SectionProjects,
			),
			Right: set(
				types.SectionCertificates,
				types.SectionPublications,
				types.SectionAwards,
				types.SectionReferences,
			),
		},
	},
}

// Get returns a built-in template by id.
func Get(id string) (Template, error) {
	if id == "" {
		id = DefaultTemplateID
	}
	t, ok := builtins[id]
	if !ok {
		return Template{}, fmt.Errorf("unknown template: %q", id)
	}
	return t, nil
}

// Default returns the default template.
func Default() Template {
	return builtins[DefaultTemplateID]
}

// IDs returns the built-in template ids, sorted.
func IDs() []string {
	ids := make([]string, 0, len(builtins))
	for id := range builtins {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func set(ids ...string) map[string]bool {
	m := make(map[string]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}
