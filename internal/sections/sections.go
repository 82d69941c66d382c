// Package sections maps section ids to their data accessors and renderers.
// All section dispatch in the engine goes through the descriptor table in
// this package; nothing else enumerates the section set.
package sections

import (
	"github.com/danielcho/resume-composer/internal/render"
	"github.com/danielcho/resume-composer/internal/settings"
	"github.com/danielcho/resume-composer/internal/theme"
	"github.com/danielcho/resume-composer/internal/types"
)

// Props carries everything a section renderer consumes: the document, the
// effective configuration, the color resolver, and the resolved base
// typography.
type Props struct {
	Doc        *types.Document
	Cfg        *settings.Effective
	Colors     *theme.Resolver
	FontFamily string
	FontSizePt float64
}

// RenderFunc renders one section, or returns nil when the section's backing
// data is empty.
type RenderFunc func(Props) *render.Node

// Descriptor ties a section id to its data accessor, its renderer, and the
// column it belongs to by default in multi-column templates (1 = sidebar,
// 2 = main).
type Descriptor struct {
	ID            string
	Title         string
	DefaultColumn int
	HasData       func(*types.Document) bool
	Data          func(*types.Document) any
	Render        RenderFunc
}

// sectionTitles holds the default heading title per fixed section. The
// renderers read this map directly rather than going through registry, so
// the registry literal (which references the renderers) has no
// initialization cycle back through them.
var sectionTitles = map[string]string{
	types.SectionSummary:      "Profile",
	types.SectionWork:         "Work Experience",
	types.SectionEducation:    "Education",
	types.SectionSkills:       "Skills",
	types.SectionProjects:     "Projects",
	types.SectionCertificates: "Certificates",
	types.SectionLanguages:    "Languages",
	types.SectionInterests:    "Interests",
	types.SectionPublications: "Publications",
	types.SectionAwards:       "Awards",
	types.SectionReferences:   "References",
}

var registry = map[string]Descriptor{
	types.SectionSummary: {
		ID: types.SectionSummary, Title: sectionTitles[types.SectionSummary], DefaultColumn: 2,
		HasData: func(d *types.Document) bool { return d.Basics.Summary != "" },
		Data:    func(d *types.Document) any { return d.Basics.Summary },
		Render:  renderSummary,
	},
	types.SectionWork: {
		ID: types.SectionWork, Title: sectionTitles[types.SectionWork], DefaultColumn: 2,
		HasData: func(d *types.Document) bool { return len(d.Work) > 0 },
		Data:    func(d *types.Document) any { return d.Work },
		Render:  renderWork,
	},
	types.SectionEducation: {
		ID: types.SectionEducation, Title: sectionTitles[types.SectionEducation], DefaultColumn: 2,
		HasData: func(d *types.Document) bool { return len(d.Education) > 0 },
		Data:    func(d *types.Document) any { return d.Education },
		Render:  renderEducation,
	},
	types.SectionSkills: {
		ID: types.SectionSkills, Title: sectionTitles[types.SectionSkills], DefaultColumn: 1,
		HasData: func(d *types.Document) bool { return len(d.Skills) > 0 },
		Data:    func(d *types.Document) any { return d.Skills },
		Render:  renderSkills,
	},
	types.SectionProjects: {
		ID: types.SectionProjects, Title: sectionTitles[types.SectionProjects], DefaultColumn: 2,
		HasData: func(d *types.Document) bool { return len(d.Projects) > 0 },
		Data:    func(d *types.Document) any { return d.Projects },
		Render:  renderProjects,
	},
	types.SectionCertificates: {
		ID: types.SectionCertificates, Title: sectionTitles[types.SectionCertificates], DefaultColumn: 1,
		HasData: func(d *types.Document) bool { return len(d.Certificates) > 0 },
		Data:    func(d *types.Document) any { return d.Certificates },
		Render:  renderCertificates,
	},
	types.SectionLanguages: {
		ID: types.SectionLanguages, Title: sectionTitles[types.SectionLanguages], DefaultColumn: 1,
		HasData: func(d *types.Document) bool { return len(d.Languages) > 0 },
		Data:    func(d *types.Document) any { return d.Languages },
		Render:  renderLanguages,
	},
	types.SectionInterests: {
		ID: types.SectionInterests, Title: sectionTitles[types.SectionInterests], DefaultColumn: 1,
		HasData: func(d *types.Document) bool { return len(d.Interests) > 0 },
		Data:    func(d *types.Document) any { return d.Interests },
		Render:  renderInterests,
	},
	types.SectionPublications: {
		ID: types.SectionPublications, Title: sectionTitles[types.SectionPublications], DefaultColumn: 2,
		HasData: func(d *types.Document) bool { return len(d.Publications) > 0 },
		Data:    func(d *types.Document) any { return d.Publications },
		Render:  renderPublications,
	},
	types.SectionAwards: {
		ID: types.SectionAwards, Title: sectionTitles[types.SectionAwards], DefaultColumn: 1,
		HasData: func(d *types.Document) bool { return len(d.Awards) > 0 },
		Data:    func(d *types.Document) any { return d.Awards },
		Render:  renderAwards,
	},
	types.SectionReferences: {
		ID: types.SectionReferences, Title: sectionTitles[types.SectionReferences], DefaultColumn: 2,
		HasData: func(d *types.Document) bool { return len(d.References) > 0 },
		Data:    func(d *types.Document) any { return d.References },
		Render:  renderReferences,
	},
}

// Get returns the descriptor for a section id. Custom section ids
// ("custom-<id>") resolve to a descriptor bound to that custom section.
func Get(id string) (Descriptor, bool) {
	if d, ok := registry[id]; ok {
		return d, true
	}
	if customID, ok := types.TrimCustomSectionID(id); ok {
		return customDescriptor(id, customID), true
	}
	return Descriptor{}, false
}

// HasData reports whether the section has any renderable content.
func HasData(doc *types.Document, id string) bool {
	d, ok := Get(id)
	if !ok {
		return false
	}
	return d.HasData(doc)
}

// Data returns the section's backing collection or text, or nil for an
// unknown id.
func Data(doc *types.Document, id string) any {
	d, ok := Get(id)
	if !ok {
		return nil
	}
	return d.Data(doc)
}

// RenderOne renders a single section. Unknown ids and empty sections render
// nothing; neither is an error.
func RenderOne(id string, p Props) *render.Node {
	d, ok := Get(id)
	if !ok {
		return nil
	}
	return d.Render(p)
}

// Filter restricts RenderMany. Include, when non-empty, names the only ids
// allowed; Exclude removes ids afterwards.
type Filter struct {
	Include []string
	Exclude []string
}

// RenderMany renders the sections named by orderedIDs in that exact order,
// applying the include filter before the exclude filter. Sections that are
// unknown, filtered out, or empty contribute nothing.
func RenderMany(orderedIDs []string, p Props, filter *Filter) []*render.Node {
	var include, exclude map[string]bool
	if filter != nil {
		if len(filter.Include) > 0 {
			include = make(map[string]bool, len(filter.Include))
			for _, id := range filter.Include {
				include[id] = true
			}
		}
		if len(filter.Exclude) > 0 {
			exclude = make(map[string]bool, len(filter.Exclude))
			for _, id := range filter.Exclude {
				exclude[id] = true
			}
		}
	}

	var out []*render.Node
	for _, id := range orderedIDs {
		if include != nil && !include[id] {
			continue
		}
		if exclude != nil && exclude[id] {
			continue
		}
		if n := RenderOne(id, p); n != nil {
			out = append(out, n)
		}
	}
	return out
}

// customDescriptor builds a descriptor for one custom section.
func customDescriptor(orderID, customID string) Descriptor {
	find := func(d *types.Document) *types.CustomSection {
		for i := range d.Custom {
			if d.Custom[i].ID == customID {
				return &d.Custom[i]
			}
		}
		return nil
	}
	return Descriptor{
		ID: orderID, Title: "", DefaultColumn: 2,
		HasData: func(d *types.Document) bool {
			c := find(d)
			return c != nil && len(c.Items) > 0
		},
		Data: func(d *types.Document) any {
			if c := find(d); c != nil {
				return c.Items
			}
			return nil
		},
		Render: func(p Props) *render.Node {
			return renderCustom(p, find(p.Doc))
		},
	}
}
