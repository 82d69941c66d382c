// Package theme resolves the document accent color against the set of
// enabled color targets.
package theme

// Color target labels. A target is a named hook point that can be bound to
// the document's single accent color.
const (
	TargetName        = "name"
	TargetTitle       = "title"
	TargetHeadings    = "headings"
	TargetLinks       = "links"
	TargetIcons       = "icons"
	TargetDecorations = "decorations"
	TargetText        = "text"
	TargetMeta        = "meta"
	TargetSubtext     = "subtext"
)

// Resolver answers color lookups for one effective configuration. It is
// immutable, so renderers can call it any number of times and always get
// the same answer for the same inputs.
type Resolver struct {
	accent  string
	targets map[string]bool
}

// NewResolver builds a resolver for the given accent color and enabled
// target labels. Unknown labels are carried as-is; they simply never match
// a renderer's lookup.
func NewResolver(accent string, targets []string) *Resolver {
	enabled := make(map[string]bool, len(targets))
	for _, t := range targets {
		enabled[t] = true
	}
	return &Resolver{accent: accent, targets: enabled}
}

// Color returns the accent color when target is enabled, else fallback.
// Unknown targets behave as not enabled.
func (r *Resolver) Color(target, fallback string) string {
	if r.targets[target] {
		return r.accent
	}
	return fallback
}

// Accent returns the configured accent color.
func (r *Resolver) Accent() string {
	return r.accent
}
