// Package style implements the pure visual primitives of the composition
// engine: list markers, section heading decorations, entry header layouts,
// proficiency indicators, and photo geometry.
package style

import (
	"strconv"
	"strings"
)

// ListStyle is the marker convention for a list of strings.
type ListStyle string

// List styles.
const (
	ListBullet ListStyle = "bullet"
	ListNumber ListStyle = "number"
	ListDash   ListStyle = "dash"
	ListNone   ListStyle = "none"
	ListInline ListStyle = "inline"
)

// InlineSeparator joins items when the inline list style is active.
const InlineSeparator = ", "

// ParseListStyle maps a stored list style value to a ListStyle, failing
// closed to bullet for unrecognized input.
func ParseListStyle(s string) ListStyle {
	switch ListStyle(s) {
	case ListBullet, ListNumber, ListDash, ListNone, ListInline:
		return ListStyle(s)
	default:
		return ListBullet
	}
}

// Marker returns the literal marker text for the item at index. The inline
// style produces no per-item marker at all: it is a distinct rendering mode
// where items are joined into one run of text (see JoinInline).
func Marker(style ListStyle, index int) string {
	switch style {
	case ListBullet:
		return "•"
	case ListNumber:
		return strconv.Itoa(index+1) + "."
	case ListDash:
		return "-"
	default:
		return ""
	}
}

// JoinInline joins list items into a single run of text for the inline
// style, skipping empty items so no doubled separators appear.
func JoinInline(items []string) string {
	kept := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			kept = append(kept, item)
		}
	}
	return strings.Join(kept, InlineSeparator)
}
