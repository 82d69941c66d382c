// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/danielcho/resume-composer/internal/layout"
	"github.com/danielcho/resume-composer/internal/render"
	"github.com/danielcho/resume-composer/internal/settings"
	"github.com/danielcho/resume-composer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocument outputs a human-readable summary of the loaded document.
func (p *Printer) PrintDocument(doc *types.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", doc.Basics.Name))
	if doc.Basics.Label != "" {
		sb.WriteString(fmt.Sprintf("Label:    %s\n", doc.Basics.Label))
	}
	if doc.Basics.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", doc.Basics.Email))
	}
	sb.WriteString("\n")

	counts := []struct {
		label string
		n     int
	}{
		{"work", len(doc.Work)},
		{"education", len(doc.Education)},
		{"skills", len(doc.Skills)},
		{"projects", len(doc.Projects)},
		{"certificates", len(doc.Certificates)},
		{"languages", len(doc.Languages)},
		{"interests", len(doc.Interests)},
		{"publications", len(doc.Publications)},
		{"awards", len(doc.Awards)},
		{"references", len(doc.References)},
		{"custom", len(doc.Custom)},
	}

	sb.WriteString("Sections with data:\n")
	for _, c := range counts {
		if c.n > 0 {
			sb.WriteString(fmt.Sprintf("  • %-14s %d\n", c.label, c.n))
		}
	}

	p.printBox("DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintOverrides outputs the override layer keys, truncated to the first
// few entries.
func (p *Printer) PrintOverrides(overrides settings.Settings) {
	if len(overrides) == 0 {
		return
	}

	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Keys overridden: %d\n\n", len(keys)))

	count := min(len(keys), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s = %v\n", keys[i], overrides[keys[i]]))
	}
	if len(keys) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(keys)-maxItemsToShow))
	}

	p.printBox("SETTINGS OVERRIDES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDistribution outputs the resolved column assignment.
func (p *Printer) PrintDistribution(columns [][]string) {
	if len(columns) == 0 {
		return
	}

	var sb strings.Builder
	for i, col := range columns {
		sb.WriteString(fmt.Sprintf("Column %d (%d sections):\n", i+1, len(col)))
		for j, id := range col {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", j+1, id))
		}
		if i < len(columns)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("COLUMN DISTRIBUTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMembership outputs the template's column membership sets.
func (p *Printer) PrintMembership(m layout.Membership) {
	var sb strings.Builder
	writeSet := func(label string, set map[string]bool) {
		if len(set) == 0 {
			return
		}
		ids := make([]string, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
		sb.WriteString(fmt.Sprintf("%-6s %s\n", label+":", strings.Join(ids, ", ")))
	}
	writeSet("Left", m.Left)
	writeSet("Main", m.Main)
	writeSet("Right", m.Right)

	if sb.Len() == 0 {
		return
	}
	p.printBox("TEMPLATE MEMBERSHIP", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTree outputs a compact outline of the render tree.
func (p *Printer) PrintTree(root *render.Node) {
	if root == nil {
		return
	}

	var sb strings.Builder
	writeNode(&sb, root, 0)

	content := strings.TrimSuffix(sb.String(), "\n")
	lines := strings.Split(content, "\n")
	if len(lines) > 3*maxItemsToShow {
		lines = append(lines[:3*maxItemsToShow], fmt.Sprintf("... and %d more nodes", len(lines)-3*maxItemsToShow))
	}

	p.printBox("RENDER TREE", strings.Join(lines, "\n"))
}

func writeNode(sb *strings.Builder, n *render.Node, depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	label := string(n.Kind)
	if n.Class != "" {
		label += "." + strings.Fields(n.Class)[0]
	}
	sb.WriteString(fmt.Sprintf("%s%s\n", indent, label))
	for _, child := range n.Children {
		writeNode(sb, child, depth+1)
	}
}
