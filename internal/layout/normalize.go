package layout

// NormalizeOrder repairs a stored section order against the full id set for
// the document. Duplicates keep their first occurrence, ids missing from
// the stored order are appended at the end in their canonical order, and
// unknown ids are kept in place (the distributor later treats them as
// orphans). The result always contains every id in full exactly once.
func NormalizeOrder(order, full []string) []string {
	seen := make(map[string]bool, len(order))
	out := make([]string, 0, len(full))
	for _, id := range order {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	for _, id := range full {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
