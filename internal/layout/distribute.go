package layout

// Membership holds the per-template static column membership sets. Sets are
// expected to be disjoint; when they are not, column precedence (left, then
// main, then right) breaks the tie.
type Membership struct {
	Left  map[string]bool
	Main  map[string]bool
	Right map[string]bool
}

// Distribute partitions the ordered section ids into columnCount columns.
//
// With one column the order passes through unchanged. With two or three,
// each id is tested against the membership sets in precedence order and
// placed in the first column that claims it. Ids claimed by no set are
// orphans: they are appended to the right-most (main) column after its
// members, preserving their relative order, so no content is ever dropped.
// Within every column the relative order of its members equals their
// relative order in the input (stable partition).
func Distribute(order []string, columnCount int, m Membership) [][]string {
	if columnCount <= 1 {
		return [][]string{append([]string(nil), order...)}
	}
	if columnCount > 3 {
		columnCount = 3
	}

	sets := []map[string]bool{m.Left, m.Main}
	if columnCount == 3 {
		sets = append(sets, m.Right)
	}

	columns := make([][]string, columnCount)
	for i := range columns {
		columns[i] = []string{}
	}

	var orphans []string
	for _, id := range order {
		placed := false
		for col, set := range sets {
			if set != nil && set[id] {
				columns[col] = append(columns[col], id)
				placed = true
				break
			}
		}
		if !placed {
			orphans = append(orphans, id)
		}
	}

	last := columnCount - 1
	columns[last] = append(columns[last], orphans...)
	return columns
}
