// Package layout partitions an ordered section list into template columns
// and reorders it in response to user actions. Every operation returns a
// permutation of its input: ids are never added, dropped, or duplicated.
package layout

// Direction selects which neighbour SwapAdjacent exchanges with.
type Direction int

// Swap directions.
const (
	MoveUp Direction = iota
	MoveDown
)

// MoveByDrag removes fromID and reinserts it at toID's position, shifting
// the ids between them by one. It is a no-op when fromID equals toID or
// when either id is absent from the order.
func MoveByDrag(order []string, fromID, toID string) []string {
	out := append([]string(nil), order...)
	if fromID == toID {
		return out
	}

	from, to := -1, -1
	for i, id := range order {
		switch id {
		case fromID:
			from = i
		case toID:
			to = i
		}
	}
	if from < 0 || to < 0 {
		return out
	}

	moved := out[from]
	out = append(out[:from], out[from+1:]...)

	// The moved id takes the target's original index, in both directions.
	insert := to
	if insert > len(out) {
		insert = len(out)
	}

	out = append(out, "")
	copy(out[insert+1:], out[insert:])
	out[insert] = moved
	return out
}

// SwapAdjacent exchanges order[index] with its neighbour in the given
// direction. At the boundary (moving the first element up or the last
// element down) it is a safe no-op; callers are expected to disable those
// actions, but the controller never panics.
func SwapAdjacent(order []string, index int, dir Direction) []string {
	out := append([]string(nil), order...)
	if index < 0 || index >= len(out) {
		return out
	}

	other := index - 1
	if dir == MoveDown {
		other = index + 1
	}
	if other < 0 || other >= len(out) {
		return out
	}

	out[index], out[other] = out[other], out[index]
	return out
}
