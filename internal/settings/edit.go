package settings

import (
	"fmt"

	"github.com/danielcho/resume-composer/internal/layout"
)

// EditOp identifies one kind of atomic configuration edit.
type EditOp string

// Supported edit operations.
const (
	OpSet      EditOp = "set"       // set one key in the override layer
	OpClear    EditOp = "clear"     // remove one key, falling back through the cascade
	OpDragMove EditOp = "drag_move" // move a section to another section's position
	OpSwapUp   EditOp = "swap_up"   // exchange a section with its predecessor
	OpSwapDown EditOp = "swap_down" // exchange a section with its successor
	OpReset    EditOp = "reset"     // replace the whole override layer with an empty one
)

// EditAction is one discrete edit dispatched from the settings UI. Every
// control constructs an action; nothing mutates shared state directly.
type EditAction struct {
	Op    EditOp `json:"op"`
	Key   string `json:"key,omitempty"`
	Value any    `json:"value,omitempty"`

	// Reorder parameters.
	FromID string `json:"from_id,omitempty"`
	ToID   string `json:"to_id,omitempty"`
	Index  int    `json:"index,omitempty"`
}

// Apply reduces an edit action over the current override layer and returns
// a new layer; the input layer is never mutated. Reorder operations read
// the current effective order from eff and store the resulting permutation
// as an override. OpReset replaces the entire layer in one step.
func Apply(overrides Settings, eff *Effective, action EditAction) (Settings, error) {
	switch action.Op {
	case OpSet:
		if action.Key == "" {
			return nil, fmt.Errorf("set action requires a key")
		}
		next := overrides.Clone()
		next[action.Key] = action.Value
		return next, nil

	case OpClear:
		if action.Key == "" {
			return nil, fmt.Errorf("clear action requires a key")
		}
		next := overrides.Clone()
		delete(next, action.Key)
		return next, nil

	case OpDragMove:
		order := layout.MoveByDrag(eff.SectionOrder(), action.FromID, action.ToID)
		next := overrides.Clone()
		next[KeySectionOrder] = order
		return next, nil

	case OpSwapUp:
		order := layout.SwapAdjacent(eff.SectionOrder(), action.Index, layout.MoveUp)
		next := overrides.Clone()
		next[KeySectionOrder] = order
		return next, nil

	case OpSwapDown:
		order := layout.SwapAdjacent(eff.SectionOrder(), action.Index, layout.MoveDown)
		next := overrides.Clone()
		next[KeySectionOrder] = order
		return next, nil

	case OpReset:
		// Destructive: the caller is responsible for user confirmation.
		return Settings{}, nil

	default:
		return nil, fmt.Errorf("unknown edit op: %q", action.Op)
	}
}
