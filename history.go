package px

// DefaultHistoryDepth is the checkpoint cap used when no depth is
// configured.
const DefaultHistoryDepth = 64

// History keeps undo/redo checkpoints as encoded buffer snapshots (the
// same text format the codec produces), pushed once per committed gesture.
// The oldest checkpoints fall off when the cap is exceeded; any new push
// clears the redo side.
type History struct {
	past   []string
	future []string
	limit  int
}

// NewHistory creates a history with the given checkpoint cap.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryDepth
	}
	return &History{limit: limit}
}

// Push records the state that preceded a committed modification.
func (h *History) Push(snapshot string) {
	h.future = h.future[:0]
	h.past = append(h.past, snapshot)
	if len(h.past) > h.limit {
		copy(h.past, h.past[len(h.past)-h.limit:])
		h.past = h.past[:h.limit]
	}
}

// Undo exchanges the current state for the most recent checkpoint. The
// second return value is false when there is nothing to undo.
func (h *History) Undo(current string) (string, bool) {
	if len(h.past) == 0 {
		return "", false
	}
	s := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append(h.future, current)
	return s, true
}

// Redo reverses the most recent Undo.
func (h *History) Redo(current string) (string, bool) {
	if len(h.future) == 0 {
		return "", false
	}
	s := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	h.past = append(h.past, current)
	return s, true
}

// CanUndo reports whether an undo checkpoint is available.
func (h *History) CanUndo() bool { return len(h.past) > 0 }

// CanRedo reports whether a redo checkpoint is available.
func (h *History) CanRedo() bool { return len(h.future) > 0 }
