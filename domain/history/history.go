// Package history keeps a linear, single-level undo log of audio actions.
package history

import "audio-lab/internal/deque"

// Action is an audio-control operation such as "Volume Up" or "Mute".
type Action string

// History is append-only except for UndoLast, which always removes the most
// recently recorded action still present.
// It is not safe for concurrent use.
type History struct {
	actions *deque.Deque[Action]
}

func NewHistory() *History {
	return &History{
		actions: deque.New[Action](),
	}
}

func (h *History) Record(a Action) {
	h.actions.PushBack(a)
}

// UndoLast removes and returns the latest action.
// On an empty history it returns false and changes nothing, so it is always safe to call.
func (h *History) UndoLast() (Action, bool) {
	return h.actions.PollLast()
}

// Snapshot lists the actions from oldest to most recent.
func (h *History) Snapshot() []Action {
	return h.actions.Values()
}

func (h *History) Len() int {
	return h.actions.Len()
}

func (h *History) Empty() bool {
	return h.actions.Empty()
}
