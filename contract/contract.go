//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"audio-lab/domain/event"
	"audio-lab/domain/history"
)

type EventQueue interface {
	Enqueue(e event.Event)
	EnqueuePriority(e event.Event)
	DrainAll() ([]event.Event, bool)
	Len() int
}

type ActionHistory interface {
	Record(a history.Action)
	UndoLast() (history.Action, bool)
	Snapshot() []history.Action
	Len() int
}

// Presenter turns operation outcomes into something a user can read.
// Components never print; they return values and the caller forwards them here.
type Presenter interface {
	VolumePresets(presets []int) error
	EventProcessed(e event.Event) error
	NoEvents() error
	ActionUndone(a history.Action) error
	NoActions() error
	History(actions []history.Action) error
}
