package event

import (
	"audio-lab/internal/deque"
	"iter"
	"slices"
)

// Queue holds pending user-input events.
// Priority events go to the head, regular events to the tail, and draining
// always starts from the head. Consecutive priority events are therefore
// LIFO among themselves while regular events stay FIFO.
// A Queue is owned by a single caller and is not safe for concurrent use.
type Queue struct {
	events *deque.Deque[Event]
}

func NewQueue() *Queue {
	return &Queue{
		events: deque.New[Event](),
	}
}

func (q *Queue) Enqueue(e Event) {
	q.events.PushBack(e)
}

func (q *Queue) EnqueuePriority(e Event) {
	q.events.PushFront(e)
}

// Drain yields events head to tail, removing each one as it is produced.
// If the consumer stops early, the event just yielded is already gone and
// the remaining ones stay queued.
func (q *Queue) Drain() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for {
			e, ok := q.events.PollFirst()
			if !ok || !yield(e) {
				return
			}
		}
	}
}

// DrainAll empties the queue and returns its content head to tail.
// It returns false, and leaves the queue untouched, when there was nothing to drain.
func (q *Queue) DrainAll() ([]Event, bool) {
	if q.events.Empty() {
		return nil, false
	}
	return slices.Collect(q.Drain()), true
}

func (q *Queue) Snapshot() []Event {
	return q.events.Values()
}

func (q *Queue) Clear() {
	q.events.Clear()
}

func (q *Queue) Len() int {
	return q.events.Len()
}

func (q *Queue) Empty() bool {
	return q.events.Empty()
}
