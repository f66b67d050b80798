// Package deque provides a small slice-backed double-ended container.
// It is not safe for concurrent use.
package deque

type Deque[T any] struct {
	items []T
}

func New[T any]() *Deque[T] {
	return &Deque[T]{items: nil}
}

func (d *Deque[T]) PushBack(item T) {
	d.items = append(d.items, item)
}

// PushFront places item ahead of everything already queued.
func (d *Deque[T]) PushFront(item T) {
	var zero T
	d.items = append(d.items, zero)
	copy(d.items[1:], d.items[:len(d.items)-1])
	d.items[0] = item
}

func (d *Deque[T]) PeekFirst() (T, bool) {
	if d.Empty() {
		var zero T
		return zero, false
	}
	return d.items[0], true
}

func (d *Deque[T]) PollFirst() (T, bool) {
	var zero T
	if d.Empty() {
		return zero, false
	}
	item := d.items[0]
	// Zero the slot so the backing array does not keep the value alive
	d.items[0] = zero
	d.items = d.items[1:]
	if len(d.items) == 0 {
		d.items = nil
	}
	return item, true
}

func (d *Deque[T]) PeekLast() (T, bool) {
	if d.Empty() {
		var zero T
		return zero, false
	}
	return d.items[len(d.items)-1], true
}

func (d *Deque[T]) PollLast() (T, bool) {
	var zero T
	if d.Empty() {
		return zero, false
	}
	last := len(d.items) - 1
	item := d.items[last]
	d.items[last] = zero
	d.items = d.items[:last]
	return item, true
}

func (d *Deque[T]) Len() int {
	return len(d.items)
}

func (d *Deque[T]) Empty() bool {
	return len(d.items) == 0
}

// Values returns a copy of the content, front to back.
func (d *Deque[T]) Values() []T {
	if d.Empty() {
		return []T{}
	}
	values := make([]T, len(d.items))
	copy(values, d.items)
	return values
}

func (d *Deque[T]) Clear() {
	clear(d.items)
	d.items = nil
}
