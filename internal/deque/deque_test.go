package deque

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeque_Empty(t *testing.T) {
	req := require.New(t)
	d := New[string]()

	req.True(d.Empty())
	req.Equal(0, d.Len())

	first, ok := d.PeekFirst()
	req.False(ok)
	req.Empty(first)

	first, ok = d.PollFirst()
	req.False(ok)
	req.Empty(first)

	last, ok := d.PeekLast()
	req.False(ok)
	req.Empty(last)

	last, ok = d.PollLast()
	req.False(ok)
	req.Empty(last)

	req.Equal([]string{}, d.Values())
}

func TestDeque_PushBack_PollFirst_IsFifo(t *testing.T) {
	req := require.New(t)
	d := New[int]()

	for i := 1; i <= 5; i++ {
		d.PushBack(i)
	}
	req.Equal(5, d.Len())

	for i := 1; i <= 5; i++ {
		v, ok := d.PollFirst()
		req.True(ok)
		req.Equal(i, v)
	}
	req.True(d.Empty())
}

func TestDeque_PushFront_PutsLatestAhead(t *testing.T) {
	req := require.New(t)
	d := New[string]()

	d.PushBack("b")
	d.PushFront("a1")
	d.PushFront("a2")
	d.PushBack("c")

	req.Equal([]string{"a2", "a1", "b", "c"}, d.Values())

	first, ok := d.PeekFirst()
	req.True(ok)
	req.Equal("a2", first)

	last, ok := d.PeekLast()
	req.True(ok)
	req.Equal("c", last)

	// Peeking does not remove anything
	req.Equal(4, d.Len())
}

func TestDeque_PollLast_IsLifo(t *testing.T) {
	req := require.New(t)
	d := New[string]()

	d.PushBack("x")
	d.PushBack("y")
	d.PushBack("z")

	v, ok := d.PollLast()
	req.True(ok)
	req.Equal("z", v)
	v, ok = d.PollLast()
	req.True(ok)
	req.Equal("y", v)
	req.Equal([]string{"x"}, d.Values())
}

func TestDeque_Values_ReturnsCopy(t *testing.T) {
	req := require.New(t)
	d := New[string]()
	d.PushBack("a")

	values := d.Values()
	values[0] = "mutated"

	first, _ := d.PeekFirst()
	req.Equal("a", first)
}

func TestDeque_Clear(t *testing.T) {
	req := require.New(t)
	d := New[int]()
	d.PushBack(1)
	d.PushFront(0)

	d.Clear()

	req.True(d.Empty())
	d.PushBack(2)
	req.Equal([]int{2}, d.Values())
}

func TestDeque_Poll_ClearsRemovedSlots(t *testing.T) {
	req := require.New(t)
	d := New[*int]()
	first, second, third := 1, 2, 3

	// Given a pointer deque with a spare slot after each poll
	d.PushBack(&first)
	d.PushBack(&second)
	d.PushBack(&third)

	last, ok := d.PollLast()
	req.True(ok)
	req.Equal(&third, last)
	req.Nil(d.items[:3][2])

	head, ok := d.PollFirst()
	req.True(ok)
	req.Equal(&first, head)

	// Then empty polls return the zero value once drained
	_, _ = d.PollFirst()
	empty, ok := d.PollFirst()
	req.False(ok)
	req.Nil(empty)
	empty, ok = d.PollLast()
	req.False(ok)
	req.Nil(empty)
}
