package event

// Event is an opaque user-input occurrence such as "MouseClick".
type Event string
