package input

import "sync"

// Queue buffers events produced by device callbacks until the frame tick
// drains them. Append may be called from any goroutine.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Append adds evt to the tail of the queue.
func (q *Queue) Append(evt Event) {
	q.mu.Lock()
	q.events = append(q.events, evt)
	q.mu.Unlock()
}

// Drain removes and returns every queued event in arrival order. The buffer
// is swapped out under the lock so producers are never held for longer than
// a slice header assignment.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	batch := q.events
	q.events = nil
	q.mu.Unlock()
	return batch
}

// Len returns the number of events waiting for the next drain.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
