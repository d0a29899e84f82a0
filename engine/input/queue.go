package input

import "sync"

// Queue buffers raw events between frames. Host callbacks push from any goroutine;
// the frame step drains once per tick so input is sampled at frame boundaries.
type Queue struct {
	mu     sync.Mutex
	events []Event
	limit  int
}

// NewQueue creates an event queue. When limit is positive and the queue is full,
// the oldest pending pointer or touch move is dropped to make room; press,
// release and orientation events are never dropped.
//
// Parameters:
//   - limit: maximum pending events (0 = unbounded)
//
// Returns:
//   - *Queue: the newly created queue
func NewQueue(limit int) *Queue {
	return &Queue{limit: limit}
}

// Push appends an event. It never blocks on the consumer.
//
// Parameters:
//   - ev: the event to enqueue
func (q *Queue) Push(ev Event) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.limit > 0 && len(q.events) >= q.limit {
		q.dropOldestMove()
	}
	q.events = append(q.events, ev)
}

// Drain removes and returns all pending events in arrival order.
//
// Returns:
//   - []Event: the pending events, or nil if none
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// DrainInto folds every pending event, in order, through the normalizer and
// returns the resulting state and press flag.
//
// Parameters:
//   - n: the normalizer to apply events to
//   - viewportWidth: viewport width in pixels
//   - viewportHeight: viewport height in pixels
//
// Returns:
//   - PointerState: the state after the last pending event
//   - bool: whether a press is active after the last pending event
func (q *Queue) DrainInto(n Normalizer, viewportWidth, viewportHeight float32) (PointerState, bool) {
	for _, ev := range q.Drain() {
		n.Apply(ev, viewportWidth, viewportHeight)
	}
	return n.State(), n.IsDown()
}

// dropOldestMove removes the oldest move event. Caller must hold the mutex.
// Moves are overwritten by later moves anyway; the delta is taken from the
// last two positions seen, so an older move only shifts which pair that is.
func (q *Queue) dropOldestMove() {
	for i, ev := range q.events {
		if ev.Kind == EventPointerMove || ev.Kind == EventTouchMove {
			q.events = append(q.events[:i], q.events[i+1:]...)
			return
		}
	}
}
