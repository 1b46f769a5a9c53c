package command

import "github.com/atomicstack/popup-shell/internal/logging/events"

// Entry is a queued command with its destination.
type Entry struct {
	Target  Target
	Command Command
}

// Queue is an unbounded FIFO of commands awaiting dispatch. It is owned by
// the application state and only touched from the event loop.
type Queue struct {
	items []Entry
	head  int
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends a command to the back of the queue.
func (q *Queue) Push(target Target, cmd Command) {
	events.Command.Queue(target.String(), cmd.Selector.String())
	q.items = append(q.items, Entry{Target: target, Command: cmd})
}

// Pop removes and returns the front entry. ok is false when the queue is empty.
func (q *Queue) Pop() (Entry, bool) {
	if q.head >= len(q.items) {
		return Entry{}, false
	}
	entry := q.items[q.head]
	q.items[q.head] = Entry{}
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return entry, true
}

// Len returns the number of queued entries.
func (q *Queue) Len() int {
	return len(q.items) - q.head
}

// Empty reports whether nothing is queued.
func (q *Queue) Empty() bool {
	return q.Len() == 0
}
