// Implements the WaitQueue, which holds the processes blocked on a station.

package sim

import (
	"fmt"
	"strings"
)

// waiter is the resumption handle of a process blocked on a ResourcePool.
// It is owned by the pool while queued and handed to the scheduler as a
// Grant event once a slot frees up.
type waiter struct {
	owner       string
	requestedAt float64
	resume      func()
}

// WaitQueue is a strict FIFO of waiters. There is no priority and no
// reordering: the head is always the earliest request still waiting.
type WaitQueue struct {
	queue []*waiter
}

// Enqueue adds a waiter to the back of the queue.
func (wq *WaitQueue) Enqueue(w *waiter) {
	if w == nil || w.resume == nil {
		panic(invariantf("enqueue", "waiter and its continuation must not be nil"))
	}
	wq.queue = append(wq.queue, w)
}

// Len returns the number of queued waiters.
func (wq *WaitQueue) Len() int {
	return len(wq.queue)
}

// Peek returns the head without removing it, or nil when empty.
func (wq *WaitQueue) Peek() *waiter {
	if len(wq.queue) == 0 {
		return nil
	}
	return wq.queue[0]
}

// Dequeue removes and returns the head, or nil when empty.
func (wq *WaitQueue) Dequeue() *waiter {
	if len(wq.queue) == 0 {
		return nil
	}
	head := wq.queue[0]
	wq.queue[0] = nil
	wq.queue = wq.queue[1:]
	return head
}

// Owners returns the queued owner IDs, head first.
func (wq *WaitQueue) Owners() []string {
	ids := make([]string, len(wq.queue))
	for i, w := range wq.queue {
		ids[i] = w.owner
	}
	return ids
}

func (wq *WaitQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, w := range wq.queue {
		sb.WriteString(fmt.Sprintf("%s@%.2f", w.owner, w.requestedAt))
		if i < len(wq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
