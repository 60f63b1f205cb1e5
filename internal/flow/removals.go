package flow

import (
	"container/heap"
	"time"
)

// removal is a one-shot detach scheduled for a comment
type removal struct {
	at     time.Time
	handle Handle
	seq    uint64
}

// removalQueue is a min-heap of removals ordered by deadline, then by
// insertion order for equal deadlines.
type removalQueue []removal

func (q removalQueue) Len() int { return len(q) }

func (q removalQueue) Less(i, j int) bool {
	if q[i].at.Equal(q[j].at) {
		return q[i].seq < q[j].seq
	}
	return q[i].at.Before(q[j].at)
}

func (q removalQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *removalQueue) Push(x any) { *q = append(*q, x.(removal)) }

func (q *removalQueue) Pop() any {
	old := *q
	n := len(old)
	r := old[n-1]
	*q = old[:n-1]
	return r
}

// schedule queues a removal
func (q *removalQueue) schedule(r removal) {
	heap.Push(q, r)
}

// popDue removes and returns every removal due at or before now
func (q *removalQueue) popDue(now time.Time) []removal {
	var due []removal
	for q.Len() > 0 && !(*q)[0].at.After(now) {
		due = append(due, heap.Pop(q).(removal))
	}
	return due
}
