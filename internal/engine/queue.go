package engine

import (
	"container/heap"

	"github.com/RomanSafe/static-code-analyser/internal/lint"
)

// pendingQueue orders buffered structural findings by line, insertion
// order breaking ties, so they can be drained between line checks.
type pendingQueue struct {
	items []pendingItem
	seq   int
}

type pendingItem struct {
	d   lint.Diagnostic
	seq int
}

func (q *pendingQueue) Len() int { return len(q.items) }

func (q *pendingQueue) Less(i, j int) bool {
	if q.items[i].d.Line != q.items[j].d.Line {
		return q.items[i].d.Line < q.items[j].d.Line
	}
	return q.items[i].seq < q.items[j].seq
}

func (q *pendingQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *pendingQueue) Push(x any) { q.items = append(q.items, x.(pendingItem)) }

func (q *pendingQueue) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]
	return item
}

func (q *pendingQueue) add(d lint.Diagnostic) {
	heap.Push(q, pendingItem{d: d, seq: q.seq})
	q.seq++
}

// headLine returns the line of the earliest pending finding. The second
// return is false when the queue is empty.
func (q *pendingQueue) headLine() (int, bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	return q.items[0].d.Line, true
}

func (q *pendingQueue) take() lint.Diagnostic {
	return heap.Pop(q).(pendingItem).d
}
