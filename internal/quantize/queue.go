package quantize

import (
	"container/heap"
)

// boxQueue is a max-heap of boxes ordered by volume, oldest first on ties.
// A box is never mutated while it is in the queue.
type boxQueue []*box

func (q boxQueue) Len() int { return len(q) }

func (q boxQueue) Less(i, j int) bool {
	vi, vj := q[i].volume(), q[j].volume()
	if vi != vj {
		return vi > vj
	}
	return q[i].seq < q[j].seq
}

func (q boxQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *boxQueue) Push(x any) { *q = append(*q, x.(*box)) }

func (q *boxQueue) Pop() any {
	old := *q
	n := len(old)
	b := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return b
}

func (q *boxQueue) push(b *box) { heap.Push(q, b) }

func (q *boxQueue) pop() *box { return heap.Pop(q).(*box) }
