package chokudai

import "container/heap"

// nodeHeap is a max-heap of search nodes ordered by evaluation score.
// Equal scores resolve to the earlier insertion (stable, reproducible).
type nodeHeap[T ActionLike, E ScoreLike, S GameState[T, E, S]] []*Node[T, E, S]

func (h nodeHeap[T, E, S]) Len() int { return len(h) }

func (h nodeHeap[T, E, S]) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score > h[j].Score
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap[T, E, S]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap[T, E, S]) Push(x any) { *h = append(*h, x.(*Node[T, E, S])) }

func (h *nodeHeap[T, E, S]) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return x
}

// frontier holds the not-yet-expanded nodes of one depth level.
// Unbounded by default; a positive cap turns it into a bounded queue that
// evicts its worst element on overflow. Capping trades the anytime
// "longer budget never hurts" guarantee for bounded memory.
type frontier[T ActionLike, E ScoreLike, S GameState[T, E, S]] struct {
	heap nodeHeap[T, E, S]
	cap  int
}

func (f *frontier[T, E, S]) Len() int {
	return len(f.heap)
}

// Best node without removing it, nil when empty
func (f *frontier[T, E, S]) Peek() *Node[T, E, S] {
	if len(f.heap) == 0 {
		return nil
	}
	return f.heap[0]
}

// Remove and return the best node
func (f *frontier[T, E, S]) PopBest() *Node[T, E, S] {
	return heap.Pop(&f.heap).(*Node[T, E, S])
}

// Insert a node, respecting the cap. Returns false when the queue is full
// and the node does not beat the current worst element.
func (f *frontier[T, E, S]) Insert(n *Node[T, E, S]) bool {
	if f.cap > 0 && len(f.heap) >= f.cap {
		w := f.worst()
		if !f.better(n, f.heap[w]) {
			return false
		}
		heap.Remove(&f.heap, w)
	}
	heap.Push(&f.heap, n)
	return true
}

// Index of the worst element (lowest score, then latest insertion)
func (f *frontier[T, E, S]) worst() int {
	w := 0
	for i := 1; i < len(f.heap); i++ {
		if f.heap.Less(w, i) {
			w = i
		}
	}
	return w
}

func (f *frontier[T, E, S]) better(a, b *Node[T, E, S]) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.seq < b.seq
}
