package sssp

import (
	"container/heap"
	"fmt"

	"github.com/rhartert/yagh"
)

// QueueKind identifies the priority queue used by the priority queue engine.
type QueueKind int8

const (
	// LazyQueue is a binary heap without decrease-key. A new entry is pushed
	// each time the distance of a vertex improves and entries of vertices
	// that are already settled are discarded when popped.
	LazyQueue QueueKind = iota

	// IndexedQueue is an indexed binary heap that holds at most one live
	// entry per vertex. When the distance of a vertex improves, its previous
	// entry is superseded in O(1) and dropped by the queue itself.
	IndexedQueue
)

func (k QueueKind) String() string {
	switch k {
	case LazyQueue:
		return "lazy"
	case IndexedQueue:
		return "indexed"
	default:
		return fmt.Sprintf("QueueKind(%d)", int8(k))
	}
}

// ParseQueueKind returns the queue kind with the given name ("lazy" or
// "indexed").
func ParseQueueKind(name string) (QueueKind, error) {
	switch name {
	case "lazy":
		return LazyQueue, nil
	case "indexed":
		return IndexedQueue, nil
	default:
		return 0, fmt.Errorf("unknown queue kind %q", name)
	}
}

// PriorityQueue computes the shortest paths from vertex src to all the
// vertices of g using a lazy-deletion binary heap. It runs in O((V+E) log V).
func PriorityQueue(g *Graph, src int) (*Result, error) {
	return PriorityQueueWith(g, src, LazyQueue)
}

// PriorityQueueWith is like PriorityQueue but lets the caller choose the kind
// of priority queue. All kinds return identical results.
func PriorityQueueWith(g *Graph, src int, kind QueueKind) (*Result, error) {
	s, err := newSearch(g, src)
	if err != nil {
		return nil, err
	}

	var q queue
	switch kind {
	case LazyQueue:
		q = newLazyQueue(g.NumNodes())
	case IndexedQueue:
		q = newIndexedQueue(g.NumNodes(), g.NumEdges()+1)
	default:
		return nil, fmt.Errorf("unknown queue kind %d", kind)
	}

	s.priorityQueue(q)
	return s.res, nil
}

func (s *search) priorityQueue(q queue) {
	q.push(s.res.Source, 0)
	for q.len() > 0 {
		u, _ := q.pop()
		if s.settled.Contains(u) {
			continue // stale entry
		}
		s.settle(u, q.push)
	}
}

// queue is a min-priority-queue of vertices keyed by (distance, vertex id).
type queue interface {
	push(node int, dist float64)
	pop() (int, float64)
	len() int
}

type queueEntry struct {
	node int
	dist float64
}

// entryHeap implements heap.Interface.
type entryHeap []queueEntry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}
	return h[i].node < h[j].node
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) { *h = append(*h, x.(queueEntry)) }

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

type lazyQueue struct {
	h entryHeap
}

func newLazyQueue(capacity int) *lazyQueue {
	return &lazyQueue{h: make(entryHeap, 0, capacity)}
}

func (q *lazyQueue) push(node int, dist float64) {
	heap.Push(&q.h, queueEntry{node: node, dist: dist})
}

func (q *lazyQueue) pop() (int, float64) {
	e := heap.Pop(&q.h).(queueEntry)
	return e.node, e.dist
}

func (q *lazyQueue) len() int {
	return q.h.Len()
}

// indexedQueue keeps at most one live heap entry per vertex.
//
// The yagh heap does not clear the position of an element when it is popped,
// so an element id is never put twice: every push gets a fresh entry id and
// the previous entry of the vertex, if any, is marked as superseded. Entries
// are ordered by distance only. Pop moves all the live entries with the
// minimum distance to the ties buffer, which serves them by increasing id.
type indexedQueue struct {
	h *yagh.IntMap[float64] // keyed by entry id

	entryNode []int // vertex of each entry, -1 once superseded
	live      []int // live heap entry of each vertex, -1 if none
	nLive     int

	ties    idHeap
	tieDist float64
}

// newIndexedQueue returns a queue for vertices in [0, nNodes) that accepts up
// to maxPushes calls to push. A search pushes at most once per relaxation
// plus once for the source.
func newIndexedQueue(nNodes int, maxPushes int) *indexedQueue {
	live := make([]int, nNodes)
	for v := range live {
		live[v] = -1
	}
	return &indexedQueue{
		h:         yagh.New[float64](maxPushes),
		entryNode: make([]int, 0, maxPushes),
		live:      live,
	}
}

// push must not be called with a distance lower than the last popped one.
func (q *indexedQueue) push(node int, dist float64) {
	if e := q.live[node]; e >= 0 {
		q.entryNode[e] = -1
		q.live[node] = -1
		q.nLive--
	}
	if len(q.ties) > 0 && dist == q.tieDist {
		heap.Push(&q.ties, node)
		return
	}
	e := len(q.entryNode)
	q.entryNode = append(q.entryNode, node)
	q.live[node] = e
	q.nLive++
	q.h.Put(e, dist)
}

func (q *indexedQueue) pop() (int, float64) {
	if len(q.ties) == 0 {
		q.fillTies()
	}
	return heap.Pop(&q.ties).(int), q.tieDist
}

// fillTies pops the live entries with the minimum distance into the ties
// buffer and drops the superseded entries found on the way.
func (q *indexedQueue) fillTies() {
	for q.h.Size() > 0 {
		if len(q.ties) > 0 && q.h.Min().Cost != q.tieDist {
			return
		}
		e := q.h.Pop()
		node := q.entryNode[e.Elem]
		if node < 0 {
			continue // superseded
		}
		q.live[node] = -1
		q.nLive--
		q.tieDist = e.Cost
		heap.Push(&q.ties, node)
	}
}

func (q *indexedQueue) len() int {
	return q.nLive + len(q.ties)
}

// idHeap implements heap.Interface over vertex ids.
type idHeap []int

func (h idHeap) Len() int           { return len(h) }
func (h idHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h idHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *idHeap) Push(x any) { *h = append(*h, x.(int)) }

func (h *idHeap) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}
