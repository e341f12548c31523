package search

import (
	"container/heap"
	"fmt"
)

// Strategy selects the frontier discipline backing a search run.
type Strategy int

const (
	// BFS pops in strict FIFO order: shortest guess count first.
	BFS Strategy = iota
	// DFS pops in LIFO order: one branch to the depth limit, then backtrack.
	DFS
	// UCS pops the lowest accumulated cost first.
	UCS
	// AStar pops the lowest cost-plus-heuristic first.
	AStar
)

// ParseStrategy resolves a strategy by name (bfs, dfs, ucs, astar).
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "ucs":
		return UCS, nil
	case "astar":
		return AStar, nil
	}
	return 0, fmt.Errorf("search: unknown strategy %q (available: bfs, dfs, ucs, astar)", name)
}

func (s Strategy) String() string {
	switch s {
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	case UCS:
		return "ucs"
	case AStar:
		return "astar"
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// frontier holds not-yet-expanded nodes. Push records a priority that only
// the heap-backed implementation consults; FIFO and LIFO frontiers order
// purely by insertion.
type frontier interface {
	push(n *node, priority float64)
	pop() *node
	size() int
	empty() bool
}

func (s Strategy) newFrontier() frontier {
	switch s {
	case DFS:
		return &lifoFrontier{}
	case UCS, AStar:
		return &heapFrontier{}
	default:
		return &fifoFrontier{}
	}
}

type fifoFrontier struct {
	nodes []*node
}

func (f *fifoFrontier) push(n *node, _ float64) { f.nodes = append(f.nodes, n) }

func (f *fifoFrontier) pop() *node {
	n := f.nodes[0]
	f.nodes[0] = nil
	f.nodes = f.nodes[1:]
	return n
}

func (f *fifoFrontier) size() int   { return len(f.nodes) }
func (f *fifoFrontier) empty() bool { return len(f.nodes) == 0 }

type lifoFrontier struct {
	nodes []*node
}

func (f *lifoFrontier) push(n *node, _ float64) { f.nodes = append(f.nodes, n) }

func (f *lifoFrontier) pop() *node {
	last := len(f.nodes) - 1
	n := f.nodes[last]
	f.nodes[last] = nil
	f.nodes = f.nodes[:last]
	return n
}

func (f *lifoFrontier) size() int   { return len(f.nodes) }
func (f *lifoFrontier) empty() bool { return len(f.nodes) == 0 }

// heapFrontier orders by priority, breaking ties by insertion sequence so
// equal-priority pops are deterministic across runs.
type heapFrontier struct {
	items heapItems
	seq   int
}

type heapItem struct {
	node     *node
	priority float64
	seq      int
}

type heapItems []heapItem

func (h heapItems) Len() int { return len(h) }
func (h heapItems) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}
func (h heapItems) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *heapItems) Push(x any) { *h = append(*h, x.(heapItem)) }

func (h *heapItems) Pop() any {
	old := *h
	last := len(old) - 1
	item := old[last]
	old[last] = heapItem{}
	*h = old[:last]
	return item
}

func (f *heapFrontier) push(n *node, priority float64) {
	heap.Push(&f.items, heapItem{node: n, priority: priority, seq: f.seq})
	f.seq++
}

func (f *heapFrontier) pop() *node {
	return heap.Pop(&f.items).(heapItem).node
}

func (f *heapFrontier) size() int   { return len(f.items) }
func (f *heapFrontier) empty() bool { return len(f.items) == 0 }
