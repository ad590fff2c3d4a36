package search

import "container/heap"

// Frontier holds node indices awaiting expansion.
//
// Stack and queue frontiers ignore the priority argument of Add.
type Frontier interface {
	// Add inserts a node index with the given priority.
	Add(id int, priority float64)
	// Pop removes and returns the next index, or ErrEmptyFrontier.
	Pop() (int, error)
	// Len returns the number of pending entries.
	Len() int
	// IsEmpty reports whether no entry remains.
	IsEmpty() bool
}

// StackFrontier is a LIFO frontier used by DFS.
type StackFrontier struct {
	items []int
}

// NewStackFrontier returns an empty LIFO frontier.
func NewStackFrontier() *StackFrontier { return &StackFrontier{} }

// Add pushes id on top of the stack.
func (f *StackFrontier) Add(id int, _ float64) { f.items = append(f.items, id) }

// Pop removes the most recently added id.
func (f *StackFrontier) Pop() (int, error) {
	n := len(f.items)
	if n == 0 {
		return -1, ErrEmptyFrontier
	}
	id := f.items[n-1]
	f.items = f.items[:n-1]
	return id, nil
}

// Len returns the number of pending ids.
func (f *StackFrontier) Len() int { return len(f.items) }

// IsEmpty reports whether the stack is empty.
func (f *StackFrontier) IsEmpty() bool { return len(f.items) == 0 }

// QueueFrontier is a FIFO frontier used by BFS.
type QueueFrontier struct {
	items []int
	head  int
}

// NewQueueFrontier returns an empty FIFO frontier.
func NewQueueFrontier() *QueueFrontier { return &QueueFrontier{} }

// Add appends id to the tail of the queue.
func (f *QueueFrontier) Add(id int, _ float64) { f.items = append(f.items, id) }

// Pop removes the oldest id.
func (f *QueueFrontier) Pop() (int, error) {
	if f.head == len(f.items) {
		return -1, ErrEmptyFrontier
	}
	id := f.items[f.head]
	f.head++
	// reclaim the consumed prefix once it dominates the backing array
	if f.head > 64 && f.head*2 >= len(f.items) {
		f.items = append(f.items[:0], f.items[f.head:]...)
		f.head = 0
	}
	return id, nil
}

// Len returns the number of pending ids.
func (f *QueueFrontier) Len() int { return len(f.items) - f.head }

// IsEmpty reports whether the queue is empty.
func (f *QueueFrontier) IsEmpty() bool { return f.Len() == 0 }

// PriorityFrontier is a min-priority frontier used by UCS and AStar.
// Equal priorities pop in insertion order.
type PriorityFrontier struct {
	pq  entryPQ
	seq uint64
}

// NewPriorityFrontier returns an empty min-priority frontier.
func NewPriorityFrontier() *PriorityFrontier { return &PriorityFrontier{} }

// Add inserts id with the given priority.
func (f *PriorityFrontier) Add(id int, priority float64) {
	heap.Push(&f.pq, entry{id: id, priority: priority, seq: f.seq})
	f.seq++
}

// Pop removes the id with the lowest priority.
func (f *PriorityFrontier) Pop() (int, error) {
	if f.pq.Len() == 0 {
		return -1, ErrEmptyFrontier
	}
	return heap.Pop(&f.pq).(entry).id, nil
}

// Len returns the number of pending ids, stale duplicates included.
func (f *PriorityFrontier) Len() int { return f.pq.Len() }

// IsEmpty reports whether the heap is empty.
func (f *PriorityFrontier) IsEmpty() bool { return f.pq.Len() == 0 }

// entry is one heap slot: a node index, its priority and its insertion number.
type entry struct {
	id       int
	priority float64
	seq      uint64
}

// entryPQ is a min-heap ordered by priority, then by insertion number.
type entryPQ []entry

func (pq entryPQ) Len() int { return len(pq) }

func (pq entryPQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}

func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
