package sssp

// entry is a (vertex, tentative distance) pair queued in the frontier.
type entry struct {
	v    int   // vertex
	dist int64 // distance at push time; stale once dist[v] drops below it
}

// frontier is a min-heap of entries ordered by dist ascending, driven by
// container/heap. Decrease-key is a fresh push; the outdated entry stays
// queued and is discarded on pop by the finalized check.
type frontier []entry

// Len returns the number of queued entries, stale ones included.
func (f frontier) Len() int { return len(f) }

// Less orders by smaller distance first.
func (f frontier) Less(i, j int) bool { return f[i].dist < f[j].dist }

// Swap swaps two entries.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push is called by heap.Push; x must be an entry.
func (f *frontier) Push(x any) { *f = append(*f, x.(entry)) }

// Pop is called by heap.Pop and removes the last element.
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	e := old[n-1]
	*f = old[:n-1]

	return e
}

// minDist scans every queued entry, stale ones included. A stale key may sit
// below the live minimum, which only narrows the reduction window.
func (f frontier) minDist() int64 {
	m := Infinity
	for _, e := range f {
		if e.dist < m {
			m = e.dist
		}
	}

	return m
}
