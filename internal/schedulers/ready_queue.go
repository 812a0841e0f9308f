package schedulers

import "github.com/Anshitaa/os-scheduler-pro/internal/core"

// readyItem pairs a process with the selection key it was enqueued under.
// Keys are captured at push time; the preemptive loop re-pushes the running
// process every step so its key stays current.
type readyItem struct {
	key     float64
	pid     string
	process *core.Process
}

// readyQueue is a min-heap over (key, pid). The pid tie-break keeps every
// algorithm's output a deterministic function of its input.
type readyQueue []readyItem

func (q readyQueue) Len() int { return len(q) }

func (q readyQueue) Less(i, j int) bool {
	if q[i].key != q[j].key {
		return q[i].key < q[j].key
	}
	return q[i].pid < q[j].pid
}

func (q readyQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *readyQueue) Push(x any) { *q = append(*q, x.(readyItem)) }

func (q *readyQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
