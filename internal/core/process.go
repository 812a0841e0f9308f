package core

// Priority is an optional scheduling priority. Lower Value means higher
// priority. Valid reports whether a priority was assigned at all; the
// priority-based algorithms refuse to run when it is absent.
type Priority struct {
	Value int
	Valid bool
}

// NewPriority returns a present Priority with the given value.
func NewPriority(value int) Priority {
	return Priority{Value: value, Valid: true}
}

// Process describes one process submitted to the scheduler.
//
// Pid must be unique within a single simulation input. RemainingTime is a
// per-run counter: the engine clones every Process at the start of an
// algorithm call and only ever decrements the clone, so caller-owned values
// are never mutated.
type Process struct {
	Pid           string
	ArrivalTime   float64
	BurstTime     float64
	Priority      Priority
	RemainingTime float64
}

// Clone returns a working copy with RemainingTime reset to the full burst.
func (p Process) Clone() Process {
	p.RemainingTime = p.BurstTime
	return p
}

// Execute runs the process for at most timeQuantum and returns the time
// actually consumed, clipped so RemainingTime never goes negative.
func (p *Process) Execute(timeQuantum float64) float64 {
	executionTime := timeQuantum
	if p.RemainingTime < executionTime {
		executionTime = p.RemainingTime
	}
	p.RemainingTime -= executionTime
	return executionTime
}

// Completed reports whether the process has no CPU time left.
func (p *Process) Completed() bool {
	return p.RemainingTime <= 0
}
