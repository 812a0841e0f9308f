package schedulers

import (
	"container/list"
	"fmt"

	"github.com/Anshitaa/os-scheduler-pro/internal/core"
)

// ScheduleRoundRobin cycles a FIFO ready queue, granting each process at
// most timeQuantum of CPU per turn. Processes arriving during a turn are
// admitted before the preempted process rejoins the tail of the queue.
func ScheduleRoundRobin(processes []core.Process, timeQuantum float64) (core.Result, error) {
	name := fmt.Sprintf("Round Robin (Quantum: %g)", timeQuantum)
	if timeQuantum <= 0 {
		return core.Result{}, fmt.Errorf("quantum %g: %w", timeQuantum, ErrInvalidTimeQuantum)
	}
	if len(processes) == 0 {
		return core.Result{Algorithm: name}, nil
	}

	work := cloneAll(processes)
	sortByArrival(work)

	queue := list.New()
	var schedule []core.ScheduleEntry
	currentTime := 0.0
	next := 0

	admit := func() {
		for next < len(work) && work[next].ArrivalTime <= currentTime {
			queue.PushBack(&work[next])
			next++
		}
	}
	admit()

	for completed := 0; completed < len(work); {
		if queue.Len() == 0 {
			schedule = append(schedule, core.ScheduleEntry{
				ProcessId: core.IdleProcess,
				StartTime: currentTime,
				EndTime:   work[next].ArrivalTime,
			})
			currentTime = work[next].ArrivalTime
			admit()
			continue
		}

		p := queue.Remove(queue.Front()).(*core.Process)
		executed := p.Execute(timeQuantum)
		schedule = appendOrExtend(schedule, p.Pid, currentTime, currentTime+executed)
		currentTime += executed

		// Arrivals during this turn queue ahead of the preempted process.
		admit()

		if p.Completed() {
			completed++
		} else {
			queue.PushBack(p)
		}
	}

	return core.Result{
		Schedule:  schedule,
		Metrics:   CalculateMetrics(processes, schedule),
		Algorithm: name,
	}, nil
}
