package schedulers

import (
	"github.com/Anshitaa/os-scheduler-pro/internal/core"
)

// ScheduleFirstComeFirstServe runs each process to completion in
// (arrival time, pid) order, recording an idle entry whenever the next
// process has not arrived yet.
func ScheduleFirstComeFirstServe(processes []core.Process) (core.Result, error) {
	const name = "First-Come, First-Served (FCFS)"
	if len(processes) == 0 {
		return core.Result{Algorithm: name}, nil
	}

	work := cloneAll(processes)
	sortByArrival(work)

	var schedule []core.ScheduleEntry
	currentTime := 0.0
	for i := range work {
		if currentTime < work[i].ArrivalTime {
			schedule = append(schedule, core.ScheduleEntry{
				ProcessId: core.IdleProcess,
				StartTime: currentTime,
				EndTime:   work[i].ArrivalTime,
			})
			currentTime = work[i].ArrivalTime
		}
		schedule = append(schedule, core.ScheduleEntry{
			ProcessId: work[i].Pid,
			StartTime: currentTime,
			EndTime:   currentTime + work[i].BurstTime,
		})
		currentTime += work[i].BurstTime
	}

	return core.Result{
		Schedule:  schedule,
		Metrics:   CalculateMetrics(processes, schedule),
		Algorithm: name,
	}, nil
}
