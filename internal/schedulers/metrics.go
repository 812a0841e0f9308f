package schedulers

import (
	"github.com/Anshitaa/os-scheduler-pro/internal/core"
	"github.com/Anshitaa/os-scheduler-pro/internal/util"
)

// CalculateMetrics reduces a completed schedule to aggregate figures. A
// process's completion time is the end of its last non-idle entry; averages
// run over processes that completed. CPU utilization is the non-idle share
// of the total timeline, as a percentage.
func CalculateMetrics(processes []core.Process, schedule []core.ScheduleEntry) core.Metrics {
	completionTimes := make(map[string]float64, len(processes))
	var totalTime, cpuTime float64
	for _, entry := range schedule {
		if entry.EndTime > totalTime {
			totalTime = entry.EndTime
		}
		if entry.Idle() {
			continue
		}
		completionTimes[entry.ProcessId] = entry.EndTime
		cpuTime += entry.Duration()
	}

	var turnAroundSum, waitingSum float64
	completed := 0
	for _, p := range processes {
		completionTime, ok := completionTimes[p.Pid]
		if !ok {
			continue
		}
		turnAround := completionTime - p.ArrivalTime
		turnAroundSum += turnAround
		waitingSum += turnAround - p.BurstTime
		completed++
	}

	var avgTurnAround, avgWaiting float64
	if completed > 0 {
		avgTurnAround = turnAroundSum / float64(completed)
		avgWaiting = waitingSum / float64(completed)
	}
	var utilization float64
	if totalTime > 0 {
		utilization = cpuTime / totalTime * 100
	}

	return core.Metrics{
		AverageTurnAroundTime: util.Round2(avgTurnAround),
		AverageWaitingTime:    util.Round2(avgWaiting),
		CpuUtilization:        util.Round2(utilization),
		TotalProcesses:        len(processes),
		TotalTime:             util.Round2(totalTime),
	}
}
