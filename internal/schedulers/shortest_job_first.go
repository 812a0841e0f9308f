package schedulers

import (
	"github.com/Anshitaa/os-scheduler-pro/internal/core"
)

// ScheduleShortestJobFirst picks, at each decision point, the arrived
// process with the smallest burst time and runs it to completion.
func ScheduleShortestJobFirst(processes []core.Process) (core.Result, error) {
	result := scheduleNonPreemptive("Shortest Job First (Non-Preemptive)", processes,
		func(p *core.Process) float64 { return p.BurstTime })
	return result, nil
}

// ScheduleShortestRemainingTimeFirst is the preemptive SJF variant: at every
// 1.0-unit step the process with the least remaining time runs, preempting
// the current one when a shorter job becomes ready.
func ScheduleShortestRemainingTimeFirst(processes []core.Process) (core.Result, error) {
	result := schedulePreemptive("Shortest Job First (Preemptive)", processes,
		func(p *core.Process) float64 { return p.RemainingTime })
	return result, nil
}
