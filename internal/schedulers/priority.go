package schedulers

import (
	"github.com/Anshitaa/os-scheduler-pro/internal/core"
)

func priorityKey(p *core.Process) float64 {
	return float64(p.Priority.Value)
}

// SchedulePriority is non-preemptive priority scheduling: the arrived
// process with the lowest priority value runs to completion. Every input
// process must carry a priority.
func SchedulePriority(processes []core.Process) (core.Result, error) {
	if err := requirePriorities(processes); err != nil {
		return core.Result{}, err
	}
	return scheduleNonPreemptive("Priority (Non-Preemptive)", processes, priorityKey), nil
}

// SchedulePriorityPreemptive re-evaluates the lowest-priority-value ready
// process at every 1.0-unit step, preempting on change. Every input process
// must carry a priority.
func SchedulePriorityPreemptive(processes []core.Process) (core.Result, error) {
	if err := requirePriorities(processes); err != nil {
		return core.Result{}, err
	}
	return schedulePreemptive("Priority (Preemptive)", processes, priorityKey), nil
}
