package schedulers

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/Anshitaa/os-scheduler-pro/internal/core"
)

// selectionKey extracts the ordering criterion of an algorithm from a
// working copy: burst time for SJF, remaining time for SRTF, priority for
// the priority variants. Ties always resolve by ascending pid.
type selectionKey func(p *core.Process) float64

// cloneAll makes the per-run working copies; the engine never mutates
// caller-owned processes.
func cloneAll(processes []core.Process) []core.Process {
	work := make([]core.Process, len(processes))
	for i, p := range processes {
		work[i] = p.Clone()
	}
	return work
}

// sortByArrival orders working copies by (arrival time, pid).
func sortByArrival(work []core.Process) {
	sort.Slice(work, func(i, j int) bool {
		if work[i].ArrivalTime != work[j].ArrivalTime {
			return work[i].ArrivalTime < work[j].ArrivalTime
		}
		return work[i].Pid < work[j].Pid
	})
}

// requirePriorities fails fast if any process lacks a priority.
func requirePriorities(processes []core.Process) error {
	for _, p := range processes {
		if !p.Priority.Valid {
			return fmt.Errorf("process %s: %w", p.Pid, ErrMissingPriority)
		}
	}
	return nil
}

// appendOrExtend adds an execution span to the schedule, merging it into the
// previous entry when it continues the same process at a contiguous time.
func appendOrExtend(schedule []core.ScheduleEntry, pid string, start, end float64) []core.ScheduleEntry {
	if n := len(schedule); n > 0 && schedule[n-1].ProcessId == pid && schedule[n-1].EndTime == start {
		schedule[n-1].EndTime = end
		return schedule
	}
	return append(schedule, core.ScheduleEntry{ProcessId: pid, StartTime: start, EndTime: end})
}

// scheduleNonPreemptive runs the shared non-preemptive loop: at each decision
// point scan the arrived-but-incomplete set for the minimum (key, pid) and run
// it to completion; with nothing arrived, idle-skip to the earliest future
// arrival among incomplete processes.
func scheduleNonPreemptive(name string, processes []core.Process, key selectionKey) core.Result {
	if len(processes) == 0 {
		return core.Result{Algorithm: name}
	}

	work := cloneAll(processes)
	done := make([]bool, len(work))
	var schedule []core.ScheduleEntry
	currentTime := 0.0

	for completed := 0; completed < len(work); {
		selected := -1
		for i := range work {
			if done[i] || work[i].ArrivalTime > currentTime {
				continue
			}
			if selected == -1 || lessByKey(key, &work[i], &work[selected]) {
				selected = i
			}
		}

		if selected == -1 {
			next := -1
			for i := range work {
				if done[i] {
					continue
				}
				if next == -1 || work[i].ArrivalTime < work[next].ArrivalTime ||
					(work[i].ArrivalTime == work[next].ArrivalTime && work[i].Pid < work[next].Pid) {
					next = i
				}
			}
			schedule = append(schedule, core.ScheduleEntry{
				ProcessId: core.IdleProcess,
				StartTime: currentTime,
				EndTime:   work[next].ArrivalTime,
			})
			currentTime = work[next].ArrivalTime
			continue
		}

		schedule = append(schedule, core.ScheduleEntry{
			ProcessId: work[selected].Pid,
			StartTime: currentTime,
			EndTime:   currentTime + work[selected].BurstTime,
		})
		currentTime += work[selected].BurstTime
		done[selected] = true
		completed++
	}

	return core.Result{
		Schedule:  schedule,
		Metrics:   CalculateMetrics(processes, schedule),
		Algorithm: name,
	}
}

func lessByKey(key selectionKey, a, b *core.Process) bool {
	ka, kb := key(a), key(b)
	if ka != kb {
		return ka < kb
	}
	return a.Pid < b.Pid
}

// schedulePreemptive runs the shared fixed-step preemptive loop. Preemption
// is checked only at 1.0-time-unit granularity: every step the running
// process rejoins the ready heap and the minimum (key, pid) is picked, so a
// newly arrived process with a smaller key preempts at the next step
// boundary, never mid-step.
func schedulePreemptive(name string, processes []core.Process, key selectionKey) core.Result {
	if len(processes) == 0 {
		return core.Result{Algorithm: name}
	}

	work := cloneAll(processes)
	sortByArrival(work)

	ready := &readyQueue{}
	var schedule []core.ScheduleEntry
	var current *core.Process
	currentTime := 0.0
	next := 0 // index of the earliest process not yet admitted

	for completed := 0; completed < len(work); {
		for next < len(work) && work[next].ArrivalTime <= currentTime {
			heap.Push(ready, readyItem{key: key(&work[next]), pid: work[next].Pid, process: &work[next]})
			next++
		}
		if current != nil {
			heap.Push(ready, readyItem{key: key(current), pid: current.Pid, process: current})
			current = nil
		}

		if ready.Len() == 0 {
			schedule = append(schedule, core.ScheduleEntry{
				ProcessId: core.IdleProcess,
				StartTime: currentTime,
				EndTime:   work[next].ArrivalTime,
			})
			currentTime = work[next].ArrivalTime
			continue
		}

		current = heap.Pop(ready).(readyItem).process
		executed := current.Execute(1.0)
		schedule = appendOrExtend(schedule, current.Pid, currentTime, currentTime+executed)
		currentTime += executed

		if current.Completed() {
			current = nil
			completed++
		}
	}

	return core.Result{
		Schedule:  schedule,
		Metrics:   CalculateMetrics(processes, schedule),
		Algorithm: name,
	}
}
