package schedulers

import (
	"sync"

	"github.com/Anshitaa/os-scheduler-pro/internal/core"
)

// ScheduleAll evaluates every algorithm over the same input concurrently.
// Each run clones its own working copies, so the goroutines share nothing
// but the read-only input. Results come back in a fixed order; the first
// failing algorithm (in that order) fails the whole comparison.
func ScheduleAll(processes []core.Process, timeQuantum float64) ([]core.Result, error) {
	runs := []func([]core.Process) (core.Result, error){
		ScheduleFirstComeFirstServe,
		ScheduleShortestJobFirst,
		ScheduleShortestRemainingTimeFirst,
		SchedulePriority,
		SchedulePriorityPreemptive,
		func(ps []core.Process) (core.Result, error) {
			return ScheduleRoundRobin(ps, timeQuantum)
		},
	}

	results := make([]core.Result, len(runs))
	errs := make([]error, len(runs))

	var wg sync.WaitGroup
	wg.Add(len(runs))
	for i, run := range runs {
		go func(i int, run func([]core.Process) (core.Result, error)) {
			defer wg.Done()
			results[i], errs[i] = run(processes)
		}(i, run)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
