package core

// IdleProcess is the sentinel schedule identifier for spans where the CPU
// had no eligible process to run.
const IdleProcess = "IDLE"

// ScheduleEntry is one contiguous span of the simulated timeline. Entries
// are never zero-length, and adjacent entries for the same process are
// merged by the engine before a schedule is returned.
type ScheduleEntry struct {
	ProcessId string  `json:"process_id"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
}

// Idle reports whether the entry records CPU idle time.
func (e ScheduleEntry) Idle() bool {
	return e.ProcessId == IdleProcess
}

// Duration is the length of the span.
func (e ScheduleEntry) Duration() float64 {
	return e.EndTime - e.StartTime
}

// Metrics are the aggregate figures derived from a completed schedule.
// All floating values are rounded to 2 decimal places for display stability.
type Metrics struct {
	AverageTurnAroundTime float64 `json:"average_turnaround_time"`
	AverageWaitingTime    float64 `json:"average_waiting_time"`
	CpuUtilization        float64 `json:"cpu_utilization"`
	TotalProcesses        int     `json:"total_processes"`
	TotalTime             float64 `json:"total_time"`
}

// Result is the immutable outcome of one algorithm invocation: the
// chronological schedule, its derived metrics, and the display name of the
// algorithm/configuration that produced it.
type Result struct {
	Schedule  []ScheduleEntry `json:"schedule"`
	Metrics   Metrics         `json:"metrics"`
	Algorithm string          `json:"algorithm"`
}
