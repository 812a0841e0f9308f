package requests

// Job is one process descriptor as submitted over the API. Priority is a
// pointer so JSON absence is distinguishable from an explicit zero.
type Job struct {
	ProcessId   string  `json:"process_id"`
	ArrivalTime float64 `json:"arrival_time"`
	BurstTime   float64 `json:"burst_time"`
	Priority    *int    `json:"priority,omitempty"`
}

// ScheduleRequest carries the process set and, for Round Robin, the time
// quantum. A zero/omitted quantum falls back to the configured default.
type ScheduleRequest struct {
	Jobs        []Job   `json:"jobs"`
	TimeQuantum float64 `json:"time_quantum,omitempty"`
}
