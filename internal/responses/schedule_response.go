package responses

import "github.com/Anshitaa/os-scheduler-pro/internal/core"

// ScheduleResponse is the wire shape of one algorithm run.
type ScheduleResponse struct {
	Algorithm             string               `json:"algorithm"`
	Schedule              []core.ScheduleEntry `json:"schedule"`
	TotalTime             float64              `json:"total_time"`
	AverageWaitingTime    float64              `json:"average_waiting_time"`
	AverageTurnAroundTime float64              `json:"average_turn_around_time"`
	CpuUtilization        float64              `json:"cpu_utilization"`
	TotalProcesses        int                  `json:"total_processes"`
}

// ComparisonResponse bundles the runs of every algorithm over one input.
type ComparisonResponse struct {
	Results []ScheduleResponse `json:"results"`
}

// FromResult flattens an engine result into the response DTO.
func FromResult(result core.Result) ScheduleResponse {
	return ScheduleResponse{
		Algorithm:             result.Algorithm,
		Schedule:              result.Schedule,
		TotalTime:             result.Metrics.TotalTime,
		AverageWaitingTime:    result.Metrics.AverageWaitingTime,
		AverageTurnAroundTime: result.Metrics.AverageTurnAroundTime,
		CpuUtilization:        result.Metrics.CpuUtilization,
		TotalProcesses:        result.Metrics.TotalProcesses,
	}
}
