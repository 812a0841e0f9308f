package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Anshitaa/os-scheduler-pro/internal/core"
)

func TestCalculateMetrics(t *testing.T) {
	processes := []core.Process{
		{Pid: "P1", ArrivalTime: 0, BurstTime: 3},
		{Pid: "P2", ArrivalTime: 1, BurstTime: 2},
	}
	schedule := []core.ScheduleEntry{
		{ProcessId: "P1", StartTime: 0, EndTime: 3},
		{ProcessId: "P2", StartTime: 3, EndTime: 5},
	}

	metrics := CalculateMetrics(processes, schedule)

	assert.Equal(t, core.Metrics{
		AverageTurnAroundTime: 3.5,
		AverageWaitingTime:    1.0,
		CpuUtilization:        100.0,
		TotalProcesses:        2,
		TotalTime:             5,
	}, metrics)
}

func TestCalculateMetricsIdleExcludedFromUtilization(t *testing.T) {
	processes := []core.Process{{Pid: "P1", ArrivalTime: 2, BurstTime: 2}}
	schedule := []core.ScheduleEntry{
		{ProcessId: core.IdleProcess, StartTime: 0, EndTime: 2},
		{ProcessId: "P1", StartTime: 2, EndTime: 4},
	}

	metrics := CalculateMetrics(processes, schedule)

	assert.Equal(t, 50.0, metrics.CpuUtilization)
	assert.Equal(t, 4.0, metrics.TotalTime)
}

func TestCalculateMetricsEmptySchedule(t *testing.T) {
	metrics := CalculateMetrics(nil, nil)

	assert.Equal(t, core.Metrics{}, metrics)
}

func TestCalculateMetricsCountsAllInputProcesses(t *testing.T) {
	// TotalProcesses counts input processes, not completed ones.
	processes := []core.Process{
		{Pid: "P1", ArrivalTime: 0, BurstTime: 3},
		{Pid: "P2", ArrivalTime: 9, BurstTime: 1},
	}
	schedule := []core.ScheduleEntry{
		{ProcessId: "P1", StartTime: 0, EndTime: 3},
	}

	metrics := CalculateMetrics(processes, schedule)

	assert.Equal(t, 2, metrics.TotalProcesses)
	assert.Equal(t, 3.0, metrics.AverageTurnAroundTime)
}

func TestCalculateMetricsRoundsToTwoDecimals(t *testing.T) {
	processes := []core.Process{
		{Pid: "P1", ArrivalTime: 0, BurstTime: 1},
		{Pid: "P2", ArrivalTime: 0, BurstTime: 1},
		{Pid: "P3", ArrivalTime: 0, BurstTime: 1},
	}
	schedule := []core.ScheduleEntry{
		{ProcessId: "P1", StartTime: 0, EndTime: 1},
		{ProcessId: "P2", StartTime: 1, EndTime: 2},
		{ProcessId: "P3", StartTime: 2, EndTime: 3},
	}

	metrics := CalculateMetrics(processes, schedule)

	// Mean turnaround is (1+2+3)/3 = 2; mean waiting is (0+1+2)/3 = 1.
	assert.Equal(t, 2.0, metrics.AverageTurnAroundTime)
	assert.Equal(t, 1.0, metrics.AverageWaitingTime)

	uneven := CalculateMetrics(processes[:2], []core.ScheduleEntry{
		{ProcessId: "P1", StartTime: 0, EndTime: 1},
		{ProcessId: core.IdleProcess, StartTime: 1, EndTime: 2},
		{ProcessId: "P2", StartTime: 2, EndTime: 3},
	})
	assert.Equal(t, 66.67, uneven.CpuUtilization)
}
