package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anshitaa/os-scheduler-pro/internal/core"
)

func TestShortestJobFirst(t *testing.T) {
	result, err := ScheduleShortestJobFirst(simpleProcesses())
	require.NoError(t, err)

	// P1 is alone at time 0; afterwards the shorter P2 goes before P3.
	assert.Equal(t, "Shortest Job First (Non-Preemptive)", result.Algorithm)
	assert.Equal(t, []core.ScheduleEntry{
		{ProcessId: "P1", StartTime: 0, EndTime: 3},
		{ProcessId: "P2", StartTime: 3, EndTime: 4},
		{ProcessId: "P3", StartTime: 4, EndTime: 6},
	}, result.Schedule)
}

func TestShortestJobFirstPicksShortestAmongArrived(t *testing.T) {
	result, err := ScheduleShortestJobFirst([]core.Process{
		{Pid: "P1", ArrivalTime: 0, BurstTime: 6},
		{Pid: "P2", ArrivalTime: 1, BurstTime: 4},
		{Pid: "P3", ArrivalTime: 2, BurstTime: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, []core.ScheduleEntry{
		{ProcessId: "P1", StartTime: 0, EndTime: 6},
		{ProcessId: "P3", StartTime: 6, EndTime: 7},
		{ProcessId: "P2", StartTime: 7, EndTime: 11},
	}, result.Schedule)
}

func TestShortestJobFirstIdleSkipsToNextArrival(t *testing.T) {
	result, err := ScheduleShortestJobFirst([]core.Process{
		{Pid: "P1", ArrivalTime: 3, BurstTime: 2},
		{Pid: "P2", ArrivalTime: 8, BurstTime: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, []core.ScheduleEntry{
		{ProcessId: core.IdleProcess, StartTime: 0, EndTime: 3},
		{ProcessId: "P1", StartTime: 3, EndTime: 5},
		{ProcessId: core.IdleProcess, StartTime: 5, EndTime: 8},
		{ProcessId: "P2", StartTime: 8, EndTime: 9},
	}, result.Schedule)
}

func TestShortestJobFirstTieBreaksByPid(t *testing.T) {
	result, err := ScheduleShortestJobFirst([]core.Process{
		{Pid: "P2", ArrivalTime: 0, BurstTime: 3},
		{Pid: "P1", ArrivalTime: 0, BurstTime: 3},
	})
	require.NoError(t, err)

	assert.Equal(t, "P1", result.Schedule[0].ProcessId)
	assert.Equal(t, "P2", result.Schedule[1].ProcessId)
}

func TestShortestRemainingTimeFirst(t *testing.T) {
	result, err := ScheduleShortestRemainingTimeFirst([]core.Process{
		{Pid: "P1", ArrivalTime: 0, BurstTime: 8},
		{Pid: "P2", ArrivalTime: 2, BurstTime: 4},
		{Pid: "P3", ArrivalTime: 4, BurstTime: 2},
	})
	require.NoError(t, err)

	// P2 preempts P1 at t=2; the P2/P3 tie at t=4 resolves by pid, so P2
	// keeps the CPU; P1 resumes last.
	assert.Equal(t, "Shortest Job First (Preemptive)", result.Algorithm)
	assert.Equal(t, []core.ScheduleEntry{
		{ProcessId: "P1", StartTime: 0, EndTime: 2},
		{ProcessId: "P2", StartTime: 2, EndTime: 6},
		{ProcessId: "P3", StartTime: 6, EndTime: 8},
		{ProcessId: "P1", StartTime: 8, EndTime: 14},
	}, result.Schedule)

	assert.Equal(t, 7.33, result.Metrics.AverageTurnAroundTime)
	assert.Equal(t, 2.67, result.Metrics.AverageWaitingTime)
	assert.Equal(t, 100.0, result.Metrics.CpuUtilization)
	assert.Equal(t, 14.0, result.Metrics.TotalTime)
}

func TestShortestRemainingTimeFirstFractionalBurst(t *testing.T) {
	// The fixed 1.0-unit stepping clips the final step of a fractional
	// burst to the remaining time.
	result, err := ScheduleShortestRemainingTimeFirst([]core.Process{
		{Pid: "P1", ArrivalTime: 0, BurstTime: 2.5},
	})
	require.NoError(t, err)

	assert.Equal(t, []core.ScheduleEntry{
		{ProcessId: "P1", StartTime: 0, EndTime: 2.5},
	}, result.Schedule)
	assert.Equal(t, 2.5, result.Metrics.TotalTime)
}

func TestShortestRemainingTimeFirstIdleThenRun(t *testing.T) {
	result, err := ScheduleShortestRemainingTimeFirst([]core.Process{
		{Pid: "P1", ArrivalTime: 5, BurstTime: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, []core.ScheduleEntry{
		{ProcessId: core.IdleProcess, StartTime: 0, EndTime: 5},
		{ProcessId: "P1", StartTime: 5, EndTime: 7},
	}, result.Schedule)
}
