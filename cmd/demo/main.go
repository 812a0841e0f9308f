package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/Anshitaa/os-scheduler-pro/internal/core"
	"github.com/Anshitaa/os-scheduler-pro/internal/schedulers"
)

// sampleProcesses is the fixed demo workload used for comparing algorithms.
func sampleProcesses() []core.Process {
	return []core.Process{
		{Pid: "P1", ArrivalTime: 0, BurstTime: 8, Priority: core.NewPriority(3)},
		{Pid: "P2", ArrivalTime: 1, BurstTime: 4, Priority: core.NewPriority(1)},
		{Pid: "P3", ArrivalTime: 2, BurstTime: 9, Priority: core.NewPriority(2)},
		{Pid: "P4", ArrivalTime: 3, BurstTime: 5, Priority: core.NewPriority(4)},
		{Pid: "P5", ArrivalTime: 4, BurstTime: 2, Priority: core.NewPriority(5)},
	}
}

func main() {
	processes := sampleProcesses()

	runs := []func([]core.Process) (core.Result, error){
		schedulers.ScheduleFirstComeFirstServe,
		schedulers.ScheduleShortestJobFirst,
		schedulers.ScheduleShortestRemainingTimeFirst,
		schedulers.SchedulePriority,
		schedulers.SchedulePriorityPreemptive,
		func(ps []core.Process) (core.Result, error) { return schedulers.ScheduleRoundRobin(ps, 2) },
		func(ps []core.Process) (core.Result, error) { return schedulers.ScheduleRoundRobin(ps, 4) },
	}

	results := make([]core.Result, 0, len(runs))
	for _, run := range runs {
		result, err := run(processes)
		if err != nil {
			log.Fatalln(err)
		}
		results = append(results, result)
	}

	for _, result := range results {
		outputTitle(os.Stdout, result.Algorithm)
		outputSchedule(os.Stdout, result)
	}

	outputTitle(os.Stdout, "Algorithm Comparison")
	outputComparison(os.Stdout, results)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)+4))
	_, _ = fmt.Fprintln(w, " ", title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)+4))
}

func outputSchedule(w io.Writer, result core.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Start", "End"})
	for _, entry := range result.Schedule {
		table.Append([]string{
			entry.ProcessId,
			fmt.Sprintf("%g", entry.StartTime),
			fmt.Sprintf("%g", entry.EndTime),
		})
	}
	table.SetFooter([]string{"", "Total",
		fmt.Sprintf("%.2f", result.Metrics.TotalTime)})
	table.Render()
	_, _ = fmt.Fprintln(w)
}

func outputComparison(w io.Writer, results []core.Result) {
	rows := make([][]string, len(results))
	for i, result := range results {
		rows[i] = []string{
			result.Algorithm,
			fmt.Sprintf("%.2f", result.Metrics.AverageWaitingTime),
			fmt.Sprintf("%.2f", result.Metrics.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", result.Metrics.CpuUtilization),
			fmt.Sprintf("%.2f", result.Metrics.TotalTime),
		}
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Wait", "Avg Turnaround", "CPU Util %", "Total Time"})
	table.AppendBulk(rows)
	table.Render()
}
