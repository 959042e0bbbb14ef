// Package report renders finished schedules for the console. It only reads results.
package report

import (
	"fmt"
	"io"
	"strings"

	"cpu-scheduling/internal/core"
	"cpu-scheduling/internal/responses"

	"github.com/olekukonko/tablewriter"
)

// RenderSchedule writes a title, a Gantt line and the per-process table.
func RenderSchedule(w io.Writer, response responses.ScheduleResponse) {
	title := response.Algorithm.Title()
	if response.TimeQuantum > 0 {
		title = fmt.Sprintf("%s (quantum %d)", title, response.TimeQuantum)
	}
	outputTitle(w, title)
	outputGantt(w, response.Timeline)
	outputSchedule(w, response)
}

// RenderComparison writes every run followed by a one-row-per-algorithm summary.
func RenderComparison(w io.Writer, comparison responses.ComparisonResponse) {
	for _, r := range comparison.Results {
		RenderSchedule(w, r)
	}

	outputTitle(w, "Comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg wait", "Avg turnaround", "Avg response", "Utilization", "Throughput"})
	for _, r := range comparison.Results {
		table.Append([]string{
			r.Algorithm.Title(),
			fmt.Sprintf("%.2f", r.AverageWaitingTime),
			fmt.Sprintf("%.2f", r.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", r.AverageResponseTime),
			fmt.Sprintf("%.1f%%", r.CpuUtilization*100),
			fmt.Sprintf("%.2f/t", r.CpuThroughput),
		})
	}
	table.Render()
	_, _ = fmt.Fprintf(w, "Lowest average waiting time: %s\n", comparison.Best.Title())
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// outputGantt prints one cell per slice. Idle gaps show up as "idle" cells.
func outputGantt(w io.Writer, timeline []core.TimeSlice) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(timeline) == 0 {
		_, _ = fmt.Fprintf(w, "(empty)\n\n")
		return
	}

	var cells, marks strings.Builder
	cells.WriteString("|")
	clock := 0
	cell := func(label string, start int) {
		padding := strings.Repeat(" ", max(0, (8-len(label))/2))
		cells.WriteString(padding + label + padding + "|")
		mark := fmt.Sprint(start)
		marks.WriteString(mark + strings.Repeat(" ", max(1, len(padding)*2+len(label)+1-len(mark))))
	}
	for _, slice := range timeline {
		if slice.Start > clock {
			cell("idle", clock)
		}
		cell(fmt.Sprintf("P%d", slice.ProcessID), slice.Start)
		clock = slice.Stop
	}
	marks.WriteString(fmt.Sprint(clock))

	_, _ = fmt.Fprintln(w, cells.String())
	_, _ = fmt.Fprintln(w, marks.String())
	_, _ = fmt.Fprintln(w)
}

func outputSchedule(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Start", "Exit", "Wait", "Turnaround", "Response"})
	for _, d := range response.Details {
		table.Append([]string{
			fmt.Sprint(d.ProcessId),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.StartTime),
			fmt.Sprint(d.CompletionTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.ResponseTime),
		})
	}
	table.SetFooter([]string{"", "", "",
		fmt.Sprintf("Idle\n%d", response.IdleTime),
		fmt.Sprintf("Throughput\n%.2f/t", response.CpuThroughput),
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", response.AverageResponseTime)})
	table.Render()
	_, _ = fmt.Fprintln(w)
}
