package report

import (
	"bytes"
	"strings"
	"testing"

	"cpu-scheduling/internal/core"
	"cpu-scheduling/internal/responses"

	"github.com/stretchr/testify/assert"
)

func sampleResponse() responses.ScheduleResponse {
	return responses.ScheduleResponse{
		Algorithm:             core.RoundRobin,
		TimeQuantum:           2,
		TotalTime:             11,
		IdleTime:              7,
		AverageWaitingTime:    0.5,
		AverageTurnAroundTime: 2.5,
		CpuThroughput:         2.0 / 11.0,
		Details: []responses.ProcessResponse{
			{ProcessId: 1, ArrivalTime: 2, BurstTime: 3, StartTime: 2, CompletionTime: 5, TurnAroundTime: 3},
			{ProcessId: 2, ArrivalTime: 10, BurstTime: 1, StartTime: 10, CompletionTime: 11, TurnAroundTime: 1},
		},
		Timeline: []core.TimeSlice{
			{ProcessID: 1, Start: 2, Stop: 4},
			{ProcessID: 1, Start: 4, Stop: 5},
			{ProcessID: 2, Start: 10, Stop: 11},
		},
	}
}

func TestRenderSchedule(t *testing.T) {
	var buf bytes.Buffer
	RenderSchedule(&buf, sampleResponse())
	out := buf.String()

	assert.Contains(t, out, "Round-robin (quantum 2)")
	assert.Contains(t, out, "Gantt schedule")
	assert.Equal(t, 2, strings.Count(out, "idle"), "leading gap and gap before P2")
	assert.Equal(t, 2, strings.Count(out, "P1"))
	assert.Contains(t, out, "TURNAROUND")
	assert.Contains(t, out, "2.50")
}

func TestRenderSchedule_EmptyTimeline(t *testing.T) {
	var buf bytes.Buffer
	RenderSchedule(&buf, responses.ScheduleResponse{Algorithm: core.FirstComeFirstServe})

	assert.Contains(t, buf.String(), "(empty)")
	assert.Contains(t, buf.String(), "First-come, first-serve")
}

func TestRenderComparison(t *testing.T) {
	fcfs := sampleResponse()
	fcfs.Algorithm = core.FirstComeFirstServe
	fcfs.TimeQuantum = 0

	var buf bytes.Buffer
	RenderComparison(&buf, responses.ComparisonResponse{
		Best:    core.FirstComeFirstServe,
		Results: []responses.ScheduleResponse{fcfs, sampleResponse()},
	})
	out := buf.String()

	assert.Contains(t, out, "Comparison")
	assert.Contains(t, out, "AVG WAIT")
	assert.Contains(t, out, "Lowest average waiting time: First-come, first-serve")
}
