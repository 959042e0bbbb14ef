package util

import (
	"testing"

	"cpu-scheduling/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completed(descriptors ...core.Process) []*core.Process {
	processes := core.NewWorkingSet(descriptors)
	cpu := core.NewCpu()
	for _, p := range processes {
		cpu.IdleUntil(p.ArrivalTime)
		cpu.Execute(p, p.RemainingTime)
	}
	return processes
}

func TestCalculateAverage(t *testing.T) {
	processes := completed(
		core.Process{ID: 1, ArrivalTime: 0, BurstTime: 6},
		core.Process{ID: 2, ArrivalTime: 1, BurstTime: 4},
		core.Process{ID: 3, ArrivalTime: 2, BurstTime: 8},
		core.Process{ID: 4, ArrivalTime: 3, BurstTime: 5},
	)

	summary, err := CalculateAverage(processes)
	require.NoError(t, err)
	assert.InDelta(t, 7.0, summary.AverageWaitingTime, 1e-9)
	assert.InDelta(t, 12.75, summary.AverageTurnaroundTime, 1e-9)
	assert.InDelta(t, 7.0, summary.AverageResponseTime, 1e-9)
}

func TestCalculateAverage_NonTruncating(t *testing.T) {
	processes := completed(
		core.Process{ID: 1, ArrivalTime: 0, BurstTime: 1},
		core.Process{ID: 2, ArrivalTime: 0, BurstTime: 1},
	)

	summary, err := CalculateAverage(processes)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, summary.AverageWaitingTime, 1e-9)
	assert.InDelta(t, 1.5, summary.AverageTurnaroundTime, 1e-9)
}

func TestCalculateAverage_Empty(t *testing.T) {
	_, err := CalculateAverage(nil)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestCalculateAverage_Unfinished(t *testing.T) {
	processes := core.NewWorkingSet([]core.Process{{ID: 1, ArrivalTime: 0, BurstTime: 2}})

	_, err := CalculateAverage(processes)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}
