package util

import "cpu-scheduling/internal/core"

// CalculateAverage reduces a completed run to its averages. Every process must
// have finished and the collection must not be empty.
func CalculateAverage(processes []*core.Process) (core.Summary, error) {
	if len(processes) == 0 {
		return core.Summary{}, &core.ValidationError{Kind: core.ErrInvalidInput, Field: "processes", Message: "no processes to average"}
	}

	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, process := range processes {
		if !process.Finished() {
			id := process.ID
			return core.Summary{}, &core.ValidationError{Kind: core.ErrInvalidInput, Field: "completion_time", ProcessID: &id, Message: "process has not completed"}
		}
		waitingTimeSum += float64(process.WaitingTime)
		responseTimeSum += float64(process.ResponseTime)
		turnAroundTimeSum += float64(process.TurnaroundTime)
	}

	processCount := float64(len(processes))

	return core.Summary{
		AverageWaitingTime:    waitingTimeSum / processCount,
		AverageTurnaroundTime: turnAroundTimeSum / processCount,
		AverageResponseTime:   responseTimeSum / processCount,
	}, nil
}
