package schedulers

import (
	"cpu-scheduling/internal/core"
	"cpu-scheduling/internal/responses"
	"cpu-scheduling/internal/util"
)

func generateResponse(schedule *core.Schedule) (responses.ScheduleResponse, error) {
	summary, err := util.CalculateAverage(schedule.Processes)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	processDetails := make([]responses.ProcessResponse, 0, len(schedule.Processes))
	for _, process := range schedule.Processes {
		processDetails = append(processDetails, generateProcessDetails(process))
	}

	completionOrder := make([]int, 0, len(schedule.Completions))
	for _, c := range schedule.Completions {
		completionOrder = append(completionOrder, c.Process.ID)
	}

	var throughput float64
	if schedule.Metric.TotalTime > 0 {
		throughput = float64(len(schedule.Processes)) / float64(schedule.Metric.TotalTime)
	}

	var response = responses.ScheduleResponse{
		Algorithm:             schedule.Algorithm,
		TimeQuantum:           schedule.TimeQuantum,
		TotalTime:             schedule.Metric.TotalTime,
		IdleTime:              schedule.Metric.IdleTime,
		CpuUtilization:        schedule.Metric.Utilization(),
		CpuThroughput:         throughput,
		AverageWaitingTime:    summary.AverageWaitingTime,
		AverageResponseTime:   summary.AverageResponseTime,
		AverageTurnAroundTime: summary.AverageTurnaroundTime,
		CompletionOrder:       completionOrder,
		Details:               processDetails,
		Timeline:              schedule.Timeline,
	}
	return response, nil
}

func generateProcessDetails(process *core.Process) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      process.ID,
		ArrivalTime:    process.ArrivalTime,
		BurstTime:      process.BurstTime,
		StartTime:      process.StartTime,
		CompletionTime: process.CompletionTime,
		WaitingTime:    process.WaitingTime,
		TurnAroundTime: process.TurnaroundTime,
		ResponseTime:   process.ResponseTime,
	}
}
