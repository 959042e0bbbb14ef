package schedulers

import (
	"cpu-scheduling/internal/core"
	"cpu-scheduling/internal/requests"
	"cpu-scheduling/internal/responses"
)

func ScheduleFirstComeFirstServe(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	schedule, err := FirstComeFirstServe(request.Processes())
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return generateResponse(schedule)
}

func ScheduleShortestJobFirst(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	schedule, err := ShortestJobFirst(request.Processes())
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return generateResponse(schedule)
}

func ScheduleRoundRobin(request *requests.ScheduleRequests, timeQuantum int) (responses.ScheduleResponse, error) {
	schedule, err := RoundRobin(request.Processes(), timeQuantum)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return generateResponse(schedule)
}

// Schedule dispatches to the named algorithm. timeQuantum only matters for round-robin.
func Schedule(algorithm core.Algorithm, request *requests.ScheduleRequests, timeQuantum int) (responses.ScheduleResponse, error) {
	switch algorithm {
	case core.FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(request)
	case core.ShortestJobFirst:
		return ScheduleShortestJobFirst(request)
	case core.RoundRobin:
		return ScheduleRoundRobin(request, timeQuantum)
	}
	return responses.ScheduleResponse{}, &core.ValidationError{Kind: core.ErrInvalidConfiguration, Field: "algorithm", Message: "unknown algorithm " + string(algorithm)}
}

// ScheduleAllAlgorithms runs every algorithm on the same input. Each run works on its
// own copy. Best is the lowest average waiting time, earlier algorithms win ties.
func ScheduleAllAlgorithms(request *requests.ScheduleRequests, timeQuantum int) (responses.ComparisonResponse, error) {
	// fail fast on the quantum so no algorithm runs on a bad configuration
	if err := validateTimeQuantum(timeQuantum); err != nil {
		return responses.ComparisonResponse{}, err
	}

	comparison := responses.ComparisonResponse{Results: make([]responses.ScheduleResponse, 0, len(core.Algorithms))}
	for _, algorithm := range core.Algorithms {
		response, err := Schedule(algorithm, request, timeQuantum)
		if err != nil {
			return responses.ComparisonResponse{}, err
		}
		comparison.Results = append(comparison.Results, response)
	}

	best := comparison.Results[0]
	for _, r := range comparison.Results[1:] {
		if r.AverageWaitingTime < best.AverageWaitingTime {
			best = r
		}
	}
	comparison.Best = best.Algorithm
	return comparison, nil
}
