package schedulers

import (
	"fmt"

	"cpu-scheduling/internal/core"
)

// validateProcesses rejects the run before any simulation happens.
func validateProcesses(processes []core.Process) error {
	if len(processes) == 0 {
		return &core.ValidationError{Kind: core.ErrInvalidInput, Field: "processes", Message: "at least one process is required"}
	}

	seen := make(map[int]struct{}, len(processes))
	for _, p := range processes {
		id := p.ID
		if _, ok := seen[id]; ok {
			return &core.ValidationError{Kind: core.ErrDuplicateIdentifier, Field: "id", ProcessID: &id, Message: "id already used"}
		}
		seen[id] = struct{}{}

		if p.BurstTime <= 0 {
			return &core.ValidationError{Kind: core.ErrInvalidInput, Field: "burst_time", ProcessID: &id, Message: fmt.Sprintf("must be positive, got %d", p.BurstTime)}
		}
		if p.ArrivalTime < 0 {
			return &core.ValidationError{Kind: core.ErrInvalidInput, Field: "arrival_time", ProcessID: &id, Message: fmt.Sprintf("must not be negative, got %d", p.ArrivalTime)}
		}
	}
	return nil
}

func validateTimeQuantum(timeQuantum int) error {
	if timeQuantum <= 0 {
		return &core.ValidationError{Kind: core.ErrInvalidConfiguration, Field: "time_quantum", Message: fmt.Sprintf("must be positive, got %d", timeQuantum)}
	}
	return nil
}
