package requests

import "cpu-scheduling/internal/core"

type Job struct {
	ProcessId   int `json:"id" yaml:"id"`
	ArrivalTime int `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int `json:"burst_time" yaml:"burst_time"`
}

// ScheduleRequests is the input of one run. A nil TimeQuantum means the configured
// default is used.
type ScheduleRequests struct {
	TimeQuantum *int  `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
	Jobs        []Job `json:"processes" yaml:"processes"`
}

func (r *ScheduleRequests) Processes() []core.Process {
	processes := make([]core.Process, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		processes = append(processes, core.Process{
			ID:          job.ProcessId,
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
		})
	}
	return processes
}

// Quantum returns the requested quantum or the fallback when none was given.
func (r *ScheduleRequests) Quantum(fallback int) int {
	if r.TimeQuantum == nil {
		return fallback
	}
	return *r.TimeQuantum
}
