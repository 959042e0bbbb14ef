package schedulers

import (
	"sort"

	"cpu-scheduling/internal/core"
)

// FirstComeFirstServe runs processes to completion in arrival order.
func FirstComeFirstServe(processes []core.Process) (*core.Schedule, error) {
	if err := validateProcesses(processes); err != nil {
		return nil, err
	}

	working := core.NewWorkingSet(processes)
	schedule := core.NewSchedule(core.FirstComeFirstServe, working)
	cpu := core.NewCpu()

	// sort jobs by arrival time
	for _, process := range byArrival(working) {
		cpu.IdleUntil(process.ArrivalTime)
		cpu.Execute(process, process.RemainingTime)
		schedule.Record(process)
	}

	return schedule.Close(cpu), nil
}

// byArrival returns a copy ordered by arrival time. Equal arrivals keep input order.
func byArrival(processes []*core.Process) []*core.Process {
	ordered := make([]*core.Process, len(processes))
	copy(ordered, processes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ArrivalTime < ordered[j].ArrivalTime
	})
	return ordered
}
