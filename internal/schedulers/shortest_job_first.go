package schedulers

import "cpu-scheduling/internal/core"

// ShortestJobFirst is the non-preemptive variant: once picked, a process runs to
// completion even if a shorter one arrives meanwhile.
func ShortestJobFirst(processes []core.Process) (*core.Schedule, error) {
	if err := validateProcesses(processes); err != nil {
		return nil, err
	}

	working := core.NewWorkingSet(processes)
	schedule := core.NewSchedule(core.ShortestJobFirst, working)
	cpu := core.NewCpu()

	for remaining := len(working); remaining > 0; remaining-- {
		shortestJob := pickShortestJob(working, cpu.Clock())
		if shortestJob == nil {
			cpu.IdleUntil(nextArrival(working))
			shortestJob = pickShortestJob(working, cpu.Clock())
		}
		cpu.Execute(shortestJob, shortestJob.RemainingTime)
		schedule.Record(shortestJob)
	}

	return schedule.Close(cpu), nil
}

// pickShortestJob selects among arrived, unfinished processes the smallest burst,
// then the earliest arrival, then the earliest input position.
func pickShortestJob(processes []*core.Process, clock int) *core.Process {
	var best *core.Process
	for _, p := range processes {
		if p.Finished() || p.ArrivalTime > clock {
			continue
		}
		if best == nil ||
			p.BurstTime < best.BurstTime ||
			(p.BurstTime == best.BurstTime && p.ArrivalTime < best.ArrivalTime) {
			best = p
		}
	}
	return best
}

func nextArrival(processes []*core.Process) int {
	next := -1
	for _, p := range processes {
		if p.Finished() {
			continue
		}
		if next == -1 || p.ArrivalTime < next {
			next = p.ArrivalTime
		}
	}
	return next
}
