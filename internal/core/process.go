package core

// Process is a unit of work. ArrivalTime and BurstTime are supplied by the caller,
// everything else is filled in by the scheduler that owns the record.
type Process struct {
	ID          int
	ArrivalTime int
	BurstTime   int

	RemainingTime  int
	StartTime      int
	CompletionTime int
	WaitingTime    int
	TurnaroundTime int
	ResponseTime   int

	started  bool
	finished bool
}

func (p *Process) Started() bool {
	return p.started
}

func (p *Process) Finished() bool {
	return p.finished
}

// complete records the completion time once and derives the other metrics from it.
func (p *Process) complete(at int) {
	if p.finished {
		return
	}
	p.finished = true
	p.CompletionTime = at
	p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
}

func (p *Process) start(at int) {
	if p.started {
		return
	}
	p.started = true
	p.StartTime = at
	p.ResponseTime = at - p.ArrivalTime
}

// NewWorkingSet copies the descriptors into fresh records, so a run never aliases
// the caller's slice. Order is preserved.
func NewWorkingSet(descriptors []Process) []*Process {
	working := make([]*Process, 0, len(descriptors))
	for _, d := range descriptors {
		working = append(working, &Process{
			ID:            d.ID,
			ArrivalTime:   d.ArrivalTime,
			BurstTime:     d.BurstTime,
			RemainingTime: d.BurstTime,
		})
	}
	return working
}
