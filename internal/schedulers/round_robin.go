package schedulers

import "cpu-scheduling/internal/core"

// ProcessQueue is the FIFO ready queue. Membership is tracked by process id.
type ProcessQueue struct {
	queue   []*core.Process
	members map[int]struct{}
}

func NewProcessQueue() *ProcessQueue {
	return &ProcessQueue{queue: make([]*core.Process, 0), members: make(map[int]struct{})}
}

// AddToEnd enqueues the process unless it is already waiting.
func (p *ProcessQueue) AddToEnd(process *core.Process) bool {
	if p.Contains(process.ID) {
		return false
	}
	p.queue = append(p.queue, process)
	p.members[process.ID] = struct{}{}
	return true
}

func (p *ProcessQueue) RemoveFromTop() (*core.Process, bool) {
	if len(p.queue) == 0 {
		return nil, false
	}
	item := p.queue[0]
	p.queue = p.queue[1:]
	delete(p.members, item.ID)
	return item, true
}

func (p *ProcessQueue) Contains(id int) bool {
	_, ok := p.members[id]
	return ok
}

func (p *ProcessQueue) Len() int {
	return len(p.queue)
}

// RoundRobin rotates ready processes through slices of timeQuantum. Processes
// arriving during a slice are queued before the preempted one goes back to the tail.
func RoundRobin(processes []core.Process, timeQuantum int) (*core.Schedule, error) {
	if err := validateTimeQuantum(timeQuantum); err != nil {
		return nil, err
	}
	if err := validateProcesses(processes); err != nil {
		return nil, err
	}

	working := core.NewWorkingSet(processes)
	schedule := core.NewSchedule(core.RoundRobin, working)
	schedule.TimeQuantum = timeQuantum
	cpu := core.NewCpu()

	arrivals := byArrival(working)
	admitted := 0
	readyQueue := NewProcessQueue()
	admit := func() {
		for admitted < len(arrivals) && arrivals[admitted].ArrivalTime <= cpu.Clock() {
			readyQueue.AddToEnd(arrivals[admitted])
			admitted++
		}
	}

	admit()
	for finished := 0; finished < len(working); {
		process, ok := readyQueue.RemoveFromTop()
		if !ok {
			cpu.IdleUntil(arrivals[admitted].ArrivalTime)
			admit()
			continue
		}

		cpu.Execute(process, timeQuantum)
		admit()

		if process.Finished() {
			schedule.Record(process)
			finished++
			continue
		}
		// context switch
		readyQueue.AddToEnd(process)
	}

	return schedule.Close(cpu), nil
}
