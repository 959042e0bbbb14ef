package core

// TimeSlice is one contiguous stretch of CPU time given to a process.
type TimeSlice struct {
	ProcessID int `json:"process_id"`
	Start     int `json:"start"`
	Stop      int `json:"stop"`
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Utilization is the busy share of the total time, 0 for an empty run.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

// Cpu is a single simulated core driven by a unitless integer clock.
type Cpu struct {
	clock    int
	timeline []TimeSlice
	metric   CpuMetric
}

func NewCpu() *Cpu {
	return &Cpu{timeline: make([]TimeSlice, 0)}
}

func (c *Cpu) Clock() int {
	return c.clock
}

// IdleUntil advances the clock to t without executing anything. Earlier instants are ignored.
func (c *Cpu) IdleUntil(t int) {
	if t <= c.clock {
		return
	}
	c.metric.IdleTime += t - c.clock
	c.clock = t
}

// Execute runs the process for at most slice units and returns how long it ran.
// The process is completed when its remaining time reaches zero.
func (c *Cpu) Execute(p *Process, slice int) int {
	if p.finished || slice <= 0 {
		return 0
	}
	run := slice
	if p.RemainingTime < run {
		run = p.RemainingTime
	}

	p.start(c.clock)
	c.timeline = append(c.timeline, TimeSlice{ProcessID: p.ID, Start: c.clock, Stop: c.clock + run})
	c.clock += run
	c.metric.UtilizationTime += run
	p.RemainingTime -= run

	if p.RemainingTime == 0 {
		p.complete(c.clock)
	}
	return run
}

func (c *Cpu) Timeline() []TimeSlice {
	out := make([]TimeSlice, len(c.timeline))
	copy(out, c.timeline)
	return out
}

func (c *Cpu) Metric() CpuMetric {
	m := c.metric
	m.TotalTime = c.clock
	return m
}
