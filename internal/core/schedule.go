package core

type Algorithm string

const (
	FirstComeFirstServe Algorithm = "fcfs"
	ShortestJobFirst    Algorithm = "sjf"
	RoundRobin          Algorithm = "rr"
)

// Algorithms lists the supported disciplines in comparison order.
var Algorithms = []Algorithm{FirstComeFirstServe, ShortestJobFirst, RoundRobin}

func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms {
		if string(a) == name {
			return a, nil
		}
	}
	return "", &ValidationError{Kind: ErrInvalidConfiguration, Field: "algorithm", Message: "unknown algorithm " + name}
}

func (a Algorithm) Title() string {
	switch a {
	case FirstComeFirstServe:
		return "First-come, first-serve"
	case ShortestJobFirst:
		return "Shortest-job-first"
	case RoundRobin:
		return "Round-robin"
	}
	return string(a)
}

// Completion is a finishing event of a process.
type Completion struct {
	Process        *Process
	CompletionTime int
}

// Schedule is the outcome of one scheduling run.
type Schedule struct {
	Algorithm   Algorithm
	TimeQuantum int
	// Processes keeps the input order.
	Processes []*Process
	// Completions is ordered by finishing time.
	Completions []Completion
	Timeline    []TimeSlice
	Metric      CpuMetric
}

func NewSchedule(algorithm Algorithm, processes []*Process) *Schedule {
	return &Schedule{
		Algorithm:   algorithm,
		Processes:   processes,
		Completions: make([]Completion, 0, len(processes)),
	}
}

// Record appends a finished process to the completion order.
func (s *Schedule) Record(p *Process) {
	s.Completions = append(s.Completions, Completion{Process: p, CompletionTime: p.CompletionTime})
}

// Close copies the CPU trace into the schedule.
func (s *Schedule) Close(cpu *Cpu) *Schedule {
	s.Timeline = cpu.Timeline()
	s.Metric = cpu.Metric()
	return s
}

type Summary struct {
	AverageWaitingTime    float64
	AverageTurnaroundTime float64
	AverageResponseTime   float64
}
