package responses

import "cpu-scheduling/internal/core"

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	ArrivalTime    int `json:"arrival_time"`
	BurstTime      int `json:"burst_time"`
	StartTime      int `json:"start_time"`
	CompletionTime int `json:"completion_time"`
	WaitingTime    int `json:"waiting_time"`
	TurnAroundTime int `json:"turn_around_time"`
	ResponseTime   int `json:"response_time"`
}
type ScheduleResponse struct {
	Algorithm             core.Algorithm    `json:"algorithm"`
	TimeQuantum           int               `json:"time_quantum,omitempty"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	CompletionOrder       []int             `json:"completion_order"`
	Details               []ProcessResponse `json:"details"`
	Timeline              []core.TimeSlice  `json:"timeline"`
}

type ComparisonResponse struct {
	Best    core.Algorithm     `json:"best"`
	Results []ScheduleResponse `json:"results"`
}
