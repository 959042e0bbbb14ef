// Package metrics exposes Prometheus metrics about scheduling runs.
//
// Metrics:
//   - scheduler_runs_total{algorithm}: successful runs
//   - scheduler_failures_total{algorithm,kind}: rejected runs by error kind
//   - scheduler_average_waiting_time{algorithm}: distribution of per-run average waiting time
//   - scheduler_average_turnaround_time{algorithm}: same for turnaround
//   - scheduler_cpu_utilization{algorithm}: utilization of the latest run
package metrics

import (
	"cpu-scheduling/internal/core"
	"cpu-scheduling/internal/responses"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector records scheduling outcomes. A nil *Collector is valid and records nothing.
type Collector struct {
	runs           *prometheus.CounterVec
	failures       *prometheus.CounterVec
	waitingTime    *prometheus.HistogramVec
	turnaroundTime *prometheus.HistogramVec
	utilization    *prometheus.GaugeVec
}

// NewCollector creates the collector and registers it on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	buckets := prometheus.ExponentialBuckets(1, 2, 10)
	c := &Collector{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scheduler_runs_total",
			Help: "Total number of successful scheduling runs",
		}, []string{"algorithm"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scheduler_failures_total",
			Help: "Total number of rejected scheduling runs",
		}, []string{"algorithm", "kind"}),
		waitingTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "scheduler_average_waiting_time",
			Help:    "Average waiting time per run in time units",
			Buckets: buckets,
		}, []string{"algorithm"}),
		turnaroundTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "scheduler_average_turnaround_time",
			Help:    "Average turnaround time per run in time units",
			Buckets: buckets,
		}, []string{"algorithm"}),
		utilization: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "scheduler_cpu_utilization",
			Help: "CPU utilization of the latest run",
		}, []string{"algorithm"}),
	}

	reg.MustRegister(c.runs, c.failures, c.waitingTime, c.turnaroundTime, c.utilization)
	return c
}

func (c *Collector) RecordRun(response responses.ScheduleResponse) {
	if c == nil {
		return
	}
	algorithm := string(response.Algorithm)
	c.runs.WithLabelValues(algorithm).Inc()
	c.waitingTime.WithLabelValues(algorithm).Observe(response.AverageWaitingTime)
	c.turnaroundTime.WithLabelValues(algorithm).Observe(response.AverageTurnAroundTime)
	c.utilization.WithLabelValues(algorithm).Set(response.CpuUtilization)
}

func (c *Collector) RecordComparison(comparison responses.ComparisonResponse) {
	if c == nil {
		return
	}
	for _, r := range comparison.Results {
		c.RecordRun(r)
	}
}

func (c *Collector) RecordFailure(algorithm string, err error) {
	if c == nil {
		return
	}
	c.failures.WithLabelValues(algorithm, core.ErrorKind(err)).Inc()
}
