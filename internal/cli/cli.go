// Package cli builds the cpu-scheduler command line.
//
//	cpu-scheduler [--config file]
//	├── run     simulate a process file and print the report
//	└── serve   start the HTTP API (and /metrics when enabled)
package cli

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cpu-scheduling/api"
	"cpu-scheduling/config"
	"cpu-scheduling/internal/core"
	"cpu-scheduling/internal/metrics"
	"cpu-scheduling/internal/report"
	"cpu-scheduling/internal/requests"
	"cpu-scheduling/internal/schedulers"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var configFile string

func BuildCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cpu-scheduler",
		Short: "Simulate FCFS, SJF and Round-Robin CPU scheduling",
		Long: `cpu-scheduler computes completion, waiting and turnaround times of a
process set under First-Come-First-Served, non-preemptive Shortest-Job-First
and Round-Robin scheduling, and compares their averages.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (YAML)")

	rootCmd.AddCommand(buildRunCommand())
	rootCmd.AddCommand(buildServeCommand())

	return rootCmd
}

func buildRunCommand() *cobra.Command {
	var file string
	var algorithm string
	var quantum int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a scheduling simulation on a process file",
		Long:  "Read processes from a CSV, YAML or JSON file and print the schedule of one or all algorithms.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadSchedulerConfig(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			request, err := requests.LoadScheduleRequests(file)
			if err != nil {
				return err
			}

			timeQuantum := request.Quantum(cfg.RoundRobinTimeQuantum)
			if cmd.Flags().Changed("quantum") {
				timeQuantum = quantum
			}
			return runSimulation(cmd, request, algorithm, timeQuantum)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "process file (.csv, .yaml, .json)")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "all", "fcfs, sjf, rr or all")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "round-robin time quantum (overrides file and config)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runSimulation(cmd *cobra.Command, request *requests.ScheduleRequests, algorithm string, timeQuantum int) error {
	out := cmd.OutOrStdout()
	if algorithm == "all" {
		comparison, err := schedulers.ScheduleAllAlgorithms(request, timeQuantum)
		if err != nil {
			return err
		}
		report.RenderComparison(out, comparison)
		return nil
	}

	a, err := core.ParseAlgorithm(algorithm)
	if err != nil {
		return err
	}
	response, err := schedulers.Schedule(a, request, timeQuantum)
	if err != nil {
		return err
	}
	report.RenderSchedule(out, response)
	return nil
}

func buildServeCommand() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the scheduling HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadSchedulerConfig(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			return serve(cfg)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "API port (overrides config)")
	return cmd
}

func serve(cfg *config.SchedulerConfig) error {
	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		collector = metrics.NewCollector(reg)
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			addr := fmt.Sprintf(":%d", cfg.MetricsPort)
			log.Printf("Starting metrics server on %s\n", addr)
			if err := http.ListenAndServe(addr, mux); err != nil {
				log.Printf("Metrics server error: %v\n", err)
			}
		}()
	}

	app := api.NewApp(api.NewSchedulerHandlerImpl(cfg, collector))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal, stopping gracefully...")
		_ = app.Shutdown()
	}()

	log.Printf("Scheduler API listening on :%d (round-robin quantum %d)\n", cfg.Port, cfg.RoundRobinTimeQuantum)
	return app.Listen(fmt.Sprintf(":%d", cfg.Port))
}
