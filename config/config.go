package config

import (
	"fmt"
	"strings"

	"cpu-scheduling/internal/core"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	MetricsEnabled        bool
	MetricsPort           int
}

// LoadSchedulerConfig reads the YAML file at path on top of the defaults.
// An empty path uses defaults and SCHEDULER_* environment variables only.
func LoadSchedulerConfig(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 4)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.port", 9090)

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		MetricsEnabled:        v.GetBool("metrics.enabled"),
		MetricsPort:           v.GetInt("metrics.port"),
	}
	if config.RoundRobinTimeQuantum <= 0 {
		return nil, &core.ValidationError{
			Kind:    core.ErrInvalidConfiguration,
			Field:   "scheduler.round_robin.time_quantum",
			Message: fmt.Sprintf("must be positive, got %d", config.RoundRobinTimeQuantum),
		}
	}
	return config, nil
}
