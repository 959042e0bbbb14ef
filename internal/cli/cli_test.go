package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"cpu-scheduling/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProcessFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configFile = ""
	cmd := BuildCLI()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBuildCLI(t *testing.T) {
	cmd := BuildCLI()

	assert.Equal(t, "cpu-scheduler", cmd.Use)
	assert.Equal(t, "1.0.0", cmd.Version)

	names := make(map[string]bool)
	for _, c := range cmd.Commands() {
		names[c.Use] = true
	}
	assert.True(t, names["run"], "Should have 'run' command")
	assert.True(t, names["serve"], "Should have 'serve' command")

	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
}

func TestBuildRunCommand(t *testing.T) {
	cmd := buildRunCommand()

	fileFlag := cmd.Flags().Lookup("file")
	require.NotNil(t, fileFlag)
	assert.Equal(t, "f", fileFlag.Shorthand)
	assert.Equal(t, "all", cmd.Flags().Lookup("algorithm").DefValue)
	assert.NotNil(t, cmd.RunE)
}

func TestRun_AllAlgorithms(t *testing.T) {
	path := writeProcessFile(t, "processes.csv", "id,arrival_time,burst_time\n1,0,6\n2,1,4\n3,2,8\n4,3,5\n")

	out, err := execute(t, "run", "-f", path)
	require.NoError(t, err)

	assert.Contains(t, out, "First-come, first-serve")
	assert.Contains(t, out, "Shortest-job-first")
	assert.Contains(t, out, "Round-robin (quantum 4)")
	assert.Contains(t, out, "Lowest average waiting time: Shortest-job-first")
}

func TestRun_SingleAlgorithmWithQuantumFlag(t *testing.T) {
	path := writeProcessFile(t, "processes.yaml", "time_quantum: 3\nprocesses:\n  - {id: 1, arrival_time: 0, burst_time: 5}\n")

	out, err := execute(t, "run", "-f", path, "-a", "rr", "-q", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Round-robin (quantum 2)")
}

func TestRun_Errors(t *testing.T) {
	path := writeProcessFile(t, "processes.csv", "1,0,6\n")

	_, err := execute(t, "run", "-f", path, "-a", "rr", "-q", "0")
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)

	_, err = execute(t, "run", "-f", path, "-a", "lottery")
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)

	_, err = execute(t, "run", "-f", writeProcessFile(t, "dup.csv", "1,0,6\n1,2,3\n"), "-a", "fcfs")
	assert.ErrorIs(t, err, core.ErrDuplicateIdentifier)

	_, err = execute(t, "run")
	assert.Error(t, err, "--file is required")
}
