package requests

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cpu-scheduling/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseCSV_WithHeader(t *testing.T) {
	request, err := ParseCSV(strings.NewReader("id,arrival_time,burst_time\n1,0,6\n2, 1, 4\n"))
	require.NoError(t, err)

	assert.Equal(t, []Job{{ProcessId: 1, ArrivalTime: 0, BurstTime: 6}, {ProcessId: 2, ArrivalTime: 1, BurstTime: 4}}, request.Jobs)
	assert.Nil(t, request.TimeQuantum)
}

func TestParseCSV_BadNumber(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("1,0,6\n2,x,4\n"))
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestParseCSV_ShortRow(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("1,0\n"))
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestLoadScheduleRequests_YAML(t *testing.T) {
	path := writeFile(t, "processes.yaml", `
time_quantum: 3
processes:
  - id: 1
    arrival_time: 0
    burst_time: 10
  - id: 2
    arrival_time: 1
    burst_time: 4
`)

	request, err := LoadScheduleRequests(path)
	require.NoError(t, err)
	require.NotNil(t, request.TimeQuantum)
	assert.Equal(t, 3, *request.TimeQuantum)
	assert.Equal(t, 3, request.Quantum(4))
	assert.Len(t, request.Jobs, 2)
	assert.Equal(t, core.Process{ID: 2, ArrivalTime: 1, BurstTime: 4}, request.Processes()[1])
}

func TestLoadScheduleRequests_JSON(t *testing.T) {
	path := writeFile(t, "processes.json", `{"processes":[{"id":5,"arrival_time":2,"burst_time":3}]}`)

	request, err := LoadScheduleRequests(path)
	require.NoError(t, err)
	assert.Equal(t, 4, request.Quantum(4), "missing quantum falls back")
	assert.Equal(t, []Job{{ProcessId: 5, ArrivalTime: 2, BurstTime: 3}}, request.Jobs)
}

func TestLoadScheduleRequests_Errors(t *testing.T) {
	_, err := LoadScheduleRequests(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	_, err = LoadScheduleRequests(writeFile(t, "processes.txt", "1,0,1"))
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = LoadScheduleRequests(writeFile(t, "processes.json", "{"))
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}
