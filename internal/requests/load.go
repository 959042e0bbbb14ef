package requests

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cpu-scheduling/internal/core"

	"gopkg.in/yaml.v3"
)

// LoadScheduleRequests reads a process file. The format is picked from the extension:
// .csv (id,arrival_time,burst_time), .yaml/.yml or .json.
func LoadScheduleRequests(path string) (*ScheduleRequests, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open process file: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return ParseCSV(f)
	case ".yaml", ".yml":
		return parseDocument(f, yaml.Unmarshal)
	case ".json":
		return parseDocument(f, json.Unmarshal)
	default:
		return nil, &core.ValidationError{Kind: core.ErrInvalidInput, Field: "file", Message: fmt.Sprintf("unsupported process file extension %q", ext)}
	}
}

func parseDocument(r io.Reader, unmarshal func([]byte, interface{}) error) (*ScheduleRequests, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read process file: %w", err)
	}
	var request ScheduleRequests
	if err := unmarshal(data, &request); err != nil {
		return nil, fmt.Errorf("%w: parsing process file: %v", core.ErrInvalidInput, err)
	}
	return &request, nil
}

// ParseCSV reads rows of id,arrival_time,burst_time. A first row that is not
// numeric is treated as a header.
func ParseCSV(r io.Reader) (*ScheduleRequests, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.Comment = '#'
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV: %v", core.ErrInvalidInput, err)
	}

	if len(rows) > 0 && isHeader(rows[0]) {
		rows = rows[1:]
	}

	request := &ScheduleRequests{Jobs: make([]Job, 0, len(rows))}
	for i, row := range rows {
		if len(row) < 3 {
			return nil, fmt.Errorf("%w: CSV row %d: expected 3 columns, got %d", core.ErrInvalidInput, i+1, len(row))
		}
		var values [3]int
		for c := range values {
			v, err := strconv.Atoi(strings.TrimSpace(row[c]))
			if err != nil {
				return nil, fmt.Errorf("%w: CSV row %d column %d: %v", core.ErrInvalidInput, i+1, c+1, err)
			}
			values[c] = v
		}
		request.Jobs = append(request.Jobs, Job{ProcessId: values[0], ArrivalTime: values[1], BurstTime: values[2]})
	}
	return request, nil
}

func isHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}
	_, err := strconv.Atoi(strings.TrimSpace(row[0]))
	return err != nil
}
