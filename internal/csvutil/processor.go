// Package csvutil parses CSV exports into typed slices.
package csvutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Row is a single CSV record with access to fields by header name.
type Row struct {
	fields  []string
	columns map[string]int
}

// Get returns the value of the named column, or "" if the column is
// absent from the file. Column matching is case-insensitive.
func (r Row) Get(name string) string {
	idx, ok := r.columns[strings.ToLower(name)]
	if !ok || idx >= len(r.fields) {
		return ""
	}
	return r.fields[idx]
}

// Has reports whether the file carries the named column.
func (r Row) Has(name string) bool {
	_, ok := r.columns[strings.ToLower(name)]
	return ok
}

// ProcessorOptions configures CSV processing behavior.
type ProcessorOptions struct {
	// RequiredColumns are header names that must be present.
	RequiredColumns []string

	// SkipInvalid controls whether to skip invalid records or return an error.
	SkipInvalid bool
}

// ProcessCSV reads a CSV file and parses each record into type T using
// the header row to resolve column positions. Export files vary in
// column order and optional columns, so parsers address fields by name.
func ProcessCSV[T any](filename string, parser func(Row) (T, error), opts ProcessorOptions) ([]T, error) {
	csvFile, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer func() { _ = csvFile.Close() }()

	if fi, err := csvFile.Stat(); err != nil || fi.Size() == 0 {
		return nil, fmt.Errorf("CSV file is empty or cannot be read")
	}

	reader := csv.NewReader(csvFile)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %v", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range opts.RequiredColumns {
		if _, ok := columns[strings.ToLower(required)]; !ok {
			return nil, fmt.Errorf("CSV file is missing required column %q", required)
		}
	}

	var items []T

	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			slog.Warn("Error reading record", "error", err)
			continue
		}

		item, err := parser(Row{fields: fields, columns: columns})
		if err != nil {
			if opts.SkipInvalid {
				slog.Warn("Skipping invalid record", "error", err)
				continue
			}
			return nil, fmt.Errorf("invalid record: %v", err)
		}

		items = append(items, item)
	}

	return items, nil
}
