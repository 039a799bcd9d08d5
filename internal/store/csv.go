package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/campusdesk/meritbot/internal/merit"
)

// ImportCSV loads rows from a CSV export into merit_records, tolerating the
// header spellings seen in the wild ("Minimum Merit", "MinimumMerit",
// "minimum_merit"). Rows whose year or merit values fail to parse are
// skipped. Returns the number of rows inserted.
func (s *Store) ImportCSV(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read csv header: %w", err)
	}
	columns := headerIndex(header)

	inserted := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return inserted, fmt.Errorf("read csv row: %w", err)
		}
		rec, ok := parseRow(columns, row)
		if !ok {
			continue
		}
		_, err = s.pool.Exec(ctx, `
			INSERT INTO merit_records (university, campus, department, program, year, minimum_merit, maximum_merit)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			rec.University, rec.Campus, rec.Department, rec.Program, rec.Year, rec.MinimumMerit, rec.MaximumMerit,
		)
		if err != nil {
			return inserted, fmt.Errorf("insert record: %w", err)
		}
		inserted++
	}
	return inserted, nil
}

// headerIndex maps canonical column keys to positions. Header cells are
// matched case-insensitively with spaces and underscores removed, so
// "Minimum Merit" and "minimum_merit" both land on "minimummerit".
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, cell := range header {
		key := strings.ToLower(strings.TrimSpace(cell))
		key = strings.ReplaceAll(key, " ", "")
		key = strings.ReplaceAll(key, "_", "")
		if _, seen := idx[key]; !seen {
			idx[key] = i
		}
	}
	return idx
}

// parseRow coerces one CSV row. Missing columns default to empty / zero;
// unparsable numeric fields reject the row.
func parseRow(columns map[string]int, row []string) (merit.Record, bool) {
	field := func(key string) string {
		i, ok := columns[key]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	yearText := field("year")
	if yearText == "" {
		yearText = "0"
	}
	year, err := strconv.Atoi(yearText)
	if err != nil {
		return merit.Record{}, false
	}

	parseMerit := func(key string) (float64, bool) {
		text := field(key)
		if text == "" {
			return 0, true
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	minMerit, ok := parseMerit("minimummerit")
	if !ok {
		return merit.Record{}, false
	}
	maxMerit, ok := parseMerit("maximummerit")
	if !ok {
		return merit.Record{}, false
	}

	return merit.Record{
		University:   field("university"),
		Campus:       field("campus"),
		Department:   field("department"),
		Program:      field("program"),
		Year:         year,
		MinimumMerit: minMerit,
		MaximumMerit: maxMerit,
	}, true
}
