package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/campusdesk/meritbot/internal/merit"
)

// CountRecords returns the number of rows in merit_records.
func (s *Store) CountRecords(ctx context.Context) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM merit_records`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return count, nil
}

// LoadRecords bulk-reads the whole table. Fields come back trimmed; the
// order is fixed so vocabulary first-seen casing is reproducible across
// restarts.
func (s *Store) LoadRecords(ctx context.Context) ([]merit.Record, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT university, campus, department, program, year, minimum_merit, maximum_merit
		FROM merit_records
		ORDER BY university, campus, department, program, year`)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	defer rows.Close()

	var records []merit.Record
	for rows.Next() {
		var r merit.Record
		if err := rows.Scan(&r.University, &r.Campus, &r.Department, &r.Program, &r.Year, &r.MinimumMerit, &r.MaximumMerit); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		r.University = strings.TrimSpace(r.University)
		r.Campus = strings.TrimSpace(r.Campus)
		r.Department = strings.TrimSpace(r.Department)
		r.Program = strings.TrimSpace(r.Program)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}
