//go:build integration

package store

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	s, err := New(ctx, dbURL)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	if err := s.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	t.Cleanup(func() {
		s.Close()
	})
	return s
}

func TestIntegration_InsertAndLoad(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	university := "IT-" + uuid.New().String()[:8]

	_, err := s.pool.Exec(ctx, `
		INSERT INTO merit_records (university, campus, department, program, year, minimum_merit, maximum_merit)
		VALUES ($1, 'Islamabad', 'Computer Science', 'BS', 2024, 85, 92.5)`, university)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	t.Cleanup(func() {
		s.pool.Exec(ctx, "DELETE FROM merit_records WHERE university = $1", university)
	})

	count, err := s.CountRecords(ctx)
	if err != nil {
		t.Fatalf("CountRecords failed: %v", err)
	}
	if count < 1 {
		t.Errorf("expected at least 1 record, got %d", count)
	}

	records, err := s.LoadRecords(ctx)
	if err != nil {
		t.Fatalf("LoadRecords failed: %v", err)
	}
	found := false
	for _, r := range records {
		if r.University != university {
			continue
		}
		found = true
		if r.Campus != "Islamabad" || r.Department != "Computer Science" || r.Program != "BS" {
			t.Errorf("unexpected record %+v", r)
		}
		if r.Year != 2024 || r.MinimumMerit != 85 || r.MaximumMerit != 92.5 {
			t.Errorf("unexpected record values %+v", r)
		}
	}
	if !found {
		t.Errorf("inserted record for %s not returned by LoadRecords", university)
	}
}

func TestIntegration_ImportCSV(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	university := "IT-" + uuid.New().String()[:8]

	path := filepath.Join(t.TempDir(), "merits.csv")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create csv: %v", err)
	}
	w := csv.NewWriter(f)
	rows := [][]string{
		{"University", "Campus", "Department", "Program", "Year", "Minimum Merit", "Maximum Merit"},
		{university, "Islamabad", "Computer Science", "BS", "2024", "85", "92.5"},
		{university, "Lahore", "Computer Science", "BS", "2024", "82", "90"},
		{university, "Lahore", "Computer Science", "BS", "bad-year", "82", "90"},
	}
	if err := w.WriteAll(rows); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close csv: %v", err)
	}
	t.Cleanup(func() {
		s.pool.Exec(ctx, "DELETE FROM merit_records WHERE university = $1", university)
	})

	inserted, err := s.ImportCSV(ctx, path)
	if err != nil {
		t.Fatalf("ImportCSV failed: %v", err)
	}
	if inserted != 2 {
		t.Errorf("expected 2 rows inserted (bad-year row skipped), got %d", inserted)
	}

	var count int
	err = s.pool.QueryRow(ctx, "SELECT count(*) FROM merit_records WHERE university = $1", university).Scan(&count)
	if err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 rows in table, got %d", count)
	}
}
