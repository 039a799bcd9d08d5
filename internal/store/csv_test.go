package store

import (
	"testing"

	"github.com/campusdesk/meritbot/internal/merit"
)

func TestHeaderIndex(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		key    string
		want   int
	}{
		{"plain lower", []string{"university", "campus"}, "campus", 1},
		{"spaced title case", []string{"University", "Minimum Merit"}, "minimummerit", 1},
		{"underscored", []string{"minimum_merit", "maximum_merit"}, "maximummerit", 1},
		{"padded", []string{" Year ", "Program"}, "year", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := headerIndex(tt.header)
			got, ok := idx[tt.key]
			if !ok {
				t.Fatalf("headerIndex(%v) missing key %q: %v", tt.header, tt.key, idx)
			}
			if got != tt.want {
				t.Errorf("headerIndex(%v)[%q] = %d, want %d", tt.header, tt.key, got, tt.want)
			}
		})
	}
}

func TestHeaderIndex_FirstDuplicateWins(t *testing.T) {
	idx := headerIndex([]string{"year", "Year"})
	if idx["year"] != 0 {
		t.Errorf("idx[year] = %d, want 0", idx["year"])
	}
}

func TestParseRow(t *testing.T) {
	columns := headerIndex([]string{"University", "Campus", "Department", "Program", "Year", "Minimum Merit", "Maximum Merit"})

	tests := []struct {
		name   string
		row    []string
		want   merit.Record
		wantOK bool
	}{
		{
			name:   "complete row",
			row:    []string{"FAST", "Islamabad", "Computer Science", "BS", "2024", "85", "92.5"},
			want:   merit.Record{University: "FAST", Campus: "Islamabad", Department: "Computer Science", Program: "BS", Year: 2024, MinimumMerit: 85, MaximumMerit: 92.5},
			wantOK: true,
		},
		{
			name:   "whitespace trimmed",
			row:    []string{" FAST ", " Islamabad ", "CS", "BS", " 2024 ", " 85 ", "90"},
			want:   merit.Record{University: "FAST", Campus: "Islamabad", Department: "CS", Program: "BS", Year: 2024, MinimumMerit: 85, MaximumMerit: 90},
			wantOK: true,
		},
		{
			name:   "missing year defaults to zero",
			row:    []string{"FAST", "Islamabad", "CS", "BS", "", "85", "90"},
			want:   merit.Record{University: "FAST", Campus: "Islamabad", Department: "CS", Program: "BS", MinimumMerit: 85, MaximumMerit: 90},
			wantOK: true,
		},
		{
			name:   "missing merits default to zero",
			row:    []string{"FAST", "Islamabad", "CS", "BS", "2024", "", ""},
			want:   merit.Record{University: "FAST", Campus: "Islamabad", Department: "CS", Program: "BS", Year: 2024},
			wantOK: true,
		},
		{
			name:   "short row",
			row:    []string{"FAST", "Islamabad"},
			want:   merit.Record{University: "FAST", Campus: "Islamabad"},
			wantOK: true,
		},
		{
			name:   "bad year rejects row",
			row:    []string{"FAST", "Islamabad", "CS", "BS", "twenty24", "85", "90"},
			wantOK: false,
		},
		{
			name:   "bad merit rejects row",
			row:    []string{"FAST", "Islamabad", "CS", "BS", "2024", "eighty", "90"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseRow(columns, tt.row)
			if ok != tt.wantOK {
				t.Fatalf("parseRow ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("parseRow = %+v, want %+v", got, tt.want)
			}
		})
	}
}
