// Package resolve answers slot-filled queries against the merit record set.
// When an exact lookup comes up empty it relaxes the query along a fixed
// ladder: closest year, then alternate campus, program, and department
// suggestions.
package resolve

import (
	"regexp"
	"sort"
	"strings"

	"github.com/campusdesk/meritbot/internal/merit"
)

var campusListPattern = regexp.MustCompile(`,\s*`)

// Resolver holds the read-only record set and the canonical index. All
// methods are safe for concurrent use.
type Resolver struct {
	records []merit.Record
	index   *merit.Index
}

func New(records []merit.Record, index *merit.Index) *Resolver {
	return &Resolver{records: records, index: index}
}

// CampusLike reports whether a record's campus satisfies the requested
// filter. An empty filter matches everything; otherwise any comma-separated
// token of the filter qualifies by equality or substring containment.
func CampusLike(recordCampus, requested string) bool {
	if requested == "" {
		return true
	}
	rc := strings.ToLower(recordCampus)
	for _, tok := range campusListPattern.Split(requested, -1) {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok == "" {
			continue
		}
		if tok == rc || strings.Contains(rc, tok) {
			return true
		}
	}
	return false
}

// Lookup returns the records matching all slots exactly (campus per
// CampusLike).
func (r *Resolver) Lookup(university, campus, department, program string, year int) []merit.Record {
	var hits []merit.Record
	for _, rec := range r.records {
		if !strings.EqualFold(rec.University, university) {
			continue
		}
		if !CampusLike(rec.Campus, campus) {
			continue
		}
		if !strings.EqualFold(rec.Department, department) {
			continue
		}
		if !strings.EqualFold(rec.Program, program) {
			continue
		}
		if rec.Year != year {
			continue
		}
		hits = append(hits, rec)
	}
	return hits
}

// AvailableYears returns the sorted distinct years recorded for the triple,
// optionally narrowed by a campus filter ("" = any).
func (r *Resolver) AvailableYears(university, department, program, campus string) []int {
	seen := make(map[int]struct{})
	for _, rec := range r.records {
		if !strings.EqualFold(rec.University, university) ||
			!strings.EqualFold(rec.Department, department) ||
			!strings.EqualFold(rec.Program, program) {
			continue
		}
		if !CampusLike(rec.Campus, campus) {
			continue
		}
		seen[rec.Year] = struct{}{}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// ClosestYear picks the available year nearest to the requested one. Ties go
// to the earlier year (first found scanning ascending).
func (r *Resolver) ClosestYear(university, department, program string, year int, campus string) (int, bool) {
	years := r.AvailableYears(university, department, program, campus)
	if len(years) == 0 {
		return 0, false
	}
	best := years[0]
	for _, y := range years[1:] {
		if abs(y-year) < abs(best-year) {
			best = y
		}
	}
	return best, true
}

// CampusesOffering returns the campuses at a university that carry records
// for (department, program), optionally for one year (0 = any).
func (r *Resolver) CampusesOffering(university, department, program string, year int) []string {
	var camps []string
	for _, rec := range r.records {
		if !strings.EqualFold(rec.University, university) ||
			!strings.EqualFold(rec.Department, department) ||
			!strings.EqualFold(rec.Program, program) {
			continue
		}
		if year != 0 && rec.Year != year {
			continue
		}
		camps = append(camps, rec.Campus)
	}
	return merit.Dedup(camps)
}

// ProgramsFor returns the distinct programs recorded for a department at a
// university.
func (r *Resolver) ProgramsFor(university, department string) []string {
	var progs []string
	for _, rec := range r.records {
		if strings.EqualFold(rec.University, university) &&
			strings.EqualFold(rec.Department, department) {
			progs = append(progs, rec.Program)
		}
	}
	return merit.Dedup(progs)
}

// DepartmentsAt returns the distinct departments recorded for a university.
func (r *Resolver) DepartmentsAt(university string) []string {
	var depts []string
	for _, rec := range r.records {
		if strings.EqualFold(rec.University, university) {
			depts = append(depts, rec.Department)
		}
	}
	return merit.Dedup(depts)
}

// AdjustDepartment remaps computing-flavoured departments to the umbrella
// "Computing" department at universities that file CS, SE, and Cyber under
// it instead of listing them separately.
func (r *Resolver) AdjustDepartment(university, department string) string {
	if university == "" || department == "" {
		return department
	}
	switch strings.ToLower(department) {
	case "computer science", "software engineering", "cyber security":
	default:
		return department
	}
	hasCS, hasComputing := false, false
	for _, d := range r.DepartmentsAt(university) {
		switch strings.ToLower(d) {
		case "computer science":
			hasCS = true
		case "computing":
			hasComputing = true
		}
	}
	if !hasCS && hasComputing {
		return "Computing"
	}
	return department
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
