package resolve

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/campusdesk/meritbot/internal/merit"
)

var multiCampusPattern = regexp.MustCompile(`(?i)\band\b|&`)

// Reply resolves the slot set and composes the user-facing answer. It never
// returns an empty string: every miss falls through the fallback ladder to
// an explanatory sentence.
func (r *Resolver) Reply(university, campus, department, program string, year int) string {
	if campus != "" && (strings.Contains(campus, ",") || multiCampusPattern.MatchString(campus)) {
		return r.multiCampusReply(university, campus, department, program, year)
	}
	return r.singleReply(university, campus, department, program, year)
}

// multiCampusReply answers one line per requested campus, each independently
// subject to the closest-year and not-offered fallbacks.
func (r *Resolver) multiCampusReply(university, campus, department, program string, year int) string {
	var lines []string
	for _, c := range campusListPattern.Split(campus, -1) {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		lines = append(lines, r.campusLine(university, c, department, program, year))
	}
	return fmt.Sprintf("Merits for %s %s at %s in %d:\n%s",
		program, department, university, year, strings.Join(lines, "\n"))
}

func (r *Resolver) campusLine(university, campus, department, program string, year int) string {
	rows := r.Lookup(university, campus, department, program, year)
	if len(rows) > 0 {
		return fmt.Sprintf("%s: %s", campus, meritLine(rows[0]))
	}

	if cy, ok := r.ClosestYear(university, department, program, year, campus); ok {
		if fallback := r.Lookup(university, campus, department, program, cy); len(fallback) > 0 {
			return fmt.Sprintf("%s (showing %d): %s", campus, cy, meritLine(fallback[0]))
		}
	}

	offered := r.CampusesOffering(university, department, program, 0)
	if len(offered) > 0 && !containsFold(offered, campus) {
		return fmt.Sprintf("%s: %s %s is not offered here. Try: %s.",
			campus, program, department, strings.Join(offered, ", "))
	}
	return fmt.Sprintf("%s: No data for %d.", campus, year)
}

func (r *Resolver) singleReply(university, campus, department, program string, year int) string {
	rows := r.Lookup(university, campus, department, program, year)
	if len(rows) == 1 {
		rec := rows[0]
		return fmt.Sprintf("The merit for %s %s at %s%s in %d is: %s.",
			rec.Program, rec.Department, rec.University, campusParen(rec.Campus), rec.Year, meritLine(rec))
	}
	if len(rows) > 1 {
		lines := make([]string, 0, len(rows))
		for _, rec := range rows {
			lines = append(lines, fmt.Sprintf("- %s: %s", rec.Campus, meritLine(rec)))
		}
		return fmt.Sprintf("Multiple campuses found for %s %s at %s in %d:\n%s\nIf you want one campus, say e.g. 'FAST Islamabad'.",
			program, department, university, year, strings.Join(lines, "\n"))
	}

	// Closest-year fallback before any not-offered diagnosis.
	if cy, ok := r.ClosestYear(university, department, program, year, campus); ok {
		if fallback := r.Lookup(university, campus, department, program, cy); len(fallback) > 0 {
			rec := fallback[0]
			return fmt.Sprintf("No data for %d. Showing closest available year (%d) for %s %s at %s%s: %s.",
				year, cy, program, department, university, campusParen(rec.Campus), meritLine(rec))
		}
	}

	// A named campus that never carries the triple: point at campuses or
	// programs that exist instead.
	if campus != "" {
		if len(r.AvailableYears(university, department, program, campus)) == 0 {
			if offered := r.CampusesOffering(university, department, program, 0); len(offered) > 0 {
				return fmt.Sprintf("%s %s is not offered at %s (%s). It is available at: %s.",
					program, department, university, campus, strings.Join(offered, ", "))
			}
			if progs := r.ProgramsFor(university, department); len(progs) > 0 {
				return fmt.Sprintf("%s is not offered for %s at %s (%s). Available programs here: %s.",
					program, department, university, campus, strings.Join(progs, ", "))
			}
			depts := r.DepartmentsAt(university)
			return fmt.Sprintf("%s %s is not available at %s. Departments at %s: %s.",
				program, department, university, university, strings.Join(depts, ", "))
		}
	}

	if progs := r.ProgramsFor(university, department); len(progs) > 0 {
		return fmt.Sprintf("No %s data found for %s at %s in %d. Available programs for this department: %s.",
			program, department, university, year, strings.Join(progs, ", "))
	}
	if camps, ok := r.index.CampusesFor(university); ok {
		depts := r.DepartmentsAt(university)
		return fmt.Sprintf("No match found. %s campuses: %s. Departments: %s",
			university, strings.Join(camps, ", "), strings.Join(depts, ", "))
	}
	return "Sorry, nothing matched."
}

func meritLine(rec merit.Record) string {
	return fmt.Sprintf("min %s%% / max %s%%", formatMerit(rec.MinimumMerit), formatMerit(rec.MaximumMerit))
}

// formatMerit renders 85.0 as "85" and 92.5 as "92.5".
func formatMerit(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func campusParen(campus string) string {
	if campus == "" {
		return ""
	}
	return fmt.Sprintf(" (%s)", campus)
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
