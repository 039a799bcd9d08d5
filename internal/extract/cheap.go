// Package extract pulls candidate slot values out of raw user text. The
// cheap extractor is deterministic and local; the oracle is an optional
// LLM-backed pass whose output is merged in when available.
package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/campusdesk/meritbot/internal/merit"
)

const (
	universityTokenCutoff = 0.80
	departmentTokenCutoff = 0.83
)

var (
	longTokenPattern  = regexp.MustCompile(`[A-Za-z0-9']{3,}`)
	shortTokenPattern = regexp.MustCompile(`[A-Za-z0-9']{2,}`)
	lastYearPattern   = regexp.MustCompile(`(?i)\blast\s+year\b`)
	yearPattern       = regexp.MustCompile(`\b(20\d{2}|19\d{2})\b`)
)

type aliasMatcher struct {
	pattern   *regexp.Regexp
	canonical string
}

// Extractor scans messages with substring, alias, and token-level fuzzy
// heuristics. It holds no mutable state and is safe for concurrent use.
type Extractor struct {
	index *merit.Index

	departmentAliases []aliasMatcher
	programAliases    []aliasMatcher
	campusAliases     []aliasMatcher

	// Now is the clock used for year defaults; replaceable in tests.
	Now func() time.Time
}

func New(index *merit.Index, aliases *merit.Aliases) *Extractor {
	return &Extractor{
		index:             index,
		departmentAliases: compileAliases(aliases.Departments),
		programAliases:    compileAliases(aliases.Programs),
		campusAliases:     compileAliases(aliases.Campuses),
		Now:               time.Now,
	}
}

func compileAliases(table *merit.AliasTable) []aliasMatcher {
	pairs := table.Pairs()
	matchers := make([]aliasMatcher, 0, len(pairs))
	for _, p := range pairs {
		matchers = append(matchers, aliasMatcher{
			pattern:   regexp.MustCompile(`\b` + regexp.QuoteMeta(p.Alias) + `\b`),
			canonical: p.Canonical,
		})
	}
	return matchers
}

// Cheap extracts candidate slots from a message. Program defaults to "BS"
// and year to the current year when the message does not determine them;
// university, department, and campus stay empty on a miss.
func (e *Extractor) Cheap(message string) Slots {
	lower := strings.ToLower(message)
	return Slots{
		University: e.university(lower),
		Campus:     e.campuses(lower),
		Department: e.department(lower),
		Program:    e.program(lower),
		Year:       e.Year(message),
	}
}

func (e *Extractor) university(lower string) string {
	for _, u := range e.index.Universities {
		if strings.Contains(lower, strings.ToLower(u)) {
			return u
		}
	}
	for _, token := range longTokenPattern.FindAllString(lower, -1) {
		if v, ok := merit.Pick(token, e.index.Universities, universityTokenCutoff); ok {
			return v
		}
	}
	return ""
}

func (e *Extractor) department(lower string) string {
	for _, m := range e.departmentAliases {
		if m.pattern.MatchString(lower) {
			return m.canonical
		}
	}
	for _, d := range e.index.Departments {
		if strings.Contains(lower, strings.ToLower(d)) {
			return d
		}
	}
	for _, token := range shortTokenPattern.FindAllString(lower, -1) {
		if v, ok := merit.Pick(token, e.index.Departments, departmentTokenCutoff); ok {
			return v
		}
	}
	return ""
}

func (e *Extractor) program(lower string) string {
	for _, m := range e.programAliases {
		if m.pattern.MatchString(lower) {
			return m.canonical
		}
	}
	for _, p := range e.index.Programs {
		if strings.Contains(lower, strings.ToLower(p)) {
			return p
		}
	}
	// Bare "CS at FAST" style questions almost always mean the bachelor
	// program, so default rather than ask.
	return "BS"
}

// campuses collects every alias and canonical-name hit, not just the first,
// so "Islamabad and Lahore" comes back as one comma-joined list.
func (e *Extractor) campuses(lower string) string {
	var found []string
	for _, m := range e.campusAliases {
		if m.pattern.MatchString(lower) {
			found = append(found, m.canonical)
		}
	}
	for _, c := range e.index.Campuses {
		if strings.Contains(lower, strings.ToLower(c)) {
			found = append(found, c)
		}
	}
	if len(found) == 0 {
		return ""
	}
	seen := make(map[string]struct{}, len(found))
	var ordered []string
	for _, c := range found {
		key := strings.ToLower(c)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		ordered = append(ordered, c)
	}
	return strings.Join(ordered, ", ")
}

// Year reads an explicit four-digit year or the phrase "last year" from the
// message, defaulting to the current year.
func (e *Extractor) Year(message string) int {
	current := e.Now().Year()
	if lastYearPattern.MatchString(message) {
		return current - 1
	}
	if m := yearPattern.FindString(message); m != "" {
		if year, err := strconv.Atoi(m); err == nil {
			return year
		}
	}
	return current
}
