package merit

import (
	"sort"
	"strings"
)

// Index holds the canonical vocabularies derived from the loaded records.
// It is built once per store load and shared read-only across requests.
type Index struct {
	Universities []string
	Departments  []string
	Programs     []string
	Campuses     []string

	// CampusesByUniversity maps each canonical university name to the sorted
	// distinct campuses observed for it.
	CampusesByUniversity map[string][]string
}

// BuildIndex derives the canonical vocabularies from records. Each vocabulary
// is deduplicated case-insensitively, keeping first-seen casing, and sorted
// case-insensitively.
func BuildIndex(records []Record) *Index {
	var unis, depts, progs, camps []string
	for _, r := range records {
		unis = append(unis, r.University)
		depts = append(depts, r.Department)
		progs = append(progs, r.Program)
		camps = append(camps, r.Campus)
	}

	idx := &Index{
		Universities:         Dedup(unis),
		Departments:          Dedup(depts),
		Programs:             Dedup(progs),
		Campuses:             Dedup(camps),
		CampusesByUniversity: make(map[string][]string),
	}

	canonical := make(map[string]string, len(idx.Universities))
	for _, u := range idx.Universities {
		canonical[strings.ToLower(u)] = u
	}
	byUni := make(map[string][]string)
	for _, r := range records {
		if r.University == "" || r.Campus == "" {
			continue
		}
		u := canonical[strings.ToLower(r.University)]
		byUni[u] = append(byUni[u], r.Campus)
	}
	for u, cs := range byUni {
		idx.CampusesByUniversity[u] = Dedup(cs)
	}
	return idx
}

// CampusesFor returns the campuses recorded for a university, matched
// case-insensitively against the canonical university names.
func (i *Index) CampusesFor(university string) ([]string, bool) {
	if cs, ok := i.CampusesByUniversity[university]; ok {
		return cs, true
	}
	for u, cs := range i.CampusesByUniversity {
		if strings.EqualFold(u, university) {
			return cs, true
		}
	}
	return nil, false
}

// Dedup drops empty strings, deduplicates case-insensitively keeping the
// first-seen casing, and sorts case-insensitively.
func Dedup(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	sort.Slice(out, func(a, b int) bool {
		return strings.ToLower(out[a]) < strings.ToLower(out[b])
	})
	return out
}
