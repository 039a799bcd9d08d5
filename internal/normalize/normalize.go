// Package normalize resolves free-text slot candidates to canonical
// vocabulary values using alias lookup, exact matching, and cutoff-gated
// fuzzy matching. Values that clear no gate pass through trimmed, so the
// resolver's lookups (not the normalizer) decide what a miss means.
package normalize

import (
	"regexp"
	"strings"

	"github.com/campusdesk/meritbot/internal/merit"
)

// Per-field fuzzy cutoffs. Program is tightest because program names are
// short and collision-prone.
const (
	universityCutoff = 0.78
	departmentCutoff = 0.83
	programCutoff    = 0.90
	campusCutoff     = 0.80
)

var campusSplitPattern = regexp.MustCompile(`(?i)\s*(?:,|\band\b|&)\s*`)

var programSeparators = strings.NewReplacer("-", "", "_", "", " ", "")

// Normalizer resolves candidate slot values against the canonical index and
// the static alias tables.
type Normalizer struct {
	index   *merit.Index
	aliases *merit.Aliases
}

func New(index *merit.Index, aliases *merit.Aliases) *Normalizer {
	return &Normalizer{index: index, aliases: aliases}
}

// University canonicalizes a university candidate, returning the trimmed
// input unchanged when nothing matches.
func (n *Normalizer) University(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	if v, ok := n.MatchUniversity(text); ok {
		return v
	}
	return trimmed
}

// MatchUniversity reports the canonical university for text, or false when
// neither an exact nor a fuzzy match clears the gate.
func (n *Normalizer) MatchUniversity(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false
	}
	for _, u := range n.index.Universities {
		if strings.EqualFold(u, trimmed) {
			return u, true
		}
	}
	return merit.Pick(text, n.index.Universities, universityCutoff)
}

// Department canonicalizes a department candidate, returning the trimmed
// input unchanged when nothing matches.
func (n *Normalizer) Department(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	if v, ok := n.MatchDepartment(text); ok {
		return v
	}
	return trimmed
}

// MatchDepartment tries alias lookup, then an exact case-insensitive hit,
// then gated fuzzy matching.
func (n *Normalizer) MatchDepartment(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false
	}
	if v, ok := n.aliases.Departments.Lookup(trimmed); ok {
		return v, true
	}
	lower := strings.ToLower(trimmed)
	for _, d := range n.index.Departments {
		if strings.ToLower(d) == lower {
			return d, true
		}
	}
	return merit.Pick(text, n.index.Departments, departmentCutoff)
}

// Program canonicalizes a program candidate, returning the trimmed input
// unchanged when nothing matches.
func (n *Normalizer) Program(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	if v, ok := n.MatchProgram(text); ok {
		return v
	}
	return trimmed
}

// MatchProgram strips separators before the alias lookup so "B-S", "b_s" and
// "B S" all land on "bs", then falls back to gated fuzzy matching.
func (n *Normalizer) MatchProgram(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false
	}
	key := programSeparators.Replace(strings.ToLower(trimmed))
	if v, ok := n.aliases.Programs.Lookup(key); ok {
		return v, true
	}
	return merit.Pick(text, n.index.Programs, programCutoff)
}

// Campus canonicalizes a campus candidate. The input may name several
// campuses joined by commas, "and", or "&"; each part is resolved on its own
// and the distinct results are rejoined comma-separated. An empty result
// means "any campus".
func (n *Normalizer) Campus(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	parts := campusSplitPattern.Split(text, -1)
	var resolved []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if v, ok := n.aliases.Campuses.Lookup(p); ok {
			resolved = append(resolved, v)
			continue
		}
		if v, ok := merit.Pick(p, n.index.Campuses, campusCutoff); ok {
			resolved = append(resolved, v)
			continue
		}
		resolved = append(resolved, p)
	}
	seen := make(map[string]struct{}, len(resolved))
	var out []string
	for _, c := range resolved {
		key := strings.ToLower(c)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return strings.Join(out, ", ")
}
