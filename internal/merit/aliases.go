package merit

import "strings"

// AliasPair binds one shorthand spelling to its canonical form.
type AliasPair struct {
	Alias     string
	Canonical string
}

// AliasTable maps lower-cased shorthand to canonical names. The extractor
// scans aliases as whole words in insertion order, so the table keeps its
// pairs ordered alongside the lookup map.
type AliasTable struct {
	pairs []AliasPair
	byKey map[string]string
}

func newAliasTable(pairs []AliasPair) *AliasTable {
	t := &AliasTable{pairs: pairs, byKey: make(map[string]string, len(pairs))}
	for _, p := range pairs {
		t.byKey[p.Alias] = p.Canonical
	}
	return t
}

// Lookup resolves key (lower-cased first) to its canonical form.
func (t *AliasTable) Lookup(key string) (string, bool) {
	v, ok := t.byKey[strings.ToLower(key)]
	return v, ok
}

// Pairs returns the alias pairs in insertion order.
func (t *AliasTable) Pairs() []AliasPair {
	return t.pairs
}

// Aliases is the static shorthand configuration for the three fields that
// users routinely abbreviate. It is built once at startup and shared.
type Aliases struct {
	Departments *AliasTable
	Programs    *AliasTable
	Campuses    *AliasTable
}

// DefaultAliases returns the built-in alias tables.
func DefaultAliases() *Aliases {
	return &Aliases{
		Departments: newAliasTable([]AliasPair{
			// "Computer Science" stays literal here; universities that file it
			// under the umbrella "Computing" are adjusted per-university later.
			{"cs", "Computer Science"},
			{"c.s", "Computer Science"},
			{"comp science", "Computer Science"},
			{"computer science", "Computer Science"},
			{"computerscience", "Computer Science"},
			{"se", "Software Engineering"},
			{"software engineering", "Software Engineering"},
			{"cyber", "Cyber Security"},
			{"cyber security", "Cyber Security"},
			{"computing", "Computing"},
			{"ee", "Electrical"},
			{"electrical", "Electrical"},
			{"electrical engineering", "Electrical"},
			{"me", "Mechanical"},
			{"mechanical", "Mechanical"},
			{"mechanical engineering", "Mechanical"},
			{"physics", "Physics"},
			{"applied physics", "Applied Physics"},
			{"math", "Mathematics"},
		}),
		Programs: newAliasTable([]AliasPair{
			{"bs", "BS"},
			{"b.s", "BS"},
			{"bsc", "BS"},
			{"b.sc", "BS"},
			{"bachelors", "BS"},
			{"bachelor", "BS"},
			{"undergrad", "BS"},
			{"ug", "BS"},
			{"ms", "MS"},
			{"m.s", "MS"},
			{"msc", "MS"},
			{"m.sc", "MS"},
			{"mphil", "MPhil"},
			{"m.phil", "MPhil"},
			{"postgrad", "MS"},
			{"pg", "MS"},
			{"phd", "PhD"},
			{"ph.d", "PhD"},
			{"doctorate", "PhD"},
		}),
		Campuses: newAliasTable([]AliasPair{
			{"isb", "Islamabad"},
			{"islamabad", "Islamabad"},
			{"rwp", "Rawalpindi"},
			{"rawalpindi", "Rawalpindi"},
			{"lhr", "Lahore"},
			{"lahore", "Lahore"},
			{"khi", "Karachi"},
			{"karachi", "Karachi"},
			{"kt", "Karachi"},
			{"pesh", "Peshawar"},
			{"peshawar", "Peshawar"},
			{"qta", "Quetta"},
			{"quetta", "Quetta"},
			{"abbott", "Abbottabad"},
			{"abbottabad", "Abbottabad"},
			{"skt", "Sialkot"},
			{"sialkot", "Sialkot"},
			{"mul", "Multan"},
			{"multan", "Multan"},
			{"faisalabad", "Faisalabad"},
			{"fsd", "Faisalabad"},
			{"suk", "Sukkur"},
			{"sukkur", "Sukkur"},
		}),
	}
}
