package merit

import "testing"

func TestAliasLookup(t *testing.T) {
	aliases := DefaultAliases()

	tests := []struct {
		name  string
		table *AliasTable
		key   string
		want  string
	}{
		{"department short form", aliases.Departments, "cs", "Computer Science"},
		{"department mixed case", aliases.Departments, "Cyber", "Cyber Security"},
		{"program dotted", aliases.Programs, "b.sc", "BS"},
		{"program postgrad maps to MS", aliases.Programs, "postgrad", "MS"},
		{"campus abbreviation", aliases.Campuses, "lhr", "Lahore"},
		{"campus full name", aliases.Campuses, "KARACHI", "Karachi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.table.Lookup(tt.key)
			if !ok || got != tt.want {
				t.Errorf("Lookup(%q) = (%q, %v), want (%q, true)", tt.key, got, ok, tt.want)
			}
		})
	}

	if _, ok := aliases.Departments.Lookup("astrology"); ok {
		t.Error("expected miss for unknown alias")
	}
}

func TestAliasPairs_Order(t *testing.T) {
	pairs := DefaultAliases().Departments.Pairs()
	if len(pairs) == 0 {
		t.Fatal("expected department alias pairs")
	}
	// The extractor's whole-word scan prefers earliest entries, so "cs"
	// must stay the first department alias.
	if pairs[0].Alias != "cs" || pairs[0].Canonical != "Computer Science" {
		t.Errorf("first pair = %+v, want cs -> Computer Science", pairs[0])
	}
}
