package extract

// Slots is the candidate slot tuple produced by extraction, before
// normalization. Campus may hold several comma-joined values; an empty
// campus means "any". Year 0 means the turn did not determine a year.
type Slots struct {
	University string
	Campus     string
	Department string
	Program    string
	Year       int
}

// Complete reports whether the required slots all carry a value. Campus is
// never required.
func (s Slots) Complete() bool {
	return s.University != "" && s.Department != "" && s.Program != "" && s.Year != 0
}

// Merge fills each absent field of s from fallback. Fields present in s win.
func (s Slots) Merge(fallback Slots) Slots {
	if s.University == "" {
		s.University = fallback.University
	}
	if s.Campus == "" {
		s.Campus = fallback.Campus
	}
	if s.Department == "" {
		s.Department = fallback.Department
	}
	if s.Program == "" {
		s.Program = fallback.Program
	}
	if s.Year == 0 {
		s.Year = fallback.Year
	}
	return s
}
