package merit

// Record is one row of the merit dataset: the minimum and maximum aggregate
// score that qualified for admission to a program at a campus in a given year.
// Records are loaded once at startup and never mutated.
type Record struct {
	University   string
	Campus       string
	Department   string
	Program      string
	Year         int
	MinimumMerit float64
	MaximumMerit float64
}
