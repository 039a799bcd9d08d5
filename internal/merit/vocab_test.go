package merit

import (
	"reflect"
	"testing"
)

func TestBuildIndex(t *testing.T) {
	records := []Record{
		{University: "NUST", Campus: "Islamabad", Department: "Software Engineering", Program: "BS", Year: 2024},
		{University: "FAST", Campus: "Lahore", Department: "Computing", Program: "BS", Year: 2024},
		{University: "fast", Campus: "Islamabad", Department: "computing", Program: "MS", Year: 2023},
		{University: "FAST", Campus: "islamabad", Department: "Electrical", Program: "BS", Year: 2024},
		{University: "", Campus: "", Department: "", Program: "", Year: 0},
	}

	idx := BuildIndex(records)

	if want := []string{"FAST", "NUST"}; !reflect.DeepEqual(idx.Universities, want) {
		t.Errorf("universities = %v, want %v", idx.Universities, want)
	}
	if want := []string{"Computing", "Electrical", "Software Engineering"}; !reflect.DeepEqual(idx.Departments, want) {
		t.Errorf("departments = %v, want %v", idx.Departments, want)
	}
	if want := []string{"BS", "MS"}; !reflect.DeepEqual(idx.Programs, want) {
		t.Errorf("programs = %v, want %v", idx.Programs, want)
	}
	if want := []string{"Islamabad", "Lahore"}; !reflect.DeepEqual(idx.Campuses, want) {
		t.Errorf("campuses = %v, want %v", idx.Campuses, want)
	}

	// "fast" and "islamabad" dedupe into NUST's first-seen casings under FAST.
	camps, ok := idx.CampusesFor("FAST")
	if !ok {
		t.Fatal("expected campuses for FAST")
	}
	if want := []string{"Islamabad", "Lahore"}; !reflect.DeepEqual(camps, want) {
		t.Errorf("FAST campuses = %v, want %v", camps, want)
	}
}

func TestBuildIndex_Reproducible(t *testing.T) {
	records := []Record{
		{University: "QAU", Campus: "Islamabad", Department: "Physics", Program: "MPhil", Year: 2022},
		{University: "IBA", Campus: "Karachi", Department: "Computer Science", Program: "BS", Year: 2024},
	}
	a := BuildIndex(records)
	b := BuildIndex(records)
	if !reflect.DeepEqual(a, b) {
		t.Error("BuildIndex is not reproducible for the same input")
	}
}

func TestCampusesFor_CaseInsensitive(t *testing.T) {
	idx := BuildIndex([]Record{
		{University: "FAST", Campus: "Peshawar", Department: "Computing", Program: "BS", Year: 2024},
	})

	if _, ok := idx.CampusesFor("fast"); !ok {
		t.Error("expected case-insensitive university lookup")
	}
	if _, ok := idx.CampusesFor("Hogwarts"); ok {
		t.Error("expected no campuses for unknown university")
	}
}

func TestDedup(t *testing.T) {
	got := Dedup([]string{"Lahore", "", "lahore", "Karachi", "LAHORE", "abbottabad"})
	want := []string{"abbottabad", "Karachi", "Lahore"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Dedup = %v, want %v", got, want)
	}
}
