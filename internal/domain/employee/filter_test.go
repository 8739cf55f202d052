package employee

import (
	"testing"
)

func filterTestEmployees() []Employee {
	return []Employee{
		{ID: "1", Name: "Ramesh Kumar", Designation: "Mason"},
		{ID: "2", Name: "Suresh Singh", Designation: "Carpenter"},
		{ID: "3", Name: "Anita Devi", Designation: "Supervisor"},
		{ID: "4", Name: "Kumar Velu", Designation: "Helper"},
	}
}

func TestFilter(t *testing.T) {
	cases := []struct {
		term string
		want []string
	}{
		{"", []string{"1", "2", "3", "4"}},
		{"   ", []string{"1", "2", "3", "4"}},
		{"kumar", []string{"1", "4"}},
		{"KUMAR", []string{"1", "4"}},
		{"mason", []string{"1"}},
		{"super", []string{"3"}},
		{"esh", []string{"1", "2"}},
		{"plumber", []string{}},
	}

	for _, c := range cases {
		got := Filter(filterTestEmployees(), c.term)
		if len(got) != len(c.want) {
			t.Errorf("Filter(%q) returned %d employees, want %d", c.term, len(got), len(c.want))
			continue
		}
		for i, emp := range got {
			if emp.ID != c.want[i] {
				t.Errorf("Filter(%q)[%d].ID = %s, want %s", c.term, i, emp.ID, c.want[i])
			}
		}
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	in := filterTestEmployees()
	out := Filter(in, "")
	if len(out) == 0 {
		t.Fatal("expected a copy of all employees")
	}
	out[0].Name = "changed"
	if in[0].Name != "Ramesh Kumar" {
		t.Error("Filter returned a slice aliasing its input")
	}
}

func TestFilterEmptyInput(t *testing.T) {
	if got := Filter(nil, "kumar"); len(got) != 0 {
		t.Errorf("Filter(nil) = %v, want empty", got)
	}
}
