package employee

import "strings"

// Filter returns the employees whose name or designation contains term,
// case-insensitively. An empty term matches everyone. The input slice is
// never modified.
func Filter(employees []Employee, term string) []Employee {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		out := make([]Employee, len(employees))
		copy(out, employees)
		return out
	}

	out := make([]Employee, 0, len(employees))
	for _, emp := range employees {
		if strings.Contains(strings.ToLower(emp.Name), term) ||
			strings.Contains(strings.ToLower(emp.Designation), term) {
			out = append(out, emp)
		}
	}
	return out
}
