package people

import "sort"

type DepartmentGroup struct {
	Name      string     `json:"name"`
	Employees []Employee `json:"employees"`
}

// GroupByDepartment buckets employees by their current-job departments.
// Membership is many-to-many: an employee with N departments lands in all N
// groups. Groups come back name-ascending (case-sensitive), except the
// fallback "Other" group which always sorts last. Employee order inside a
// group follows the input order.
func GroupByDepartment(emps []Employee) []DepartmentGroup {
	if len(emps) == 0 {
		return nil
	}

	idx := make(map[string]int)
	var groups []DepartmentGroup

	for _, e := range emps {
		for _, d := range e.Departments {
			i, ok := idx[d]
			if !ok {
				i = len(groups)
				idx[d] = i
				groups = append(groups, DepartmentGroup{Name: d})
			}
			groups[i].Employees = append(groups[i].Employees, e)
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i].Name, groups[j].Name
		if a == FallbackDepartment {
			return false
		}
		if b == FallbackDepartment {
			return true
		}
		return a < b
	})
	return groups
}
