package people

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByDepartmentMultiMembership(t *testing.T) {
	emps := []Employee{
		{ID: "a", FullName: "A", Departments: []string{"Sales", "Marketing"}},
		{ID: "b", FullName: "B", Departments: []string{"Sales"}},
	}

	groups := GroupByDepartment(emps)
	byName := map[string][]Employee{}
	for _, g := range groups {
		byName[g.Name] = g.Employees
	}

	require.Len(t, byName["Sales"], 2)
	require.Len(t, byName["Marketing"], 1)
	assert.Equal(t, "a", byName["Marketing"][0].ID)
	assert.Equal(t, "a", byName["Sales"][0].ID) // input order kept
}

func TestGroupByDepartmentOtherSortsLast(t *testing.T) {
	emps := []Employee{
		{ID: "1", Departments: []string{"Other"}},
		{ID: "2", Departments: []string{"Zeta"}},
		{ID: "3", Departments: []string{"Alpha"}},
	}

	groups := GroupByDepartment(emps)
	require.Len(t, groups, 3)
	assert.Equal(t, "Alpha", groups[0].Name)
	assert.Equal(t, "Zeta", groups[1].Name)
	assert.Equal(t, "Other", groups[2].Name)
}

func TestGroupByDepartmentEmpty(t *testing.T) {
	assert.Nil(t, GroupByDepartment(nil))
}
