package people

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prospector-engine/internal/lookup"
)

func personResult(id string, current *lookup.RawExperience, title string) lookup.SearchResult {
	p := &lookup.RawPerson{
		ID:        id,
		FirstName: "Jane",
		LastName:  "Doe",
		JobTitle:  title,
	}
	if current != nil {
		p.WorkExperience = []lookup.RawExperience{
			{Current: false, Title: "Old Role", Departments: []string{"Legacy"}},
			*current,
		}
	}
	return lookup.SearchResult{Person: p}
}

func TestMapSearchResponseEmpty(t *testing.T) {
	assert.Empty(t, MapSearchResponse(nil))
	assert.Empty(t, MapSearchResponse(&lookup.SearchResponse{}))
	assert.Empty(t, GroupByDepartment(MapSearchResponse(&lookup.SearchResponse{})))
}

func TestMapSearchResponseCurrentPositionOnly(t *testing.T) {
	resp := &lookup.SearchResponse{Results: []lookup.SearchResult{
		personResult("p1", &lookup.RawExperience{Current: true, Title: "Head of Sales", Departments: []string{"Sales"}}, ""),
	}}

	emps := MapSearchResponse(resp)
	require.Len(t, emps, 1)
	assert.Equal(t, "Head of Sales", emps[0].JobTitle)
	assert.Equal(t, []string{"Sales"}, emps[0].Departments)
}

func TestMapSearchResponseTitleFallbackChain(t *testing.T) {
	// explicit job_title wins over the current job's title
	resp := &lookup.SearchResponse{Results: []lookup.SearchResult{
		personResult("p1", &lookup.RawExperience{Current: true, Title: "Account Exec"}, "VP Sales"),
	}}
	emps := MapSearchResponse(resp)
	require.Len(t, emps, 1)
	assert.Equal(t, "VP Sales", emps[0].JobTitle)

	// no title anywhere stays empty
	resp = &lookup.SearchResponse{Results: []lookup.SearchResult{
		personResult("p2", nil, ""),
	}}
	emps = MapSearchResponse(resp)
	require.Len(t, emps, 1)
	assert.Equal(t, "", emps[0].JobTitle)
}

func TestMapSearchResponseDefaultsToOther(t *testing.T) {
	resp := &lookup.SearchResponse{Results: []lookup.SearchResult{
		personResult("p1", &lookup.RawExperience{Current: true, Title: "Generalist"}, ""),
	}}
	emps := MapSearchResponse(resp)
	require.Len(t, emps, 1)
	assert.Equal(t, []string{FallbackDepartment}, emps[0].Departments)
}

func TestMapSearchResponseDropsMissingID(t *testing.T) {
	resp := &lookup.SearchResponse{Results: []lookup.SearchResult{
		{Person: &lookup.RawPerson{FirstName: "No", LastName: "ID"}},
		{Person: nil},
		personResult("p1", nil, "Engineer"),
	}}
	emps := MapSearchResponse(resp)
	require.Len(t, emps, 1)
	assert.Equal(t, "p1", emps[0].ID)
}
