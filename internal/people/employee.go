package people

import (
	"strings"

	"prospector-engine/internal/lookup"
)

// FallbackDepartment buckets everyone whose current job lists no department.
const FallbackDepartment = "Other"

type Employee struct {
	ID          string   `json:"id"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	FullName    string   `json:"full_name"`
	JobTitle    string   `json:"job_title"`
	Departments []string `json:"departments"`
	LinkedinURL string   `json:"linkedin_url,omitempty"`
	Location    string   `json:"location"`
	Seniority   string   `json:"seniority"`
}

// MapSearchResponse normalizes one search page into employees. Only the
// current position counts: title falls back person.job_title -> current job
// title -> empty, and departments come from the current job, defaulting to
// FallbackDepartment when it lists none. Entries without an id are dropped
// since the accumulator dedupes on it.
func MapSearchResponse(resp *lookup.SearchResponse) []Employee {
	if resp == nil || len(resp.Results) == 0 {
		return nil
	}

	out := make([]Employee, 0, len(resp.Results))
	for _, r := range resp.Results {
		p := r.Person
		if p == nil || strings.TrimSpace(p.ID) == "" {
			continue
		}

		cur := currentExperience(p.WorkExperience)

		title := strings.TrimSpace(p.JobTitle)
		if title == "" && cur != nil {
			title = strings.TrimSpace(cur.Title)
		}

		var deps []string
		if cur != nil {
			for _, d := range cur.Departments {
				if d = strings.TrimSpace(d); d != "" {
					deps = append(deps, d)
				}
			}
		}
		if len(deps) == 0 {
			deps = []string{FallbackDepartment}
		}

		fullName := strings.TrimSpace(p.FullName)
		if fullName == "" {
			fullName = strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
		}

		out = append(out, Employee{
			ID:          strings.TrimSpace(p.ID),
			FirstName:   strings.TrimSpace(p.FirstName),
			LastName:    strings.TrimSpace(p.LastName),
			FullName:    fullName,
			JobTitle:    title,
			Departments: deps,
			LinkedinURL: strings.TrimSpace(p.LinkedinURL),
			Location:    strings.TrimSpace(p.Location),
			Seniority:   strings.TrimSpace(p.Seniority),
		})
	}
	return out
}

func currentExperience(xs []lookup.RawExperience) *lookup.RawExperience {
	for i := range xs {
		if xs[i].Current {
			return &xs[i]
		}
	}
	return nil
}
