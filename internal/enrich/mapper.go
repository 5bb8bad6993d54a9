package enrich

import (
	"sort"
	"strings"

	"prospector-engine/internal/lookup"
)

// EnrichedData is the fully-populated (person, company) pair. Nothing
// half-filled leaves this package: either the mapping succeeds completely or
// the caller gets ok=false.
type EnrichedData struct {
	Person  Person  `json:"person"`
	Company Company `json:"company"`
}

type Person struct {
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	FullName    string      `json:"full_name"`
	JobTitle    string      `json:"job_title"`
	LinkedinURL string      `json:"linkedin_url,omitempty"`
	Location    string      `json:"location"`
	Seniority   string      `json:"seniority"`
	Email       EmailRecord `json:"email"`
}

// EmailRecord carries the found address plus the upstream verification tag
// ("VERIFIED" etc, free-form).
type EmailRecord struct {
	Email  string `json:"email"`
	Status string `json:"status"`
}

type Company struct {
	Name        string         `json:"name"`
	Domain      string         `json:"domain"`
	Website     string         `json:"website"`
	Industry    string         `json:"industry,omitempty"`
	Headcount   string         `json:"headcount,omitempty"`
	Description string         `json:"description,omitempty"`
	LogoURL     string         `json:"logo_url,omitempty"`
	Location    string         `json:"location,omitempty"`
	FoundedYear int            `json:"founded_year,omitempty"`
	Funding     []FundingEvent `json:"funding,omitempty"`
}

type FundingEvent struct {
	Round     string   `json:"round"`
	Amount    float64  `json:"amount"`
	Currency  string   `json:"currency"`
	Date      string   `json:"date"`
	Investors []string `json:"investors,omitempty"`
}

// MapEnrichResponse normalizes one enrichment response. ok is false when the
// response holds no email address: the transport call succeeded but the
// lookup found nothing, and callers must treat that as "no email found for
// this person", not as partial data. Company fields fall back to
// domain-derived values when upstream omits them. Funding events keep their
// upstream order here; display callers sort via SortedFundingEvents.
func MapEnrichResponse(resp *lookup.EnrichResponse, domain string) (*EnrichedData, bool) {
	domain = strings.ToLower(strings.TrimSpace(domain))

	if resp == nil || resp.Person == nil || resp.Person.Email == nil {
		return nil, false
	}
	email := strings.TrimSpace(resp.Person.Email.Email)
	if email == "" {
		return nil, false
	}

	p := resp.Person
	fullName := strings.TrimSpace(p.FullName)
	if fullName == "" {
		fullName = strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
	}

	out := &EnrichedData{
		Person: Person{
			FirstName:   strings.TrimSpace(p.FirstName),
			LastName:    strings.TrimSpace(p.LastName),
			FullName:    fullName,
			JobTitle:    strings.TrimSpace(p.JobTitle),
			LinkedinURL: strings.TrimSpace(p.LinkedinURL),
			Location:    strings.TrimSpace(p.Location),
			Seniority:   strings.TrimSpace(p.Seniority),
			Email: EmailRecord{
				Email:  email,
				Status: strings.TrimSpace(p.Email.Status),
			},
		},
		Company: mapCompany(resp.Company, domain),
	}
	return out, true
}

func mapCompany(rc *lookup.RawCompany, domain string) Company {
	c := Company{
		Name:    domain,
		Domain:  domain,
		Website: "https://" + domain,
	}
	if rc == nil {
		return c
	}

	if v := strings.TrimSpace(rc.Name); v != "" {
		c.Name = v
	}
	if v := strings.ToLower(strings.TrimSpace(rc.Domain)); v != "" {
		c.Domain = v
	}
	if v := strings.TrimSpace(rc.Website); v != "" {
		c.Website = v
	}
	c.Industry = strings.TrimSpace(rc.Industry)
	c.Headcount = strings.TrimSpace(rc.Headcount)
	c.Description = strings.TrimSpace(rc.Description)
	c.LogoURL = strings.TrimSpace(rc.LogoURL)
	c.Location = strings.TrimSpace(rc.Location)
	c.FoundedYear = rc.FoundedYear

	for _, f := range rc.Funding {
		c.Funding = append(c.Funding, FundingEvent{
			Round:     strings.TrimSpace(f.Round),
			Amount:    f.Amount,
			Currency:  strings.TrimSpace(f.Currency),
			Date:      strings.TrimSpace(f.Date),
			Investors: f.Investors,
		})
	}
	return c
}

// SortedFundingEvents returns a copy ordered newest-first. Dates are
// YYYY-MM-DD so plain string comparison orders correctly; undated events sink
// to the end.
func SortedFundingEvents(events []FundingEvent) []FundingEvent {
	out := make([]FundingEvent, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Date, out[j].Date
		if a == "" {
			return false
		}
		if b == "" {
			return true
		}
		return a > b
	})
	return out
}
