package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prospector-engine/internal/lookup"
)

func TestMapEnrichResponseNoEmailMeansNoData(t *testing.T) {
	// fully populated person, just no address
	resp := &lookup.EnrichResponse{
		Person: &lookup.RawPerson{
			FirstName: "Ada",
			LastName:  "Lovelace",
			JobTitle:  "CTO",
		},
		Company: &lookup.RawCompany{Name: "Acme"},
	}

	data, ok := MapEnrichResponse(resp, "acme.com")
	assert.False(t, ok)
	assert.Nil(t, data)

	resp.Person.Email = &lookup.RawEmail{Email: "   "}
	data, ok = MapEnrichResponse(resp, "acme.com")
	assert.False(t, ok)
	assert.Nil(t, data)

	_, ok = MapEnrichResponse(nil, "acme.com")
	assert.False(t, ok)
}

func TestMapEnrichResponseCompanyFallbacks(t *testing.T) {
	resp := &lookup.EnrichResponse{
		Person: &lookup.RawPerson{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     &lookup.RawEmail{Email: "ada@acme.com", Status: "VERIFIED"},
		},
	}

	data, ok := MapEnrichResponse(resp, "Acme.com")
	require.True(t, ok)
	assert.Equal(t, "acme.com", data.Company.Name)
	assert.Equal(t, "https://acme.com", data.Company.Website)
	assert.Equal(t, "acme.com", data.Company.Domain)
	assert.Equal(t, "VERIFIED", data.Person.Email.Status)
	assert.Equal(t, "Ada Lovelace", data.Person.FullName)
}

func TestMapEnrichResponseUpstreamCompanyWins(t *testing.T) {
	resp := &lookup.EnrichResponse{
		Person: &lookup.RawPerson{Email: &lookup.RawEmail{Email: "x@acme.com"}},
		Company: &lookup.RawCompany{
			Name:    "Acme Corp",
			Website: "https://www.acme.com",
			Domain:  "ACME.com",
		},
	}

	data, ok := MapEnrichResponse(resp, "acme.com")
	require.True(t, ok)
	assert.Equal(t, "Acme Corp", data.Company.Name)
	assert.Equal(t, "https://www.acme.com", data.Company.Website)
	assert.Equal(t, "acme.com", data.Company.Domain)
}

func TestFundingEventsKeepUpstreamOrder(t *testing.T) {
	resp := &lookup.EnrichResponse{
		Person: &lookup.RawPerson{Email: &lookup.RawEmail{Email: "x@acme.com"}},
		Company: &lookup.RawCompany{
			Funding: []lookup.RawFundingEvent{
				{Round: "Seed", Date: "2019-03-01"},
				{Round: "Series B", Date: "2023-07-15"},
				{Round: "Series A", Date: "2021-01-20"},
			},
		},
	}

	data, ok := MapEnrichResponse(resp, "acme.com")
	require.True(t, ok)

	// mapper preserves raw order
	rounds := []string{data.Company.Funding[0].Round, data.Company.Funding[1].Round, data.Company.Funding[2].Round}
	assert.Equal(t, []string{"Seed", "Series B", "Series A"}, rounds)

	// display helper sorts newest-first, undated last
	sorted := SortedFundingEvents(append(data.Company.Funding, FundingEvent{Round: "Unknown"}))
	assert.Equal(t, "Series B", sorted[0].Round)
	assert.Equal(t, "Series A", sorted[1].Round)
	assert.Equal(t, "Seed", sorted[2].Round)
	assert.Equal(t, "Unknown", sorted[3].Round)
}
