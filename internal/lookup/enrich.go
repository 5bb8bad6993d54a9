package lookup

import (
	"context"
	"errors"
	"strings"
)

type enrichRequest struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	CompanyWebsite string `json:"company_website"`
}

// EnrichPerson runs the paid name+domain lookup. A transport-level success
// can still be a business-level miss (no email); that is decided by
// internal/enrich, not here.
func (c *Client) EnrichPerson(ctx context.Context, firstName, lastName, domain string) (*EnrichResponse, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	domain = strings.ToLower(strings.TrimSpace(domain))
	if firstName == "" || lastName == "" || domain == "" {
		return nil, errors.New("first name, last name and domain are required")
	}

	req := enrichRequest{
		FirstName:      firstName,
		LastName:       lastName,
		CompanyWebsite: domain,
	}

	var out EnrichResponse
	if err := c.postJSON(ctx, "/spend-and-enrich-person", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
