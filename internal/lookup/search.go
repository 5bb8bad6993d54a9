package lookup

import (
	"context"
	"errors"
	"strings"
)

type searchFilters struct {
	Company struct {
		Websites struct {
			Include []string `json:"include"`
		} `json:"websites"`
	} `json:"company"`
}

type searchRequest struct {
	Page    int           `json:"page"`
	Filters searchFilters `json:"filters"`
}

// SearchPerson fetches one page (1-based) of people working at domain. No
// local credit pre-check happens here; the server decides billability and we
// only react to its insufficient-balance signal.
func (c *Client) SearchPerson(ctx context.Context, domain string, page int) (*SearchResponse, error) {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return nil, errors.New("domain is empty")
	}
	if page < 1 {
		page = 1
	}

	req := searchRequest{Page: page}
	req.Filters.Company.Websites.Include = []string{domain}

	var out SearchResponse
	if err := c.postJSON(ctx, "/spend-and-search-person", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
