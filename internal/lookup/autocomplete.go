package lookup

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"
)

// DefaultAutocompleteURL is the free, unauthenticated company suggester.
const DefaultAutocompleteURL = "https://api.clearout.io/public/companies/autocomplete"

type autocompleteResponse struct {
	Status string              `json:"status"`
	Data   []CompanySuggestion `json:"data"`
}

// SearchCompanyByName suggests companies for a partial name. Advisory only:
// queries shorter than 2 runes skip the call entirely (the endpoint is free
// tier, don't hammer it), and every failure collapses to zero suggestions so
// typing in the UI never blocks on this.
func (c *Client) SearchCompanyByName(ctx context.Context, query string) []CompanySuggestion {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < 2 {
		return nil
	}

	base := c.cfg.AutocompleteURL
	if base == "" {
		base = DefaultAutocompleteURL
	}
	reqURL := base + "?query=" + url.QueryEscape(query)

	if c.limiter != nil {
		if err := c.limiter.WaitURL(ctx, reqURL); err != nil {
			return nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", "Prospector/1.0 (+local)")

	res, err := c.hc.Do(req)
	if err != nil {
		return nil
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil
	}

	var out autocompleteResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil
	}
	if out.Status != "success" {
		return nil
	}
	return out.Data
}
