package httpapi

import (
	"context"
	"net/http"
	"strings"

	"prospector-engine/internal/lookup"
)

type AutocompleteHandler struct {
	Lookup   LookupClient
	NameHint func(ctx context.Context, domain string) string
}

// Get suggests companies for a partial name. Always 200 with a list, even on
// upstream failure: this lookup is advisory and must never block typing.
// When the suggester has nothing but the query looks like a domain, the
// website itself is probed for a display-name hint.
func (h *AutocompleteHandler) Get(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))

	suggestions := h.Lookup.SearchCompanyByName(r.Context(), query)

	if len(suggestions) == 0 && h.NameHint != nil && looksLikeDomain(query) {
		domain := strings.ToLower(strings.TrimPrefix(strings.TrimPrefix(query, "https://"), "http://"))
		domain = strings.Trim(domain, "/")
		if hint := h.NameHint(r.Context(), domain); hint != "" {
			suggestions = []lookup.CompanySuggestion{{
				Name:   hint,
				Domain: domain,
			}}
		}
	}

	if suggestions == nil {
		suggestions = []lookup.CompanySuggestion{}
	}
	writeJSON(w, suggestions)
}

func looksLikeDomain(q string) bool {
	q = strings.TrimSpace(q)
	return q != "" && !strings.ContainsAny(q, " \t") && strings.Contains(q, ".")
}
