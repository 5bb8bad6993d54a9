package httpapi

import (
	"context"
	"database/sql"
	"sync/atomic"

	"prospector-engine/internal/config"
	"prospector-engine/internal/credits"
	"prospector-engine/internal/events"
	"prospector-engine/internal/history"
	"prospector-engine/internal/lookup"
	"prospector-engine/internal/people"
)

// LookupClient is what the handlers need from internal/lookup. An interface
// so handler tests can fake the remote service.
type LookupClient interface {
	SearchPerson(ctx context.Context, domain string, page int) (*lookup.SearchResponse, error)
	EnrichPerson(ctx context.Context, firstName, lastName, domain string) (*lookup.EnrichResponse, error)
	SearchCompanyByName(ctx context.Context, query string) []lookup.CompanySuggestion
	FetchCredits(ctx context.Context) (lookup.CreditsResponse, error)
}

type Deps struct {
	DB *sql.DB

	Hub *events.Hub

	Lookup   LookupClient
	Ledger   *credits.Ledger
	Sessions *people.Manager

	EmailLog   *history.Log[*history.EmailEntry]
	CompanyLog *history.Log[*history.CompanyEntry]

	// Atomic store for config.Config (reloadable via PUT /config)
	CfgVal      *atomic.Value
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Company-name fallback when autocomplete comes up empty (injected so
	// handler tests never hit the network; defaults to webmeta.CompanyNameHint)
	NameHint func(ctx context.Context, domain string) string
}
