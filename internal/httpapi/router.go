package httpapi

import (
	"net/http"

	"prospector-engine/internal/webmeta"
)

// NewMux wires every route. main() wraps the result in the middleware chain.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: HealthHandler{}.Health,
	}))

	// Credits
	crh := &CreditsHandler{Ledger: d.Ledger}
	mux.HandleFunc("/credits", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: crh.Get,
	}))

	// Company autocomplete (free tier)
	nameHint := d.NameHint
	if nameHint == nil {
		nameHint = webmeta.CompanyNameHint
	}
	ah := &AutocompleteHandler{Lookup: d.Lookup, NameHint: nameHint}
	mux.HandleFunc("/autocomplete", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ah.Get,
	}))

	// Employee search (paid, paginated)
	sh := &SearchHandler{
		Lookup:     d.Lookup,
		Ledger:     d.Ledger,
		Sessions:   d.Sessions,
		CompanyLog: d.CompanyLog,
		Hub:        d.Hub,
		DB:         d.DB,
	}
	mux.HandleFunc("/search", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  sh.Get,
		http.MethodPost: sh.Start,
	}))
	mux.HandleFunc("/search/more", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.More,
	}))

	// Email enrichment (paid)
	eh := &EnrichHandler{
		Lookup:   d.Lookup,
		Ledger:   d.Ledger,
		EmailLog: d.EmailLog,
		Hub:      d.Hub,
	}
	mux.HandleFunc("/enrich", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: eh.Enrich,
	}))

	// History
	hh := &HistoryHandler{EmailLog: d.EmailLog, CompanyLog: d.CompanyLog, Hub: d.Hub}
	mux.HandleFunc("/history", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.List,
	}))
	mux.HandleFunc("/history/clear", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: hh.Clear,
	}))
	mux.HandleFunc("/history/", methodMux(map[string]http.HandlerFunc{
		http.MethodDelete: hh.DeleteByPath, // expects /history/{id}
	}))

	// Config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))

	// Secrets
	skh := SecretsHandler{}
	mux.HandleFunc("/api/secrets/key", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:    skh.Status,
		http.MethodPost:   skh.SetAPIKey,
		http.MethodDelete: skh.DeleteAPIKey,
	}))

	// SSE events
	evh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: evh.ServeSSE,
	}))

	// Logos
	lh := LogosHandler{DB: d.DB}
	mux.HandleFunc("/logo/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: lh.GetByPath,
	}))

	// DB maintenance
	dbh := DBHandler{DB: d.DB}
	mux.HandleFunc("/db/checkpoint", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: dbh.Checkpoint,
	}))

	return mux
}
