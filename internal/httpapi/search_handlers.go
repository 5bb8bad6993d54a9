package httpapi

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"prospector-engine/internal/credits"
	"prospector-engine/internal/events"
	"prospector-engine/internal/history"
	"prospector-engine/internal/lookup"
	"prospector-engine/internal/people"
	"prospector-engine/internal/store"
)

type SearchHandler struct {
	Lookup     LookupClient
	Ledger     *credits.Ledger
	Sessions   *people.Manager
	CompanyLog *history.Log[*history.CompanyEntry]
	Hub        *events.Hub
	DB         *sql.DB

	mu      sync.Mutex
	entries map[string]string // domain -> company history entry id
}

type startSearchReq struct {
	Domain          string  `json:"domain"`
	CompanyName     string  `json:"company_name"`
	ConfidenceScore float64 `json:"confidence_score"`
	LogoURL         string  `json:"logo_url"`
}

type loadMoreReq struct {
	Domain string `json:"domain"`
}

// Start begins a fresh search for a domain: accumulated employees and page
// counters reset, page 1 is fetched. The company history entry is only
// written when the search actually found people.
func (h *SearchHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startSearchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	req.Domain = strings.ToLower(strings.TrimSpace(req.Domain))
	if req.Domain == "" {
		WriteError(w, r, http.StatusBadRequest, "missing_domain", "domain is required")
		return
	}

	sess := h.Sessions.Fresh(req.Domain)
	h.mu.Lock()
	delete(h.entries, req.Domain)
	h.mu.Unlock()

	view, err := sess.LoadNext(r.Context(), h.Lookup)
	if err != nil {
		h.failLoad(w, r, err)
		return
	}

	h.Ledger.Apply(view.Balance)
	h.recordCompany(r.Context(), req, view)

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, "search_page_loaded", 1, map[string]any{
		"domain": req.Domain, "page": view.Page, "total_pages": view.TotalPages,
	}))
	writeJSON(w, view)
}

// More loads the next page into an existing session. Refused while a load is
// outstanding or when all pages are in.
func (h *SearchHandler) More(w http.ResponseWriter, r *http.Request) {
	var req loadMoreReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	sess, ok := h.Sessions.Get(req.Domain)
	if !ok {
		WriteError(w, r, http.StatusNotFound, "no_session", "no search in progress for this domain")
		return
	}

	view, err := sess.LoadNext(r.Context(), h.Lookup)
	if err != nil {
		h.failLoad(w, r, err)
		return
	}

	h.Ledger.Apply(view.Balance)
	h.updateSnapshot(r.Context(), sess.Domain(), view)

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, "search_page_loaded", 1, map[string]any{
		"domain": sess.Domain(), "page": view.Page, "total_pages": view.TotalPages,
	}))
	writeJSON(w, view)
}

// Get returns the current snapshot without touching the network.
func (h *SearchHandler) Get(w http.ResponseWriter, r *http.Request) {
	domain := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("domain")))
	sess, ok := h.Sessions.Get(domain)
	if !ok {
		WriteError(w, r, http.StatusNotFound, "no_session", "no search in progress for this domain")
		return
	}
	writeJSON(w, sess.Snapshot())
}

// failLoad reports a page-load failure. Accumulated employees stay put (the
// session already guarantees that); the balance gets an opportunistic
// re-fetch so the displayed count cannot drift after a failed paid call.
func (h *SearchHandler) failLoad(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// screen went away; nothing mutated, nobody is listening
		return
	case errors.Is(err, people.ErrLoadInFlight):
		WriteError(w, r, http.StatusConflict, "load_in_flight", err.Error())
		return
	case errors.Is(err, people.ErrNoMorePages):
		WriteError(w, r, http.StatusConflict, "no_more_pages", err.Error())
		return
	}

	if !lookup.IsNotConfigured(err) {
		go h.Ledger.RefreshBestEffort(context.Background())
	}
	WriteLookupError(w, r, err)
}

// recordCompany writes the company history entry for a non-empty fresh
// search and attaches the first page's snapshot.
func (h *SearchHandler) recordCompany(ctx context.Context, req startSearchReq, view people.View) {
	if len(view.Employees) == 0 {
		return
	}

	name := strings.TrimSpace(req.CompanyName)
	if name == "" {
		name = req.Domain
	}

	entry, err := h.CompanyLog.Add(ctx, &history.CompanyEntry{
		CompanyName:     name,
		Domain:          req.Domain,
		ConfidenceScore: req.ConfidenceScore,
		LogoURL:         strings.TrimSpace(req.LogoURL),
	})
	if err != nil {
		return
	}

	h.mu.Lock()
	if h.entries == nil {
		h.entries = make(map[string]string)
	}
	h.entries[req.Domain] = entry.ID
	h.mu.Unlock()

	h.updateSnapshot(ctx, req.Domain, view)

	if h.DB != nil {
		logoURL := strings.TrimSpace(req.LogoURL)
		go func() {
			cctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
			defer cancel()
			if logoURL != "" {
				_, _ = store.CacheLogoFromURL(cctx, h.DB, logoURL)
			} else {
				_, _ = store.CacheFaviconForDomain(cctx, h.DB, req.Domain)
			}
		}()
	}
}

func (h *SearchHandler) updateSnapshot(ctx context.Context, domain string, view people.View) {
	h.mu.Lock()
	id := ""
	if h.entries != nil {
		id = h.entries[domain]
	}
	h.mu.Unlock()
	if id == "" {
		return
	}

	snap := make([]history.EmployeeSnapshot, 0, len(view.Employees))
	for _, e := range view.Employees {
		snap = append(snap, history.EmployeeSnapshot{
			ID:          e.ID,
			FullName:    e.FullName,
			JobTitle:    e.JobTitle,
			Departments: e.Departments,
			LinkedinURL: e.LinkedinURL,
		})
	}

	_ = h.CompanyLog.Update(ctx, id, func(c *history.CompanyEntry) {
		c.Employees = snap
		c.TotalPages = view.TotalPages
		c.CurrentPage = view.Page
	})
}
