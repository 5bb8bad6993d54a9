package credits

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"prospector-engine/internal/events"
	"prospector-engine/internal/lookup"
)

// Fetcher is the slice of the lookup client the ledger needs.
type Fetcher interface {
	FetchCredits(ctx context.Context) (lookup.CreditsResponse, error)
}

// Ledger caches the last balance the server reported. The server is
// authoritative: values arrive either from an explicit fetch or piggybacked
// on paid-lookup responses, and the newest server value always wins. An
// unknown balance stays unknown (the UI shows a placeholder), never zero.
type Ledger struct {
	mu        sync.Mutex
	balance   int
	known     bool
	updatedAt time.Time

	sf    singleflight.Group
	fetch Fetcher
	hub   *events.Hub
}

func NewLedger(fetch Fetcher, hub *events.Hub) *Ledger {
	return &Ledger{fetch: fetch, hub: hub}
}

// Current returns the cached balance and whether one is known yet.
func (l *Ledger) Current() (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance, l.known
}

// Apply takes a balance carried on a lookup response. nil means the response
// carried none.
func (l *Ledger) Apply(balance *int) {
	if balance == nil {
		return
	}
	l.set(*balance)
}

// Refresh fetches the balance from the server. Concurrent refreshes from
// different screens collapse into one request. The fetch runs on a detached
// context so one screen tearing down mid-flight does not fail the others.
func (l *Ledger) Refresh(ctx context.Context) (int, error) {
	v, err, _ := l.sf.Do("credits", func() (any, error) {
		fctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		resp, err := l.fetch.FetchCredits(fctx)
		if err != nil {
			return 0, err
		}
		l.set(resp.Balance)
		return resp.Balance, nil
	})
	if err != nil {
		return 0, err
	}
	if ctx.Err() != nil {
		return 0, ctx.Err()
	}
	return v.(int), nil
}

// RefreshBestEffort re-fetches after a failed paid lookup so the displayed
// count does not drift from server truth. Its own failure is swallowed.
func (l *Ledger) RefreshBestEffort(ctx context.Context) {
	if _, err := l.Refresh(ctx); err != nil {
		log.Printf("[credits] best-effort refresh failed: %v", err)
	}
}

func (l *Ledger) set(balance int) {
	l.mu.Lock()
	changed := !l.known || l.balance != balance
	l.balance = balance
	l.known = true
	l.updatedAt = time.Now().UTC()
	l.mu.Unlock()

	if changed && l.hub != nil {
		l.hub.Publish(events.MakeEvent("", "credits_updated", 1, map[string]any{"balance": balance}))
	}
}
