package httpapi

import (
	"net/http"

	"prospector-engine/internal/credits"
	"prospector-engine/internal/lookup"
)

type CreditsHandler struct {
	Ledger *credits.Ledger
}

type creditsResp struct {
	Balance int    `json:"balance"`
	Known   bool   `json:"known"`
	Error   string `json:"error,omitempty"`
}

// Get returns the balance. With ?refresh=1 (or when nothing is cached yet)
// the server is asked first. A failed fetch is never fatal here: the UI
// shows a placeholder for an unknown balance, except the missing-credential
// case which it must surface as a blocking reconfigure prompt.
func (h *CreditsHandler) Get(w http.ResponseWriter, r *http.Request) {
	balance, known := h.Ledger.Current()

	if r.URL.Query().Get("refresh") == "1" || !known {
		if b, err := h.Ledger.Refresh(r.Context()); err == nil {
			balance, known = b, true
		} else if lookup.IsNotConfigured(err) {
			writeJSON(w, creditsResp{Known: known, Balance: balance, Error: "not_configured"})
			return
		}
	}

	writeJSON(w, creditsResp{Balance: balance, Known: known})
}
