package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"prospector-engine/internal/credits"
	"prospector-engine/internal/enrich"
	"prospector-engine/internal/events"
	"prospector-engine/internal/history"
	"prospector-engine/internal/lookup"
)

// fixed user-facing message for the succeeded-but-empty case
const noEmailMsg = "no email found for this person"

type EnrichHandler struct {
	Lookup   LookupClient
	Ledger   *credits.Ledger
	EmailLog *history.Log[*history.EmailEntry]
	Hub      *events.Hub
}

type enrichReq struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Domain    string `json:"domain"`
}

type enrichResp struct {
	Entry *history.EmailEntry  `json:"entry"`
	Data  *enrich.EnrichedData `json:"data"`
}

// Enrich runs one paid name+domain lookup. Every completed attempt lands in
// the email history, success or failure; a torn-down request writes nothing.
func (h *EnrichHandler) Enrich(w http.ResponseWriter, r *http.Request) {
	var req enrichReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Domain = strings.ToLower(strings.TrimSpace(req.Domain))
	if req.FirstName == "" || req.LastName == "" || req.Domain == "" {
		WriteError(w, r, http.StatusBadRequest, "missing_fields", "first_name, last_name and domain are required")
		return
	}

	resp, err := h.Lookup.EnrichPerson(r.Context(), req.FirstName, req.LastName, req.Domain)
	if err != nil {
		if r.Context().Err() != nil {
			// screen torn down mid-flight: discard, no history write
			return
		}
		h.record(r, req, history.StatusError, nil, err.Error())
		if !lookup.IsNotConfigured(err) {
			go h.Ledger.RefreshBestEffort(context.Background())
		}
		WriteLookupError(w, r, err)
		return
	}

	h.Ledger.Apply(resp.Balance)

	data, ok := enrich.MapEnrichResponse(resp, req.Domain)
	if !ok {
		// transport success, business miss
		h.record(r, req, history.StatusError, nil, noEmailMsg)
		WriteError(w, r, http.StatusNotFound, "no_email", noEmailMsg)
		return
	}

	entry := h.record(r, req, history.StatusSuccess, data, "")
	writeJSON(w, enrichResp{Entry: entry, Data: data})
}

func (h *EnrichHandler) record(r *http.Request, req enrichReq, status history.Status, data *enrich.EnrichedData, errMsg string) *history.EmailEntry {
	entry, err := h.EmailLog.Add(r.Context(), &history.EmailEntry{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Domain:       req.Domain,
		Status:       status,
		Data:         data,
		ErrorMessage: errMsg,
	})
	if err != nil {
		return nil
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, "history_changed", 1, map[string]any{
		"kind": history.KindEmail, "id": entry.ID,
	}))
	return entry
}
