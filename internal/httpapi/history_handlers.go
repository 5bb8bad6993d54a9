package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"prospector-engine/internal/events"
	"prospector-engine/internal/history"
)

type HistoryHandler struct {
	EmailLog   *history.Log[*history.EmailEntry]
	CompanyLog *history.Log[*history.CompanyEntry]
	Hub        *events.Hub
}

// List returns both logs merged newest-first.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	merged := history.Merge(h.EmailLog.All(), h.CompanyLog.All())
	if merged == nil {
		merged = []history.Record{}
	}
	writeJSON(w, merged)
}

// DeleteByPath removes one entry: /history/{id}?kind=email|company. Without
// a kind it tries both logs; unknown ids are a silent no-op either way.
func (h *HistoryHandler) DeleteByPath(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(strings.TrimPrefix(r.URL.Path, "/history/"))
	if id == "" {
		WriteError(w, r, http.StatusBadRequest, "missing_id", "missing entry id")
		return
	}

	kind := history.Kind(r.URL.Query().Get("kind"))
	var err error
	switch kind {
	case history.KindEmail:
		err = h.EmailLog.Remove(r.Context(), id)
	case history.KindCompany:
		err = h.CompanyLog.Remove(r.Context(), id)
	default:
		if err = h.EmailLog.Remove(r.Context(), id); err == nil {
			err = h.CompanyLog.Remove(r.Context(), id)
		}
	}
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "persist_failed", err.Error())
		return
	}

	h.publishChanged(r, kind, id)
	writeJSON(w, map[string]any{"ok": true, "id": id})
}

type clearHistoryReq struct {
	Kind history.Kind `json:"kind"` // empty clears both
}

func (h *HistoryHandler) Clear(w http.ResponseWriter, r *http.Request) {
	var req clearHistoryReq
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	var err error
	switch req.Kind {
	case history.KindEmail:
		err = h.EmailLog.Clear(r.Context())
	case history.KindCompany:
		err = h.CompanyLog.Clear(r.Context())
	default:
		if err = h.EmailLog.Clear(r.Context()); err == nil {
			err = h.CompanyLog.Clear(r.Context())
		}
	}
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "persist_failed", err.Error())
		return
	}

	h.publishChanged(r, req.Kind, "")
	writeJSON(w, map[string]any{"ok": true})
}

func (h *HistoryHandler) publishChanged(r *http.Request, kind history.Kind, id string) {
	reqID := RequestIDFrom(r.Context())
	data := map[string]any{}
	if kind != "" {
		data["kind"] = kind
	}
	if id != "" {
		data["id"] = id
	}
	h.Hub.Publish(events.MakeEvent(reqID, "history_changed", 1, data))
}
