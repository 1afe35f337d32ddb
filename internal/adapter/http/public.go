package httpadapter

import (
	"net/http"

	"bagpresto/internal/core/port"
)

func (h *Handler) handleRegisterClient(w http.ResponseWriter, r *http.Request) {
	var req port.ClientRegistration
	if err := decodeJSONBody(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	client, err := h.svc.Registration.RegisterClient(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, client)
}

func (h *Handler) handleRegisterPartner(w http.ResponseWriter, r *http.Request) {
	var req port.PartnerRegistration
	if err := decodeJSONBody(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	partner, err := h.svc.Registration.RegisterPartner(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, partner)
}

func (h *Handler) handleStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Statistics.Current(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
