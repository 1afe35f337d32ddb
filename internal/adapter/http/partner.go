package httpadapter

import "net/http"

func (h *Handler) handlePartnerDashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.svc.Partners.Dashboard(r.Context(), sessionFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dash)
}
