package httpadapter

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bagpresto/internal/core/apperr"
	"bagpresto/internal/core/domain"
)

// decodeQuote reads a wizard quote. Fields missing from the body keep the
// wizard defaults.
func decodeQuote(w http.ResponseWriter, r *http.Request) (domain.Quote, error) {
	q := domain.NewQuote()
	if err := decodeJSONBody(w, r, &q); err != nil {
		return domain.Quote{}, err
	}
	return q, nil
}

func (h *Handler) handlePriceQuote(w http.ResponseWriter, r *http.Request) {
	q, err := decodeQuote(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Campaigns.PriceQuote(r.Context(), q))
}

func (h *Handler) handleValidateStep(w http.ResponseWriter, r *http.Request) {
	step := domain.WizardStep(chi.URLParam(r, "step"))
	if !step.IsValid() {
		h.writeError(w, r, apperr.New(apperr.CodeNotFound, fmt.Sprintf("Étape inconnue %q", step)))
		return
	}
	q, err := decodeQuote(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Campaigns.ValidateStep(r.Context(), step, q))
}

func (h *Handler) handleNearbyPartners(w http.ResponseWriter, r *http.Request) {
	partners, err := h.svc.Campaigns.NearbyPartners(r.Context(), r.URL.Query().Get("postal_code"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, partners)
}
