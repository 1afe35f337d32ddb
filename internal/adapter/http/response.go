package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"bagpresto/internal/core/apperr"
)

type errorBody struct {
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err to its HTTP status and French message. Failures that
// hide their message are logged with the full chain.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	typed := apperr.As(err)
	if typed == nil {
		typed = apperr.Wrap(apperr.CodeInternal, err, "unexpected error")
	}
	if !apperr.MetadataFor(typed.Code()).ShowMessage {
		h.logger.Error("request failed",
			slog.String("route", routePattern(r)),
			slog.String("code", string(typed.Code())),
			slog.Any("error", err),
		)
	}
	writeErrorPayload(w, typed)
}

func writeErrorPayload(w http.ResponseWriter, typed *apperr.Error) {
	meta := apperr.MetadataFor(typed.Code())
	body := errorBody{Message: meta.PublicMessage}
	if meta.ShowMessage {
		if m := typed.Message(); m != "" {
			body.Message = m
		}
		body.Details = typed.Details()
	}
	writeJSON(w, meta.HTTPStatus, errorEnvelope{Error: body})
}
