package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/usecase"
	"go.uber.org/zap"
)

func decode(r *http.Request, into any) error {
	return json.NewDecoder(r.Body).Decode(into)
}

func respond(w http.ResponseWriter, status int, data any) {
	if status == http.StatusNoContent || data == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondErr(w http.ResponseWriter, status int, message string) {
	respond(w, status, map[string]string{"error": message})
}

// respondFailure maps the error taxonomy to status codes: domain/validation
// errors are 400, missing entities 404, everything else a logged 500 with a
// generic message.
func respondFailure(log *zap.SugaredLogger, w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, entity.ErrLeadNotFound), errors.Is(err, entity.ErrConversationNotFound):
		respondErr(w, http.StatusNotFound, err.Error())
	case usecase.IsDomainError(err):
		respondErr(w, http.StatusBadRequest, err.Error())
	case usecase.IsTechnicalError(err):
		techErr := err.(*usecase.TechnicalError)
		log.Errorw(op, "code", techErr.Code, "error", techErr.Message)
		respondErr(w, http.StatusInternalServerError, "internal server error")
	default:
		log.Errorw(op, "error", err.Error())
		respondErr(w, http.StatusInternalServerError, "internal server error")
	}
}
