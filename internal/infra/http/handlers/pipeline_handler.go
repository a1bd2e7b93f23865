package handlers

import (
	"net/http"
	"strconv"

	"github.com/xavierca1/ligue-crm/internal/usecase"
	"go.uber.org/zap"
)

type PipelineHandler struct {
	LoadUC      *usecase.LoadPipelineUseCase
	RemindersUC *usecase.UpcomingRemindersUseCase
	Log         *zap.SugaredLogger
}

func NewPipelineHandler(loadUC *usecase.LoadPipelineUseCase, remindersUC *usecase.UpcomingRemindersUseCase, log *zap.SugaredLogger) *PipelineHandler {
	return &PipelineHandler{
		LoadUC:      loadUC,
		RemindersUC: remindersUC,
		Log:         log,
	}
}

// Load handles GET /pipeline: the four stage columns in display order.
func (h *PipelineHandler) Load(w http.ResponseWriter, r *http.Request) {
	columns, err := h.LoadUC.Execute(r.Context())
	if err != nil {
		respondFailure(h.Log, w, "load pipeline", err)
		return
	}

	respond(w, http.StatusOK, columns)
}

// Reminders handles GET /reminders?days=N (default 30).
func (h *PipelineHandler) Reminders(w http.ResponseWriter, r *http.Request) {
	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondErr(w, http.StatusBadRequest, "days must be a positive integer")
			return
		}
		days = parsed
	}

	reminders, err := h.RemindersUC.Execute(r.Context(), days)
	if err != nil {
		respondFailure(h.Log, w, "upcoming reminders", err)
		return
	}

	respond(w, http.StatusOK, reminders)
}
