package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-crm/internal/usecase"
	"go.uber.org/zap"
)

type LeadHandler struct {
	CreateUC *usecase.CreateLeadUseCase
	GetUC    *usecase.GetLeadUseCase
	ListUC   *usecase.ListLeadsUseCase
	UpdateUC *usecase.UpdateLeadUseCase
	DeleteUC *usecase.DeleteLeadUseCase
	MoveUC   *usecase.MoveStageUseCase
	SearchUC *usecase.SearchLeadsUseCase
	Log      *zap.SugaredLogger
}

func NewLeadHandler(
	createUC *usecase.CreateLeadUseCase,
	getUC *usecase.GetLeadUseCase,
	listUC *usecase.ListLeadsUseCase,
	updateUC *usecase.UpdateLeadUseCase,
	deleteUC *usecase.DeleteLeadUseCase,
	moveUC *usecase.MoveStageUseCase,
	searchUC *usecase.SearchLeadsUseCase,
	log *zap.SugaredLogger,
) *LeadHandler {
	return &LeadHandler{
		CreateUC: createUC,
		GetUC:    getUC,
		ListUC:   listUC,
		UpdateUC: updateUC,
		DeleteUC: deleteUC,
		MoveUC:   moveUC,
		SearchUC: searchUC,
		Log:      log,
	}
}

// Create handles POST /leads.
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := decode(r, &input); err != nil {
		respondErr(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	lead, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		respondFailure(h.Log, w, "create lead", err)
		return
	}

	middleware.RecordLeadCreated(string(lead.Stage))
	respond(w, http.StatusCreated, lead)
}

// List handles GET /leads. The id query param mirrors the single-lead
// lookup, stage filters the listing, order picks updated (default) or
// created ordering.
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	if id := r.URL.Query().Get("id"); id != "" {
		h.getByID(w, r, id)
		return
	}

	leads, err := h.ListUC.Execute(r.Context(), r.URL.Query().Get("stage"), r.URL.Query().Get("order"))
	if err != nil {
		respondFailure(h.Log, w, "list leads", err)
		return
	}

	respond(w, http.StatusOK, leads)
}

// Get handles GET /leads/{id}.
func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.getByID(w, r, chi.URLParam(r, "id"))
}

func (h *LeadHandler) getByID(w http.ResponseWriter, r *http.Request, id string) {
	lead, err := h.GetUC.Execute(r.Context(), id)
	if err != nil {
		respondFailure(h.Log, w, "get lead", err)
		return
	}

	respond(w, http.StatusOK, lead)
}

// Update handles PUT /leads/{id} with a partial payload.
func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateLeadInput
	if err := decode(r, &input); err != nil {
		respondErr(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	lead, err := h.UpdateUC.Execute(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		respondFailure(h.Log, w, "update lead", err)
		return
	}

	respond(w, http.StatusOK, lead)
}

// Delete handles DELETE /leads/{id}, cascading to the lead's conversations.
func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.DeleteUC.Execute(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondFailure(h.Log, w, "delete lead", err)
		return
	}

	respond(w, http.StatusOK, map[string]string{
		"message": "Lead and associated conversations deleted successfully",
	})
}

type moveStageRequest struct {
	Stage string `json:"stage"`
}

// Move handles POST /leads/{id}/move.
func (h *LeadHandler) Move(w http.ResponseWriter, r *http.Request) {
	var req moveStageRequest
	if err := decode(r, &req); err != nil {
		respondErr(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	lead, err := h.MoveUC.Execute(r.Context(), chi.URLParam(r, "id"), entity.Stage(req.Stage))
	if err != nil {
		respondFailure(h.Log, w, "move lead", err)
		return
	}

	middleware.RecordStageMove(string(lead.Stage))
	respond(w, http.StatusOK, lead)
}

// Search handles GET /leads/search?q=.
func (h *LeadHandler) Search(w http.ResponseWriter, r *http.Request) {
	leads, err := h.SearchUC.Execute(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondFailure(h.Log, w, "search leads", err)
		return
	}

	respond(w, http.StatusOK, leads)
}
