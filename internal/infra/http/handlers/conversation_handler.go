package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xavierca1/ligue-crm/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-crm/internal/usecase"
	"go.uber.org/zap"
)

type ConversationHandler struct {
	AddUC    *usecase.AddConversationUseCase
	UpdateUC *usecase.UpdateConversationUseCase
	DeleteUC *usecase.DeleteConversationUseCase
	ListUC   *usecase.ListConversationsUseCase
	Log      *zap.SugaredLogger
}

func NewConversationHandler(
	addUC *usecase.AddConversationUseCase,
	updateUC *usecase.UpdateConversationUseCase,
	deleteUC *usecase.DeleteConversationUseCase,
	listUC *usecase.ListConversationsUseCase,
	log *zap.SugaredLogger,
) *ConversationHandler {
	return &ConversationHandler{
		AddUC:    addUC,
		UpdateUC: updateUC,
		DeleteUC: deleteUC,
		ListUC:   listUC,
		Log:      log,
	}
}

// List handles GET /conversations, optionally scoped with ?leadId=.
func (h *ConversationHandler) List(w http.ResponseWriter, r *http.Request) {
	convs, err := h.ListUC.Execute(r.Context(), r.URL.Query().Get("leadId"))
	if err != nil {
		respondFailure(h.Log, w, "list conversations", err)
		return
	}

	respond(w, http.StatusOK, convs)
}

// Create handles POST /conversations.
func (h *ConversationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.AddConversationInput
	if err := decode(r, &input); err != nil {
		respondErr(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	conv, err := h.AddUC.Execute(r.Context(), input)
	if err != nil {
		respondFailure(h.Log, w, "add conversation", err)
		return
	}

	middleware.RecordConversationLogged(string(conv.Type))
	respond(w, http.StatusCreated, conv)
}

// Update handles PUT /conversations/{id} with a partial payload.
func (h *ConversationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateConversationInput
	if err := decode(r, &input); err != nil {
		respondErr(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	conv, err := h.UpdateUC.Execute(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		respondFailure(h.Log, w, "update conversation", err)
		return
	}

	respond(w, http.StatusOK, conv)
}

// Delete handles DELETE /conversations/{id}.
func (h *ConversationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.DeleteUC.Execute(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondFailure(h.Log, w, "delete conversation", err)
		return
	}

	respond(w, http.StatusOK, map[string]string{
		"message": "Conversation deleted successfully",
	})
}
