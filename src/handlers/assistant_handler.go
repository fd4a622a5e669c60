// backend/src/handlers/assistant_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/username/finassist/backend/src/assistant"
	"github.com/username/finassist/backend/src/config"
	"github.com/username/finassist/backend/src/logger"
	"github.com/username/finassist/backend/src/models"
	"github.com/username/finassist/backend/src/security/validation"
	"github.com/username/finassist/backend/src/store"
	"github.com/username/finassist/backend/src/utils"
)

// AssistantHandler exposes the natural-language query engine over HTTP.
type AssistantHandler struct {
	orchestrator *assistant.Orchestrator
	store        store.Store
}

func NewAssistantHandler(orchestrator *assistant.Orchestrator, s store.Store) *AssistantHandler {
	return &AssistantHandler{orchestrator: orchestrator, store: s}
}

// QueryRequest is the body of POST /api/assistant/query.
type QueryRequest struct {
	Question string `json:"question"`
}

// ConversationResponse is the observable conversation state.
type ConversationResponse struct {
	Messages     []models.ConversationMessage `json:"messages"`
	IsProcessing bool                         `json:"is_processing"`
}

// HandleQuery runs one question through the engine and returns the
// assistant's answer message.
func (h *AssistantHandler) HandleQuery(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Question) > config.Cfg.MaxQuestionLength {
		utils.SendJSONError(w, "Question is too long", http.StatusBadRequest)
		return
	}
	question := validation.SanitizeText(validation.StripUnprintable(req.Question))

	message, err := h.orchestrator.Submit(r.Context(), userID, question)
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrBusy):
			utils.SendJSONError(w, "A previous question is still being processed", http.StatusConflict)
		case errors.Is(err, assistant.ErrEmptyQuestion):
			utils.SendJSONError(w, "Question must not be empty", http.StatusBadRequest)
		default:
			logger.FromContext(r.Context()).Error("Unexpected submit failure", "userID", userID, "error", err)
			utils.SendJSONError(w, "Failed to process question", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(message); err != nil {
		logger.FromContext(r.Context()).Error("Error encoding query response", "userID", userID, "error", err)
	}
}

// HandleGetConversation returns the ordered conversation state for the
// authenticated user.
func (h *AssistantHandler) HandleGetConversation(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	messages := h.orchestrator.Conversation(userID)
	if messages == nil {
		messages = []models.ConversationMessage{}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ConversationResponse{
		Messages:     messages,
		IsProcessing: h.orchestrator.IsProcessing(userID),
	}); err != nil {
		logger.FromContext(r.Context()).Error("Error encoding conversation response", "userID", userID, "error", err)
	}
}

// HandleGetHistory returns the persisted query history, most recent
// first.
func (h *AssistantHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	records, err := h.store.ListQueryRecords(r.Context(), userID, config.Cfg.QueryHistoryLimit)
	if err != nil {
		logger.FromContext(r.Context()).Error("Error loading query history", "userID", userID, "error", err)
		utils.SendJSONError(w, "Failed to load query history", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []models.QueryRecord{}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(records); err != nil {
		logger.FromContext(r.Context()).Error("Error encoding query history", "userID", userID, "error", err)
	}
}
