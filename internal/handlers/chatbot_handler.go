package handlers

import (
	"encoding/json"
	"net/http"

	"mumanager-backend/internal/models"
	"mumanager-backend/internal/services"
	"mumanager-backend/pkg/utils"
)

type ChatbotHandler struct {
	Service *services.ChatbotService
}

func NewChatbotHandler(s *services.ChatbotService) *ChatbotHandler {
	return &ChatbotHandler{Service: s}
}

// Message runs one chat turn, creating the conversation when needed
func (h *ChatbotHandler) Message(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.Service.Chat(r.Context(), userID, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, resp)
}

func (h *ChatbotHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}

	convs, err := h.Service.ListConversations(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, convs)
}

func (h *ChatbotHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	conv, err := h.Service.GetConversation(r.Context(), userID, id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, conv)
}

func (h *ChatbotHandler) DeleteConversation(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.Service.DeleteConversation(r.Context(), userID, id); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"message": "Conversation deleted"})
}
