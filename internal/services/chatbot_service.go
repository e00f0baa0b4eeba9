package services

import (
	"context"
	"unicode/utf8"

	"mumanager-backend/internal/llm"
	"mumanager-backend/internal/models"
	"mumanager-backend/internal/repositories"
)

const (
	// conversationTitleLen caps the title derived from the first message.
	conversationTitleLen = 30

	assistantSystemPrompt = "You are a helpful assistant for a small-business management tool. " +
		"Users manage companies, clients, contracts and invoices. Answer concisely in the user's language."
)

// ChatbotService runs the assistant conversations. History lives in the
// database; every turn replays the full conversation to the provider.
type ChatbotService struct {
	Repo     *repositories.ConversationRepository
	Provider llm.ChatProvider
}

func NewChatbotService(repo *repositories.ConversationRepository, provider llm.ChatProvider) *ChatbotService {
	return &ChatbotService{Repo: repo, Provider: provider}
}

// ConversationTitle derives a conversation title from its opening message
func ConversationTitle(message string) string {
	if utf8.RuneCountInString(message) <= conversationTitleLen {
		return message
	}
	runes := []rune(message)
	return string(runes[:conversationTitleLen])
}

// Chat appends one user turn, asks the provider, and stores the reply. A
// zero conversation id starts a new conversation titled after the message.
func (s *ChatbotService) Chat(ctx context.Context, userID int, req *models.ChatRequest) (*models.ChatResponse, error) {
	if req.Message == "" {
		return nil, ValidationError("message is required")
	}

	var conv *models.Conversation
	if req.ConversationID == 0 {
		conv = &models.Conversation{
			UserID: userID,
			Title:  ConversationTitle(req.Message),
		}
		if err := s.Repo.Create(ctx, conv); err != nil {
			return nil, err
		}
	} else {
		var err error
		conv, err = s.Repo.Get(ctx, req.ConversationID)
		if err != nil {
			return nil, err
		}
		if conv.UserID != userID {
			return nil, ErrNotOwner
		}
	}

	userMsg := &models.ConversationMessage{
		ConversationID: conv.ID,
		Role:           models.RoleUser,
		Content:        req.Message,
	}
	if err := s.Repo.AppendMessage(ctx, userMsg); err != nil {
		return nil, err
	}

	history, err := s.Repo.GetWithMessages(ctx, conv.ID)
	if err != nil {
		return nil, err
	}

	messages := make([]llm.Message, 0, len(history.Messages)+1)
	messages = append(messages, llm.Message{Role: models.RoleSystem, Content: assistantSystemPrompt})
	for _, msg := range history.Messages {
		messages = append(messages, llm.Message{Role: msg.Role, Content: msg.Content})
	}

	reply, err := s.Provider.Complete(ctx, messages)
	if err != nil {
		return nil, err
	}

	assistantMsg := &models.ConversationMessage{
		ConversationID: conv.ID,
		Role:           models.RoleAssistant,
		Content:        reply,
	}
	if err := s.Repo.AppendMessage(ctx, assistantMsg); err != nil {
		return nil, err
	}

	return &models.ChatResponse{ConversationID: conv.ID, Reply: reply}, nil
}

// GetConversation returns a conversation with its messages, after checking
// it belongs to userID.
func (s *ChatbotService) GetConversation(ctx context.Context, userID, id int) (*models.ConversationWithMessages, error) {
	conv, err := s.Repo.GetWithMessages(ctx, id)
	if err != nil {
		return nil, err
	}
	if conv.UserID != userID {
		return nil, ErrNotOwner
	}
	return conv, nil
}

func (s *ChatbotService) ListConversations(ctx context.Context, userID int) ([]*models.Conversation, error) {
	return s.Repo.ListByUser(ctx, userID)
}

func (s *ChatbotService) DeleteConversation(ctx context.Context, userID, id int) error {
	conv, err := s.Repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if conv.UserID != userID {
		return ErrNotOwner
	}
	return s.Repo.Delete(ctx, id)
}
