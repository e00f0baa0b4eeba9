package models

import "time"

// Message roles, matching the chat-completion API convention.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

type Conversation struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ConversationMessage is one ordered {role, content} pair of a conversation.
type ConversationMessage struct {
	ID             int       `json:"id"`
	ConversationID int       `json:"conversation_id"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	Position       int       `json:"position"`
	CreatedAt      time.Time `json:"created_at"`
}

// ConversationWithMessages bundles a conversation and its ordered messages
type ConversationWithMessages struct {
	Conversation
	Messages []ConversationMessage `json:"messages"`
}

// ChatRequest represents the request body for a chat turn
type ChatRequest struct {
	ConversationID int    `json:"conversation_id,omitempty"` // 0 starts a new conversation
	Message        string `json:"message"`
}

// ChatResponse is the assistant reply for one chat turn
type ChatResponse struct {
	ConversationID int    `json:"conversation_id"`
	Reply          string `json:"reply"`
}
