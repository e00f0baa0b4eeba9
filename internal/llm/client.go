package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"mumanager-backend/internal/config"
	"mumanager-backend/internal/metrics"
)

// Message is one turn of a chat exchange
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatProvider is an interface for chat-completion backends
type ChatProvider interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// OpenAIClient implements ChatProvider against an OpenAI-compatible
// chat-completions endpoint.
type OpenAIClient struct {
	baseURL string
	model   string
	apiKey  string
	client  *http.Client
}

func NewOpenAIClient(cfg *config.Config) *OpenAIClient {
	return &OpenAIClient{
		baseURL: cfg.LLM.BaseURL,
		model:   cfg.LLM.Model,
		apiKey:  cfg.LLM.APIKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type completionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends the conversation history and returns the assistant reply
func (c *OpenAIClient) Complete(ctx context.Context, messages []Message) (string, error) {
	payload := completionRequest{Model: c.model, Messages: messages}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.ChatCompletionsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("failed to call chat API: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		metrics.ChatCompletionsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("chat API error (status %d): %s", resp.StatusCode, string(body))
	}

	var apiResp completionResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		metrics.ChatCompletionsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("failed to decode chat API response: %w", err)
	}
	if apiResp.Error != nil {
		metrics.ChatCompletionsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("chat API error: %s", apiResp.Error.Message)
	}
	if len(apiResp.Choices) == 0 {
		metrics.ChatCompletionsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("chat API returned no choices")
	}

	metrics.ChatCompletionsTotal.WithLabelValues("success").Inc()
	return apiResp.Choices[0].Message.Content, nil
}
