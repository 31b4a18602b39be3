// Package assistant bridges the chat UI to the remote completion endpoint.
// It is stateless: one request per call, no retry, no streaming.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/example/nchub/pkg/models"
)

const (
	defaultAPIURL = "https://api.anthropic.com/v1/messages"
	apiVersion    = "2023-06-01"
	model         = "claude-sonnet-4-20250514"
	maxTokens     = 1000

	// ErrorReply is the single user-visible message substituted for any
	// transport or parse failure. The failed attempt still becomes a
	// rendered exchange.
	ErrorReply = "Error processing request. Please try again."
	// EmptyReply is returned when the endpoint answers without any text
	// content blocks.
	EmptyReply = "Unable to generate response."
)

// Mode selects the system instruction.
type Mode string

const (
	ModeResearch Mode = "research"
	ModeLearning Mode = "learning"
)

const (
	researchPrompt = "You are a research assistant specialising in natural capital, ecosystem services, and nature restoration. Focus on verified, science-backed information, UK regulatory context, and practical relevance to project delivery. Be concise but thorough."
	learningPrompt = "You are a learning coach helping someone transition into natural capital. Quiz them, identify gaps, and build confidence while being rigorous."
)

// Gateway is a client for the messages endpoint.
type Gateway struct {
	apiKey string
	apiURL string
	client *http.Client
	log    *zap.Logger
}

// New creates a gateway client.
func New(apiKey string, log *zap.Logger) *Gateway {
	return &Gateway{
		apiKey: apiKey,
		apiURL: defaultAPIURL,
		client: &http.Client{},
		log:    log,
	}
}

type tool struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

type messagesRequest struct {
	Model     string           `json:"model"`
	MaxTokens int              `json:"max_tokens"`
	System    string           `json:"system"`
	Messages  []models.Message `json:"messages"`
	Tools     []tool           `json:"tools"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func systemPrompt(mode Mode) string {
	if mode == ModeLearning {
		return learningPrompt
	}
	return researchPrompt
}

// Respond sends the full prior history plus the mode's system instruction and
// returns the concatenated text blocks of the reply. It never fails: any
// error is logged and replaced with ErrorReply.
func (g *Gateway) Respond(ctx context.Context, mode Mode, history []models.Message) string {
	reply, err := g.complete(ctx, mode, history)
	if err != nil {
		g.log.Warn("assistant request failed", zap.String("mode", string(mode)), zap.Error(err))
		return ErrorReply
	}
	return reply
}

func (g *Gateway) complete(ctx context.Context, mode Mode, history []models.Message) (string, error) {
	request := messagesRequest{
		Model:     model,
		MaxTokens: maxTokens,
		System:    systemPrompt(mode),
		Messages:  history,
		Tools:     []tool{{Type: "web_search_20250305", Name: "web_search"}},
	}

	requestData, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL, bytes.NewBuffer(requestData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", g.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var response messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if response.Error != nil {
		return "", fmt.Errorf("API error: %s", response.Error.Message)
	}

	var parts []string
	for _, block := range response.Content {
		if block.Type == "text" {
			parts = append(parts, block.Text)
		}
	}
	if len(parts) == 0 {
		return EmptyReply, nil
	}
	return strings.Join(parts, "\n"), nil
}
