package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/nchub/pkg/models"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) *Gateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	g := New("test-key", zap.NewNop())
	g.apiURL = srv.URL
	return g
}

func TestRespondConcatenatesTextBlocks(t *testing.T) {
	var captured messagesRequest
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{
				{"type": "text", "text": "First part."},
				{"type": "server_tool_use", "text": "ignored"},
				{"type": "text", "text": "Second part."},
			},
		})
	})

	history := []models.Message{{Role: "user", Content: "What is BNG?"}}
	got := g.Respond(context.Background(), ModeResearch, history)

	assert.Equal(t, "First part.\nSecond part.", got)
	assert.Equal(t, "claude-sonnet-4-20250514", captured.Model)
	assert.Equal(t, 1000, captured.MaxTokens)
	assert.Equal(t, researchPrompt, captured.System)
	assert.Equal(t, history, captured.Messages)
	require.Len(t, captured.Tools, 1)
	assert.Equal(t, "web_search_20250305", captured.Tools[0].Type)
}

func TestRespondLearningModePrompt(t *testing.T) {
	var captured messagesRequest
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{{"type": "text", "text": "ok"}},
		})
	})

	g.Respond(context.Background(), ModeLearning, nil)
	assert.Equal(t, learningPrompt, captured.System)
}

func TestRespondUnknownModeFallsBackToResearch(t *testing.T) {
	var captured messagesRequest
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{{"type": "text", "text": "ok"}},
		})
	})

	g.Respond(context.Background(), Mode("something-else"), nil)
	assert.Equal(t, researchPrompt, captured.System)
}

func TestRespondAPIErrorYieldsErrorReply(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "invalid request"},
		})
	})

	got := g.Respond(context.Background(), ModeResearch, nil)
	assert.Equal(t, ErrorReply, got)
}

func TestRespondTransportFailureYieldsErrorReply(t *testing.T) {
	g := New("test-key", zap.NewNop())
	g.apiURL = "http://127.0.0.1:0"

	got := g.Respond(context.Background(), ModeResearch, nil)
	assert.Equal(t, ErrorReply, got)
}

func TestRespondNoTextBlocksYieldsEmptyReply(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{{"type": "server_tool_use", "text": "x"}},
		})
	})

	got := g.Respond(context.Background(), ModeResearch, nil)
	assert.Equal(t, EmptyReply, got)
}
