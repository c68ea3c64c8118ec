package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer returns a Gateway wired to a fake chat-completions endpoint.
func newTestServer(t *testing.T, handler http.HandlerFunc) (Gateway, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.Endpoint = srv.URL + "/v1"
	cfg.MaxRetries = 0

	gw, err := NewClient(cfg, NoopObserver{})
	require.NoError(t, err)
	return gw, srv
}

func completionJSON(text string) string {
	body := map[string]any{
		"id":     "cmpl-1",
		"object": "chat.completion",
		"model":  "deepseek-chat",
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": text},
			},
		},
	}
	data, _ := json.Marshal(body)
	return string(data)
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(DefaultConfig(), nil)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestGenerate_Success(t *testing.T) {
	var gotAuth string
	gw, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionJSON("O que você já sabe sobre frações?")))
	})

	resp, err := gw.Generate(context.Background(), GenerateRequest{
		Task:         TaskQuestion,
		SystemPrompt: "persona",
		UserPrompt:   "pergunta",
	})
	require.NoError(t, err)
	assert.Equal(t, "O que você já sabe sobre frações?", resp.Text)
	assert.Equal(t, "Bearer test-key", gotAuth)
}

func TestGenerate_RateLimited(t *testing.T) {
	gw, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limit","type":"rate_limit_exceeded"}}`))
	})

	_, err := gw.Generate(context.Background(), GenerateRequest{Task: TaskQuestion, UserPrompt: "q"})
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestGenerate_ServerErrorMapsToUnavailable(t *testing.T) {
	gw, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := gw.Generate(context.Background(), GenerateRequest{Task: TaskQuestion, UserPrompt: "q"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetryExhausted)
}

func TestGenerate_RetriesThenSucceeds(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionJSON("segunda tentativa")))
	}))
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.Endpoint = srv.URL + "/v1"
	cfg.MaxRetries = 1

	gw, err := NewClient(cfg, NoopObserver{})
	require.NoError(t, err)

	resp, err := gw.Generate(context.Background(), GenerateRequest{Task: TaskFeedback, UserPrompt: "q"})
	require.NoError(t, err)
	assert.Equal(t, "segunda tentativa", resp.Text)
	assert.Equal(t, 2, calls)
}

func TestTaskTimeout(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 10000, cfg.TaskTimeout(TaskQuestion))

	cfg.Tasks[TaskExam] = TaskConfig{TimeoutMs: 5000}
	assert.Equal(t, 5000, cfg.TaskTimeout(TaskExam))
	assert.Equal(t, cfg.TimeoutMs, cfg.TaskTimeout(TaskType("other")))
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("LAYZA_API_KEY", "sk-abc")
	t.Setenv("LAYZA_MODEL", "deepseek-reasoner")
	t.Setenv("LAYZA_LLM_TIMEOUT_MS", "2500")
	t.Setenv("LAYZA_LLM_LOG", "true")

	cfg := LoadConfig()
	assert.Equal(t, "sk-abc", cfg.APIKey)
	assert.Equal(t, "deepseek-reasoner", cfg.Model)
	assert.Equal(t, 2500, cfg.TimeoutMs)
	assert.True(t, cfg.LogCalls)
}

func TestMockGateway_FIFOAndRecording(t *testing.T) {
	gw := NewMockGateway(
		MockReply{Text: "primeira"},
		MockReply{Err: ErrRateLimited},
	)

	resp, err := gw.Generate(context.Background(), GenerateRequest{Task: TaskQuestion, UserPrompt: "a"})
	require.NoError(t, err)
	assert.Equal(t, "primeira", resp.Text)

	_, err = gw.Generate(context.Background(), GenerateRequest{Task: TaskFeedback, UserPrompt: "b"})
	assert.ErrorIs(t, err, ErrRateLimited)

	_, err = gw.Generate(context.Background(), GenerateRequest{Task: TaskExplain, UserPrompt: "c"})
	assert.ErrorIs(t, err, ErrUnavailable)

	require.Len(t, gw.Calls, 3)
	assert.Equal(t, "a", gw.Calls[0].UserPrompt)
}
