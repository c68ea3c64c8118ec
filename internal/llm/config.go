package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of tutoring call being made. Each task
// carries its own generation parameters.
type TaskType string

const (
	TaskQuestion TaskType = "question"
	TaskFeedback TaskType = "feedback"
	TaskExplain  TaskType = "explain"
	TaskExam     TaskType = "exam"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the language-model gateway.
type Config struct {
	APIKey     string
	Endpoint   string // OpenAI-compatible base URL
	Model      string
	TimeoutMs  int
	MaxRetries int
	LogCalls   bool
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config pointed at the DeepSeek chat-completions API.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "https://api.deepseek.com/v1",
		Model:      "deepseek-chat",
		TimeoutMs:  10000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskQuestion: {Temperature: 0.7, MaxTokens: 800},
			TaskFeedback: {Temperature: 0.7, MaxTokens: 600},
			TaskExplain:  {Temperature: 0.5, MaxTokens: 800},
			TaskExam:     {Temperature: 0.6, MaxTokens: 800},
		},
	}
}

// LoadConfig reads gateway configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	cfg.APIKey = os.Getenv("LAYZA_API_KEY")
	if v := os.Getenv("LAYZA_API_URL"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("LAYZA_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("LAYZA_LLM_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.TimeoutMs = ms
		}
	}
	if v := os.Getenv("LAYZA_LLM_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("LAYZA_LLM_LOG"); v != "" {
		cfg.LogCalls = v == "true" || v == "1"
	}

	return cfg
}

// TaskTimeout returns the effective timeout in milliseconds for a task.
func (c Config) TaskTimeout(task TaskType) int {
	if t, ok := c.Tasks[task]; ok && t.TimeoutMs > 0 {
		return t.TimeoutMs
	}
	return c.TimeoutMs
}
