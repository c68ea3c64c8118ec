package llm

import "errors"

var (
	// ErrMissingAPIKey indicates no API credential was configured.
	// This is the only gateway error that aborts session construction.
	ErrMissingAPIKey = errors.New("llm api key not configured")

	// ErrRateLimited indicates the API returned HTTP 429.
	ErrRateLimited = errors.New("llm api rate limited")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrUnavailable indicates the API was unreachable or returned a
	// server error.
	ErrUnavailable = errors.New("llm api unavailable")

	// ErrEmptyCompletion indicates a 200 response with no choices.
	ErrEmptyCompletion = errors.New("llm returned empty completion")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
