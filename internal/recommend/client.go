// Package recommend fetches study-content suggestions from the
// recommendation backend.
package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/layza-app/layza/internal/domain"
)

// recommendTimeout bounds a lookup; a suggestion is not worth stalling the
// dialogue for.
const recommendTimeout = 3 * time.Second

// Client talks to the recommendation backend over HTTP.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a Client for the given endpoint. An empty endpoint
// disables lookups; Recommend then always reports nothing found.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{},
	}
}

type recommendationPayload struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Format string `json:"format"`
}

// Recommend fetches the best suggestion for a topic, preferring the given
// format when the backend has one. A nil result with a nil error means
// nothing was found.
func (c *Client) Recommend(ctx context.Context, topic string, format domain.Preference) (*domain.Recommendation, error) {
	if c.endpoint == "" || topic == "" {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, recommendTimeout)
	defer cancel()

	q := url.Values{}
	q.Set("topic", topic)
	if format != "" {
		q.Set("format", string(format))
	}
	reqURL := c.endpoint + "/recommendations?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building recommendation request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching recommendations: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recommendation backend returned status %d", resp.StatusCode)
	}

	var payload []recommendationPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding recommendations: %w", err)
	}
	if len(payload) == 0 {
		return nil, nil
	}

	first := payload[0]
	rec := &domain.Recommendation{
		ID:    first.ID,
		Title: first.Title,
		URL:   first.URL,
	}
	if domain.ValidPreferences[first.Format] {
		rec.Format = domain.Preference(first.Format)
	}
	return rec, nil
}
