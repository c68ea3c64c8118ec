// Package auth resolves an access token into a role and learning
// preferences. Validation is best effort: on any network or decode failure
// the caller gets the default student access rather than an error.
package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/layza-app/layza/internal/domain"
)

// validateTimeout bounds the token check; the menu must not hang on a slow
// auth backend.
const validateTimeout = 1 * time.Second

// Access is the resolved result of a token validation.
type Access struct {
	Role        domain.Role
	Preferences []domain.Preference
}

// DefaultAccess is what every caller gets when validation cannot complete.
func DefaultAccess() Access {
	return Access{Role: domain.RoleStudent}
}

// Validator checks access tokens against the auth backend.
type Validator struct {
	endpoint string
	http     *http.Client
}

// NewValidator creates a Validator for the given endpoint. An empty
// endpoint disables remote validation; Validate then always returns the
// default access.
func NewValidator(endpoint string) *Validator {
	return &Validator{
		endpoint: endpoint,
		http:     &http.Client{},
	}
}

type validateResponse struct {
	Role        string   `json:"role"`
	Preferences []string `json:"preferences"`
}

// Validate resolves token into an Access. Never fails: timeouts, transport
// errors, non-200 statuses and malformed payloads all degrade to the
// default student access.
func (v *Validator) Validate(ctx context.Context, token string) Access {
	if v.endpoint == "" || token == "" {
		return DefaultAccess()
	}

	ctx, cancel := context.WithTimeout(ctx, validateTimeout)
	defer cancel()

	reqURL := v.endpoint + "/validate?token=" + url.QueryEscape(token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return DefaultAccess()
	}

	resp, err := v.http.Do(req)
	if err != nil {
		return DefaultAccess()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return DefaultAccess()
	}

	var body validateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return DefaultAccess()
	}

	access := DefaultAccess()
	if body.Role == string(domain.RoleAdmin) {
		access.Role = domain.RoleAdmin
	}
	for _, p := range body.Preferences {
		if domain.ValidPreferences[p] {
			access.Preferences = append(access.Preferences, domain.Preference(p))
		}
	}
	return access
}
