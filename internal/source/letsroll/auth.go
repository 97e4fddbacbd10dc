package letsroll

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"city_pulse/internal/domain"
)

// authenticator holds the bearer token for the skate network API and
// refreshes it after a 401. Safe for concurrent use.
type authenticator struct {
	baseURL  string
	email    string
	password string
	client   *http.Client

	mu    sync.Mutex
	token string
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Tokens struct {
		Access string `json:"access"`
	} `json:"tokens"`
}

func (a *authenticator) Token(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.token != "" {
		return a.token, nil
	}
	return a.refreshLocked(ctx)
}

// Invalidate drops a token the API rejected so the next call logs in again.
func (a *authenticator) Invalidate(stale string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.token == stale {
		a.token = ""
	}
}

func (a *authenticator) refreshLocked(ctx context.Context) (string, error) {
	body, err := json.Marshal(loginRequest{Email: a.email, Password: a.password})
	if err != nil {
		return "", &domain.AuthError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/auth/signin/email", bytes.NewReader(body))
	if err != nil {
		return "", &domain.AuthError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", &domain.AuthError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &domain.AuthError{Err: fmt.Errorf("login returned status %d", resp.StatusCode)}
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return "", &domain.AuthError{Err: fmt.Errorf("decode login response: %w", err)}
	}
	if lr.Tokens.Access == "" {
		return "", &domain.AuthError{Err: fmt.Errorf("login response contained no access token")}
	}

	a.token = lr.Tokens.Access
	return a.token, nil
}
