package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"travel-backoffice-backend/internal/config"
)

// AuthProviderInterface is the hosted-auth admin API contract used when
// provisioning employees.
type AuthProviderInterface interface {
	CreateUser(email, name, role string) (string, error)
}

// AuthProviderService talks to the hosted auth provider's admin API. The
// provider owns credentials and sessions; this service only mirrors
// employee records into it.
type AuthProviderService struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

// NewAuthProviderService creates a new auth provider client
func NewAuthProviderService(cfg *config.Config) *AuthProviderService {
	return &AuthProviderService{
		baseURL:    strings.TrimRight(cfg.AuthProviderURL, "/"),
		serviceKey: cfg.AuthProviderServiceKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type createUserRequest struct {
	Email        string            `json:"email"`
	EmailConfirm bool              `json:"email_confirm"`
	UserMetadata map[string]string `json:"user_metadata"`
}

type createUserResponse struct {
	ID  string `json:"id"`
	Msg string `json:"msg"`
}

// CreateUser creates a user in the hosted auth provider and returns its
// id. A confirmation email is suppressed; the portal sends its own
// welcome mail.
func (s *AuthProviderService) CreateUser(email, name, role string) (string, error) {
	if s.baseURL == "" || s.serviceKey == "" {
		return "", fmt.Errorf("auth provider is not configured (AUTH_PROVIDER_URL, AUTH_PROVIDER_SERVICE_KEY)")
	}

	body, err := json.Marshal(createUserRequest{
		Email:        email,
		EmailConfirm: true,
		UserMetadata: map[string]string{"name": name, "role": role},
	})
	if err != nil {
		return "", fmt.Errorf("marshal create-user request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL+"/auth/v1/admin/users", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build create-user request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("auth provider request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read auth provider response: %w", err)
	}

	var parsed createUserResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("parse auth provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := parsed.Msg
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("auth provider rejected user creation: %s", msg)
	}

	return parsed.ID, nil
}
