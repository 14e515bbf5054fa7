package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultLookupBaseURL = "https://identitytoolkit.googleapis.com"
	defaultTokenBaseURL  = "https://securetoken.googleapis.com"
	defaultTimeout       = 10 * time.Second
)

// Config holds the provider endpoints and credentials. The base URLs are
// overridable so tests can point at a local server.
type Config struct {
	APIKey        string
	LookupBaseURL string
	TokenBaseURL  string
	Timeout       time.Duration
}

// GoogleClient implements Verifier and Refresher against the Google identity
// REST endpoints (accounts:lookup for verification, securetoken for refresh).
type GoogleClient struct {
	cfg  Config
	http *http.Client
}

// NewGoogleClient creates a client with defaults applied for unset fields.
func NewGoogleClient(cfg Config) *GoogleClient {
	if cfg.LookupBaseURL == "" {
		cfg.LookupBaseURL = defaultLookupBaseURL
	}
	if cfg.TokenBaseURL == "" {
		cfg.TokenBaseURL = defaultTokenBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &GoogleClient{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

type lookupRequest struct {
	IDToken string `json:"idToken"`
}

type lookupResponse struct {
	Users []struct {
		LocalID     string `json:"localId"`
		Email       string `json:"email"`
		DisplayName string `json:"displayName"`
	} `json:"users"`
}

func (c *GoogleClient) Verify(ctx context.Context, idToken string) (*Identity, error) {
	if idToken == "" {
		return nil, ErrInvalidToken
	}

	payload, err := json.Marshal(lookupRequest{IDToken: idToken})
	if err != nil {
		return nil, fmt.Errorf("encoding lookup request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/accounts:lookup?key=%s", c.cfg.LookupBaseURL, url.QueryEscape(c.cfg.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building lookup request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// The provider answers 400 for every bad credential.
		return nil, fmt.Errorf("%w: provider returned status %d", ErrInvalidToken, resp.StatusCode)
	}

	var lookup lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&lookup); err != nil {
		return nil, fmt.Errorf("decoding lookup response: %w", err)
	}
	if len(lookup.Users) == 0 {
		return nil, ErrInvalidToken
	}

	u := lookup.Users[0]
	return &Identity{
		UID:         u.LocalID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
	}, nil
}

type refreshResponse struct {
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *GoogleClient) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if refreshToken == "" {
		return nil, ErrInvalidToken
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)

	endpoint := fmt.Sprintf("%s/v1/token?key=%s", c.cfg.TokenBaseURL, url.QueryEscape(c.cfg.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	var token refreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, fmt.Errorf("decoding token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || token.Error != nil {
		msg := "provider rejected refresh token"
		if token.Error != nil && token.Error.Message != "" {
			msg = token.Error.Message
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, msg)
	}

	return &TokenPair{
		AccessToken:  token.IDToken,
		RefreshToken: token.RefreshToken,
	}, nil
}

// Compile-time interface checks.
var (
	_ Verifier  = (*GoogleClient)(nil)
	_ Refresher = (*GoogleClient)(nil)
)
