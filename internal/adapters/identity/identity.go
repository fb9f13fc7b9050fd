package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sportsync/club-service/internal/domain/common/errorz"
	"github.com/sportsync/club-service/internal/domain/entity"
)

// Client confirms caller identities against the auth backend. Confirmation
// is always a live round-trip: a cached or merely well-formed token must
// not authorize a write, because the session may have been revoked since
// it was minted.
type Client struct {
	baseURL string
	apiKey  string
	secret  []byte
	http    *http.Client
}

func NewClient(baseURL, apiKey, jwtSecret string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		secret:  []byte(jwtSecret),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Confirm validates the access token locally (signature, expiry) and then
// confirms the session live with the provider. Any failure maps to
// errorz.ErrUnauthorized; there is no distinction the caller can act on.
func (c *Client) Confirm(ctx context.Context, accessToken string) (*entity.Identity, error) {
	if accessToken == "" {
		return nil, errorz.ErrUnauthorized
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}), jwt.WithExpirationRequired())
	var claims jwt.RegisteredClaims
	if _, err := parser.ParseWithClaims(accessToken, &claims, func(*jwt.Token) (interface{}, error) {
		return c.secret, nil
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", errorz.ErrUnauthorized, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errorz.ErrUnauthorized, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: provider answered %d", errorz.ErrUnauthorized, resp.StatusCode)
	}

	var user userResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("%w: %v", errorz.ErrUnauthorized, err)
	}
	if user.ID == "" {
		return nil, errorz.ErrUnauthorized
	}

	return &entity.Identity{ID: user.ID, Email: user.Email}, nil
}
