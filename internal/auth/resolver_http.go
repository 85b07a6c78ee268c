package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// HTTPResolver asks a GoTrue-style identity endpoint who owns the token.
// One round trip per call; nothing is cached.
type HTTPResolver struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewHTTPResolver(baseURL, apiKey string) *HTTPResolver {
	return &HTTPResolver{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type userResp struct {
	ID string `json:"id"`
}

func (r *HTTPResolver) Resolve(ctx context.Context, token string) (string, error) {
	url := fmt.Sprintf("%s/user", strings.TrimRight(r.BaseURL, "/"))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", ErrUnauthenticated
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if r.APIKey != "" {
		req.Header.Set("apikey", r.APIKey)
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return "", ErrUnauthenticated
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", ErrUnauthenticated
	}

	var u userResp
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil || u.ID == "" {
		return "", ErrUnauthenticated
	}
	return u.ID, nil
}
