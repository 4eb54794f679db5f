package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// GoogleIdentity is what the tokeninfo endpoint tells us about the person
// behind an ID token.
type GoogleIdentity struct {
	GoogleID string
	Email    string
	Name     string
	Picture  string
}

type googleTokenInfo struct {
	Aud     string `json:"aud"`
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// GoogleVerifier validates externally issued Google ID tokens against the
// tokeninfo introspection endpoint. The call is a blocking round-trip to
// Google; it fails closed on timeout or any non-200 response.
type GoogleVerifier struct {
	httpClient   *http.Client
	tokenInfoURL string
	clientID     string
}

func NewGoogleVerifier(tokenInfoURL, clientID string, timeout time.Duration) *GoogleVerifier {
	return &GoogleVerifier{
		httpClient:   &http.Client{Timeout: timeout},
		tokenInfoURL: tokenInfoURL,
		clientID:     clientID,
	}
}

func (v *GoogleVerifier) Verify(ctx context.Context, idToken string) (*GoogleIdentity, error) {
	if idToken == "" {
		return nil, fmt.Errorf("%w: identity token is required", ErrAuthentication)
	}

	reqURL := v.tokenInfoURL + "?id_token=" + url.QueryEscape(idToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthentication, err)
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: token verification failed: %v", ErrAuthentication, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: invalid Google token (status %d)", ErrAuthentication, resp.StatusCode)
	}

	var info googleTokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: failed to decode token info: %v", ErrAuthentication, err)
	}

	if info.Aud != v.clientID {
		return nil, fmt.Errorf("%w: invalid token audience", ErrAuthentication)
	}
	if info.Sub == "" {
		return nil, fmt.Errorf("%w: token info missing subject", ErrAuthentication)
	}

	return &GoogleIdentity{
		GoogleID: info.Sub,
		Email:    info.Email,
		Name:     info.Name,
		Picture:  info.Picture,
	}, nil
}
