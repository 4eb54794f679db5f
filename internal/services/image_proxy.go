package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrImageURLNotAllowed = errors.New("image url not allowed")

// ImageFetchError carries the upstream status code so the transport layer can
// pass it through unchanged.
type ImageFetchError struct {
	StatusCode int
}

func (e *ImageFetchError) Error() string {
	return fmt.Sprintf("image fetch failed with status %d", e.StatusCode)
}

const (
	proxyTimeout  = 5 * time.Second
	maxImageBytes = 5 << 20
)

// ImageProxy fetches avatar images on the client's behalf. Google's avatar
// CDN rate-limits direct browser requests (429), so clients load avatars
// through this hop instead. Only the configured host suffixes are fetchable;
// this is deliberately not an open proxy.
type ImageProxy struct {
	httpClient   *http.Client
	allowedHosts []string
}

func NewImageProxy(hosts string) *ImageProxy {
	var allowed []string
	for _, h := range strings.Split(hosts, ",") {
		if h = strings.TrimSpace(h); h != "" {
			allowed = append(allowed, h)
		}
	}
	return &ImageProxy{
		httpClient:   &http.Client{Timeout: proxyTimeout},
		allowedHosts: allowed,
	}
}

// Fetch retrieves the image and returns its content type and bytes. Upstream
// non-200 responses surface as *ImageFetchError with the upstream status.
func (p *ImageProxy) Fetch(ctx context.Context, rawURL string) (string, []byte, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", nil, ErrImageURLNotAllowed
	}
	if !p.hostAllowed(parsed.Hostname()) {
		return "", nil, ErrImageURLNotAllowed
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", nil, ErrImageURLNotAllowed
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("image fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil, &ImageFetchError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return "", nil, fmt.Errorf("image read failed: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return contentType, body, nil
}

func (p *ImageProxy) hostAllowed(host string) bool {
	for _, allowed := range p.allowedHosts {
		if host == allowed || strings.HasSuffix(host, "."+allowed) {
			return true
		}
	}
	return false
}
