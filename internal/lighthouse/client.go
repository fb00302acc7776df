package lighthouse

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vedux98/UX-Audit/internal/audit"
)

// DefaultEndpoint is the remote scoring service the client talks to unless
// configured otherwise.
const DefaultEndpoint = "https://api.uxaudit.dev/v1/lighthouse"

const defaultTimeout = 60 * time.Second

// Client calls the remote lighthouse-style scoring service and maps its
// response into the internal result model.
type Client struct {
	endpoint string
	http     *http.Client
	log      *logrus.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the service base URL (used by tests).
func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = endpoint }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient returns a Client logging to log. A nil logger disables logging.
func NewClient(log *logrus.Logger, opts ...Option) *Client {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.PanicLevel)
	}
	c := &Client{
		endpoint: DefaultEndpoint,
		http:     &http.Client{Timeout: defaultTimeout},
		log:      log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Audit scores a live URL through the remote service. Without an API key
// the remote path is skipped entirely and the static baseline is returned;
// that is configuration, not failure. A transport failure surfaces as a
// *RequestError — the caller decides whether to substitute Fallback.
func (c *Client) Audit(ctx context.Context, target string, settings audit.Settings) (*audit.Result, error) {
	if settings.APIKey == "" {
		c.log.Debug("no API key configured, using baseline result")
		return Fallback(settings), nil
	}

	resp, err := c.fetch(ctx, target, settings)
	if err != nil {
		return nil, err
	}
	return MapResponse(resp, settings), nil
}

func (c *Client) fetch(ctx context.Context, target string, settings audit.Settings) (*Response, error) {
	query := url.Values{}
	query.Set("url", target)
	for _, cat := range requestCategories(settings) {
		query.Add("category", cat)
	}
	query.Set("key", settings.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, &RequestError{Op: "build request", Endpoint: c.endpoint, Err: err}
	}

	start := time.Now()
	httpResp, err := c.http.Do(req)
	if err != nil {
		return nil, &RequestError{Op: "request", Endpoint: c.endpoint, Err: err}
	}
	defer httpResp.Body.Close()

	c.log.WithFields(logrus.Fields{
		"status":   httpResp.StatusCode,
		"duration": time.Since(start).Round(time.Millisecond),
	}).Debug("lighthouse response")

	if httpResp.StatusCode != http.StatusOK {
		return nil, &RequestError{
			Op:       "request",
			Endpoint: c.endpoint,
			Status:   httpResp.StatusCode,
			Err:      fmt.Errorf("unexpected status %s", httpResp.Status),
		}
	}

	var resp Response
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, &RequestError{Op: "decode", Endpoint: c.endpoint, Err: err}
	}
	if resp.Error != "" {
		return nil, &RequestError{Op: "request", Endpoint: c.endpoint, Err: fmt.Errorf("service error: %s", resp.Error)}
	}

	// best-practices rides along in every request for internal scoring
	// calibration; it never surfaces in results.
	if bp, ok := resp.Categories["best-practices"]; ok {
		c.log.WithField("score", bp.Score).Debug("best-practices category")
	}
	return &resp, nil
}

// requestCategories builds the category selectors for the request: the
// enabled categories the service knows about, plus best-practices always.
func requestCategories(settings audit.Settings) []string {
	var cats []string
	if settings.Accessibility {
		cats = append(cats, "accessibility")
	}
	if settings.SEO {
		cats = append(cats, "seo")
	}
	if settings.Performance {
		cats = append(cats, "performance")
	}
	return append(cats, "best-practices")
}
