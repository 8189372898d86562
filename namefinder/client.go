package namefinder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/iw2rmb/spanedit"
	"github.com/iw2rmb/spanedit/internal/logging"
)

// DefaultPath is the raw-text endpoint below the service base URL.
const DefaultPath = "/rest/namefinder/_findRawText"

type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

type Client struct {
	baseURL string
	path    string
	client  HTTPClient
	logger  logrus.FieldLogger
}

type Option func(*Client)

// WithLogger sets the logger used for request tracing. The default discards
// everything.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Client) { c.logger = l }
}

// WithPath overrides DefaultPath.
func WithPath(p string) Option {
	return func(c *Client) { c.path = p }
}

func NewClient(c HTTPClient, baseURL string, opts ...Option) *Client {
	if c == nil {
		c = http.DefaultClient
	}
	cl := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		path:    DefaultPath,
		client:  c,
		logger:  logging.Discard(),
	}
	for _, o := range opts {
		o(cl)
	}
	return cl
}

// FindRawText posts text to the service and decodes the per-sentence tokens
// and names.
func (c *Client) FindRawText(ctx context.Context, text string) (*Result, error) {
	url := c.baseURL + c.path
	log := c.logger.WithField("url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("namefinder: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", spanedit.UserAgent())

	log.WithField("bytes", len(text)).Debug("calling name finder")
	res, err := c.client.Do(req)
	if err != nil {
		log.WithError(err).Error("name finder request failed")
		return nil, fmt.Errorf("namefinder: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		callErr := &CallError{StatusCode: res.StatusCode, Message: readMessage(res.Body)}
		log.WithField("status", res.StatusCode).Error(callErr.Message)
		return nil, callErr
	}

	var resp Response
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("namefinder: decode response: %w", err)
	}
	log.WithFields(logrus.Fields{
		"sentences": len(resp.Document),
	}).Debug("name finder answered")

	return &Result{Text: text, Response: resp}, nil
}

// readMessage extracts {"message": ...} from an error body, falling back to
// the raw body text.
func readMessage(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(body) == 0 {
		return ""
	}
	var callErr struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &callErr); err == nil && callErr.Message != "" {
		return callErr.Message
	}
	return strings.TrimSpace(string(bytes.ToValidUTF8(body, nil)))
}
