// Package purgomalum is a client for the PurgoMalum profanity filter web
// service (https://www.purgomalum.com).
//
// Every call performs a single GET request and keeps no state between calls,
// so a Client can be shared between goroutines.
package purgomalum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	DefaultBaseURL = "https://www.purgomalum.com"
	DefaultTimeout = 10 * time.Second
)

type Client struct {
	endpoint string
	client   *http.Client
}

// RawResponse is the payload returned by the service for a filter request.
// Body always holds the decoded response body. Payload is set for FormatJSON
// only and carries either a "result" or an "error" key.
type RawResponse struct {
	Format  Format
	Body    string
	Payload map[string]any
}

// New returns a client for the service at baseURL. An empty baseURL selects
// DefaultBaseURL and a non-positive timeout selects DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		endpoint: serviceURL(baseURL),
		client:   &http.Client{Timeout: timeout},
	}
}

// BuildURL returns the request URL for the client's endpoint.
func (c *Client) BuildURL(text string, format Format, opts Options) (string, error) {
	return buildURL(c.endpoint, text, format, opts)
}

// ContainsProfanity reports whether text contains profanity. Words listed in
// add are treated as profanity as well.
func (c *Client) ContainsProfanity(ctx context.Context, text, add string) (bool, error) {
	u, err := c.BuildURL(text, FormatContainsProfanity, Options{Add: add})
	if err != nil {
		return false, err
	}

	body, err := c.get(ctx, u)
	if err != nil {
		return false, err
	}

	result := strings.TrimSpace(body)
	switch {
	case strings.EqualFold(result, "true"):
		return true, nil
	case strings.EqualFold(result, "false"):
		return false, nil
	}

	return false, &ResultError{Content: result}
}

// RetrieveFilteredTextRaw returns the service response for text in the given
// format, which must be one of FormatJSON, FormatPlain or FormatXML.
// JSON bodies are decoded into RawResponse.Payload; plain and XML bodies are
// returned verbatim.
func (c *Client) RetrieveFilteredTextRaw(ctx context.Context, text string, format Format, opts Options) (*RawResponse, error) {
	u, err := c.BuildURL(text, format, opts)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(filterFormats, format) {
		return nil, fmt.Errorf("%w: format %q must be one of %v", ErrInvalidArgument, format, filterFormats)
	}

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	raw := RawResponse{Format: format, Body: body}
	if format == FormatJSON {
		if err := json.Unmarshal([]byte(body), &raw.Payload); err != nil {
			return nil, fmt.Errorf("error decoding PurgoMalum response: %w", err)
		}
	}

	return &raw, nil
}

// RetrieveFilteredText returns text with profanity replaced. It requests the
// JSON format and unwraps the result, turning a service error into a
// *ResultError.
func (c *Client) RetrieveFilteredText(ctx context.Context, text string, opts Options) (string, error) {
	raw, err := c.RetrieveFilteredTextRaw(ctx, text, FormatJSON, opts)
	if err != nil {
		return "", err
	}

	if msg, ok := raw.Payload["error"]; ok {
		return "", &ResultError{Content: fmt.Sprint(msg)}
	}

	result, ok := raw.Payload["result"].(string)
	if !ok {
		return "", &ResultError{Content: raw.Body}
	}

	return result, nil
}

func (c *Client) get(ctx context.Context, u string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("error creating request to PurgoMalum: %w", err)
	}

	log.Debugf("[purgomalum] GET %s", u)
	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error calling PurgoMalum: %w", err)
	}
	defer resp.Body.Close()

	// Status is not checked: the body decides whether the call succeeded.
	if resp.StatusCode != http.StatusOK {
		log.Warnf("[purgomalum] GET %s returned status %d", u, resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading PurgoMalum response: %w", err)
	}

	return string(b), nil
}
