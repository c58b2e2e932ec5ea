package sempconfig

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-cleanhttp"
)

// SEMP v2 configuration API path segments.
const (
	SempV2Config    = "SEMP/v2/config"
	MsgVpns         = "msgVpns"
	ClientUsernames = "clientUsernames"
)

const defaultTimeout = 1 * time.Second

// SEMPClient communicates with a Solace broker via the SEMP v2 JSON
// configuration API.
type SEMPClient struct {
	BaseURL    string
	Username   string
	Password   string
	HTTPClient *http.Client
}

// NewSEMPClient creates a client from a BrokerConfig.
func NewSEMPClient(config *BrokerConfig) *SEMPClient {
	transport := cleanhttp.DefaultTransport()
	transport.DisableKeepAlives = true
	if config.TLSSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: transport,
		CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	scheme := "http"
	if config.SecureConnection {
		scheme = "https"
	}

	return &SEMPClient{
		BaseURL:    fmt.Sprintf("%s://%s:%d", scheme, config.Host, config.Port),
		Username:   config.Username,
		Password:   config.Password,
		HTTPClient: httpClient,
	}
}

// GetCollection fetches all records of a collection, e.g. "msgVpns" or
// "msgVpns/default/clientUsernames". The path is relative to /SEMP/v2/config.
func (c *SEMPClient) GetCollection(ctx context.Context, path string) ([]map[string]any, error) {
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	items, ok := body["data"].([]any)
	if !ok {
		return nil, fmt.Errorf("collection %q: response has no data array", path)
	}
	records := make([]map[string]any, 0, len(items))
	for _, item := range items {
		record, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("collection %q: unexpected record type %T", path, item)
		}
		records = append(records, record)
	}
	return records, nil
}

// Post creates an object in a collection.
func (c *SEMPClient) Post(ctx context.Context, path string, data map[string]any) (map[string]any, error) {
	return c.do(ctx, http.MethodPost, path, data)
}

// Patch updates attributes of an existing object.
func (c *SEMPClient) Patch(ctx context.Context, path string, data map[string]any) (map[string]any, error) {
	return c.do(ctx, http.MethodPatch, path, data)
}

// Delete removes an object.
func (c *SEMPClient) Delete(ctx context.Context, path string) (map[string]any, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

func (c *SEMPClient) do(ctx context.Context, method, path string, data map[string]any) (map[string]any, error) {
	reqURL := c.BaseURL + "/" + SempV2Config + "/" + path

	var reqBody io.Reader
	if data != nil {
		encoded, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.Username, c.Password)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, URL: reqURL, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("reading SEMP response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{
			Method:     method,
			URL:        reqURL,
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	if len(respBody) == 0 {
		return nil, nil
	}
	var parsed map[string]any
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("parsing SEMP response: %w", err)
	}
	return parsed, nil
}

// CollectionPath joins path segments into a collection path, escaping each
// segment so keys with reserved characters stay intact.
func CollectionPath(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	joined := escaped[0]
	for _, s := range escaped[1:] {
		joined += "/" + s
	}
	return joined
}
