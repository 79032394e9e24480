// Package cwa talks to the Taiwan Central Weather Administration open-data
// API and returns raw forecast payloads for normalization.
package cwa

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Dataset identifies one upstream forecast product
type Dataset struct {
	ID        string            // CWA dataset id, also the cache partition key
	Name      string            // display name
	Extra     map[string]string // dataset-specific query parameters
	HasSample bool              // bundled sample file available as last resort
}

var (
	// DatasetGeneral is the 36-hour general forecast for all counties
	DatasetGeneral = Dataset{ID: "F-C0032-001", Name: "36小時天氣預報", HasSample: true}

	// DatasetAgriculture is the weekly agricultural weather forecast
	DatasetAgriculture = Dataset{ID: "F-A0010-001", Name: "週間農業氣象預報", Extra: map[string]string{"downloadType": "WEB"}}

	// DatasetTide is the tide forecast for coastal locations
	DatasetTide = Dataset{ID: "F-A0021-001", Name: "潮汐預報"}
)

// APIError is an application-level failure reported inside a structurally
// valid response body.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client fetches forecast payloads from the CWA open-data datastore
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a CWA open-data client. When strictSSL is false the
// client skips certificate verification; CWA's certificate chain is not
// resolvable in some networks and the upstream data is public anyway.
func NewClient(apiKey string, strictSSL bool) *Client {
	transport := http.DefaultTransport
	if !strictSSL {
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
	return &Client{
		baseURL: "https://opendata.cwa.gov.tw/api/v1/rest/datastore",
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout:   15 * time.Second,
			Transport: transport,
		},
	}
}

// envelope mirrors the outer keys of a datastore response. The file API
// (cwaopendata) has no success flag, so its envelope key counts as success.
type envelope struct {
	Success     any             `json:"success"`
	Message     string          `json:"message"`
	Records     json.RawMessage `json:"records"`
	CwaOpenData json.RawMessage `json:"cwaopendata"`
}

// FetchForecast retrieves the raw payload for a dataset. It fails for
// transport/HTTP errors and for well-formed responses that report an
// application-level failure or lack a recognizable envelope.
func (c *Client) FetchForecast(ctx context.Context, dataset Dataset) ([]byte, error) {
	params := url.Values{}
	params.Set("Authorization", c.apiKey)
	params.Set("format", "JSON")
	for key, value := range dataset.Extra {
		params.Set(key, value)
	}

	requestURL := fmt.Sprintf("%s/%s?%s", c.baseURL, dataset.ID, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", dataset.ID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d for %s", resp.StatusCode, dataset.ID)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if !envelopeOK(env) {
		message := env.Message
		if message == "" {
			message = "中央氣象署 API 回應失敗"
		}
		return nil, &APIError{Message: message}
	}

	return body, nil
}

// envelopeOK reports whether a decoded body represents a successful
// response: an explicit success flag that isn't false, or a file-API
// envelope when the flag is absent.
func envelopeOK(env envelope) bool {
	switch v := env.Success.(type) {
	case bool:
		return v
	case string:
		return v != "" && v != "false"
	case nil:
		return len(env.CwaOpenData) > 0
	default:
		return false
	}
}
