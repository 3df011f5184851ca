/*
Package assistant wraps the remote text-generation service used for friend
replies, the NPC chat widget, and game idea generation.

The store treats this collaborator as best effort: any failure (missing API
key, throttling, transport error, malformed response) degrades to a fixed
fallback value and is never surfaced to the user as an error. Calls carry no
timeout of their own; the caller decides whether to wait.
*/
package assistant

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"bloxclone/internal/pkg/logx"
)

// Client calls the generateContent endpoint of a Gemini-style API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string

	// limiter throttles outbound calls; a throttled call falls back
	// immediately instead of queueing.
	limiter *rate.Limiter

	logger zerolog.Logger
}

// Options configures a Client.
type Options struct {
	// APIKey authenticates against the service. Empty disables remote calls
	// entirely; every request then answers with its fallback.
	APIKey string

	// Model is the model name in the request path.
	Model string

	// BaseURL is the service root, overridable for tests.
	BaseURL string

	// Rate and Burst bound outbound calls per second.
	Rate  float64
	Burst int

	// HTTPClient is the transport, overridable for tests. The default client
	// carries no timeout: a hung call parks its goroutine and the pending
	// flag stays set, which the caller tolerates.
	HTTPClient *http.Client
}

// New constructs a Client.
func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	if opts.Burst <= 0 {
		opts.Burst = 1
	}

	return &Client{
		httpClient: httpClient,
		apiKey:     opts.APIKey,
		model:      opts.Model,
		baseURL:    opts.BaseURL,
		limiter:    rate.NewLimiter(rate.Limit(opts.Rate), opts.Burst),
		logger:     logx.Logger().With().Str("component", "assistant").Logger(),
	}
}

// Enabled reports whether remote calls are configured at all.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// generateContent request/response wire shapes (the subset this client uses).
type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// generate performs one generateContent call and returns the first candidate
// text. Every failure path returns an error; callers translate errors into
// their fallback values.
func (c *Client) generate(prompt string, wantJSON bool) (string, error) {
	if !c.Enabled() {
		return "", fmt.Errorf("assistant disabled: no API key configured")
	}

	if !c.limiter.Allow() {
		return "", fmt.Errorf("assistant call throttled")
	}

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	if wantJSON {
		reqBody.GenerationConfig = &generationConfig{ResponseMimeType: "application/json"}
	}

	raw, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode generate request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	httpReq, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("failed to build generate request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("generate call failed: %w", err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read generate response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generate call returned status %d", httpResp.StatusCode)
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode generate response: %w", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generate response contained no candidates")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
