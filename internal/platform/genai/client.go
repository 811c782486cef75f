package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the text-generation API that writes dress descriptions.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		endpoint:   endpoint,
		apiKey:     apiKey,
	}
}

type generateRequest struct {
	Prompt      promptPart `json:"prompt"`
	Temperature float64    `json:"temperature"`
}

type promptPart struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// GenerateDescription asks the API to describe the given dress type and
// returns the generated text.
func (c *Client) GenerateDescription(ctx context.Context, dressType string) (string, error) {
	payload := generateRequest{
		Prompt:      promptPart{Text: fmt.Sprintf("Describe a stylish %s.", dressType)},
		Temperature: 0.7,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"?key="+c.apiKey, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("generate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generate request returned status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode generate response: %w", err)
	}
	if out.Text == "" {
		return "", fmt.Errorf("generate response contained no text")
	}
	return out.Text, nil
}
