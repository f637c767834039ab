package prompt

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"strings"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
)

// Enhancer rewrites a rough user prompt into one suited to the video model.
type Enhancer interface {
	Enhance(ctx context.Context, rough string) (string, error)
}

const enhancePreamble = "You rewrite rough ideas into a single vivid prompt for a text-to-video model. " +
	"Describe subject, setting, lighting, camera movement and mood in one paragraph. " +
	"Reply with the rewritten prompt only, no preamble and no quotes."

// CohereEnhancer implements Enhancer with the Cohere Chat API.
type CohereEnhancer struct {
	client *cohereclient.Client
	model  string
}

func NewCohereEnhancer(apiKey, model string) *CohereEnhancer {
	if model == "" {
		model = "command-r-08-2024"
	}
	// Force HTTP/1.1 to avoid HTTP/2 protocol errors against the Cohere edge.
	httpClient := &http.Client{
		Timeout: 60 * time.Second,
		Transport: &http.Transport{
			TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
			ForceAttemptHTTP2: false,
		},
	}
	client := cohereclient.NewClient(
		cohereclient.WithToken(apiKey),
		cohereclient.WithHTTPClient(httpClient),
	)
	return &CohereEnhancer{client: client, model: model}
}

// Enhance implements Enhancer.
func (c *CohereEnhancer) Enhance(ctx context.Context, rough string) (string, error) {
	rough = strings.TrimSpace(rough)
	if rough == "" {
		return "", fmt.Errorf("prompt is empty")
	}

	resp, err := c.client.Chat(ctx, &cohere.ChatRequest{
		Message:  rough,
		Model:    strPtr(c.model),
		Preamble: strPtr(enhancePreamble),
	})
	if err != nil {
		return "", fmt.Errorf("cohere chat error: %w", err)
	}
	if resp == nil || strings.TrimSpace(resp.Text) == "" {
		return "", fmt.Errorf("cohere chat returned empty response")
	}
	return strings.TrimSpace(resp.Text), nil
}

// NopEnhancer passes prompts through unchanged; used when no Cohere key is
// configured.
type NopEnhancer struct{}

func (NopEnhancer) Enhance(ctx context.Context, rough string) (string, error) {
	return strings.TrimSpace(rough), nil
}

func strPtr(s string) *string { return &s }
