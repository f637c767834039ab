package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"reelstudio/types"
)

// StudioClient is a thin HTTP client for the reelstudio API
type StudioClient struct {
	baseURL string
	client  *http.Client
}

// NewStudioClient creates a new studio client
func NewStudioClient(baseURL string) *StudioClient {
	return &StudioClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type submitResponse struct {
	JobID string `json:"job_id"`
	Error string `json:"error"`
}

// SubmitPrompt starts a single-prompt job and returns the job id
func (c *StudioClient) SubmitPrompt(prompt, aspectRatio string) (string, error) {
	return c.submit("/api/generate", map[string]string{
		"prompt":       prompt,
		"aspect_ratio": aspectRatio,
	})
}

// SubmitScript starts a director job and returns the job id
func (c *StudioClient) SubmitScript(script, aspectRatio string) (string, error) {
	return c.submit("/api/director", map[string]string{
		"script":       script,
		"aspect_ratio": aspectRatio,
	})
}

func (c *StudioClient) submit(path string, body map[string]string) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	resp, err := c.client.Post(c.baseURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to submit job: %w", err)
	}
	defer resp.Body.Close()

	var decoded submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if resp.StatusCode != http.StatusAccepted {
		return "", fmt.Errorf("server returned %d: %s", resp.StatusCode, decoded.Error)
	}
	return decoded.JobID, nil
}

// GetJob fetches the current job snapshot
func (c *StudioClient) GetJob(id string) (*types.Job, error) {
	resp, err := c.client.Get(c.baseURL + "/api/jobs/" + id)
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}

	var job types.Job
	if err := json.NewDecoder(resp.Body).Decode(&job); err != nil {
		return nil, fmt.Errorf("failed to decode job: %w", err)
	}
	return &job, nil
}
