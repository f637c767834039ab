package tui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"reelstudio/types"
)

func TestSubmitPrompt(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(map[string]string{"job_id": "abc"})
	}))
	defer srv.Close()

	c := NewStudioClient(srv.URL)
	id, err := c.SubmitPrompt("a cat", "16:9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "abc" {
		t.Errorf("job id: got %q", id)
	}
	if gotPath != "/api/generate" {
		t.Errorf("path: got %q", gotPath)
	}
	if gotBody["prompt"] != "a cat" || gotBody["aspect_ratio"] != "16:9" {
		t.Errorf("body: %v", gotBody)
	}
}

func TestSubmitScriptUsesDirectorEndpoint(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(map[string]string{"job_id": "abc"})
	}))
	defer srv.Close()

	c := NewStudioClient(srv.URL)
	if _, err := c.SubmitScript("a script", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/director" {
		t.Errorf("path: got %q", gotPath)
	}
}

func TestSubmitSurfacesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "prompt is required"})
	}))
	defer srv.Close()

	c := NewStudioClient(srv.URL)
	_, err := c.SubmitPrompt("", "")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestGetJob(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/jobs/abc" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(types.Job{ID: "abc", State: types.StateGenerating})
	}))
	defer srv.Close()

	c := NewStudioClient(srv.URL)
	job, err := c.GetJob("abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.State != types.StateGenerating {
		t.Errorf("state: got %s", job.State)
	}

	if _, err := c.GetJob("missing"); err == nil {
		t.Error("expected error for unknown job")
	}
}
