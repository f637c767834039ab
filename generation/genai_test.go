package generation

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"google.golang.org/genai"
)

type fakeVideosAPI struct {
	pollsUntilDone int
	pollCount      int
	startErr       error
	pollErr        error
	downloadErr    error
	result         *genai.GenerateVideosOperation
	videoData      []byte
}

func (f *fakeVideosAPI) start(ctx context.Context, model, prompt string, image *genai.Image, cfg *genai.GenerateVideosConfig) (*genai.GenerateVideosOperation, error) {
	if f.startErr != nil {
		return nil, f.startErr
	}
	if f.pollsUntilDone == 0 {
		return f.doneOp(), nil
	}
	return &genai.GenerateVideosOperation{Name: "operations/test", Done: false}, nil
}

func (f *fakeVideosAPI) poll(ctx context.Context, op *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error) {
	if f.pollErr != nil {
		return nil, f.pollErr
	}
	f.pollCount++
	if f.pollCount >= f.pollsUntilDone {
		return f.doneOp(), nil
	}
	return &genai.GenerateVideosOperation{Name: "operations/test", Done: false}, nil
}

func (f *fakeVideosAPI) download(ctx context.Context, video *genai.Video) ([]byte, error) {
	if f.downloadErr != nil {
		return nil, f.downloadErr
	}
	return f.videoData, nil
}

func (f *fakeVideosAPI) doneOp() *genai.GenerateVideosOperation {
	if f.result != nil {
		return f.result
	}
	return &genai.GenerateVideosOperation{
		Name: "operations/test",
		Done: true,
		Response: &genai.GenerateVideosResponse{
			GeneratedVideos: []*genai.GeneratedVideo{
				{Video: &genai.Video{MIMEType: "video/mp4"}},
			},
		},
	}
}

func newTestEngine(t *testing.T, api videosAPI) *VeoEngine {
	t.Helper()
	return &VeoEngine{
		api:          api,
		model:        "veo-test",
		pollInterval: time.Millisecond,
		outDir:       t.TempDir(),
	}
}

func TestGenerateImmediateCompletion(t *testing.T) {
	api := &fakeVideosAPI{videoData: []byte("mp4 bytes")}
	engine := newTestEngine(t, api)

	clip, err := engine.Generate(context.Background(), Request{Prompt: "a quiet lake at dawn"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clip.MIMEType != "video/mp4" {
		t.Errorf("expected video/mp4, got %q", clip.MIMEType)
	}
	data, err := os.ReadFile(clip.Path)
	if err != nil {
		t.Fatalf("reading clip: %v", err)
	}
	if string(data) != "mp4 bytes" {
		t.Errorf("clip content mismatch: %q", data)
	}
}

func TestGeneratePollsUntilDone(t *testing.T) {
	api := &fakeVideosAPI{pollsUntilDone: 3, videoData: []byte("x")}
	engine := newTestEngine(t, api)

	if _, err := engine.Generate(context.Background(), Request{Prompt: "p"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.pollCount != 3 {
		t.Errorf("expected 3 polls, got %d", api.pollCount)
	}
}

func TestGenerateOperationError(t *testing.T) {
	api := &fakeVideosAPI{
		result: &genai.GenerateVideosOperation{
			Name:  "operations/test",
			Done:  true,
			Error: map[string]any{"code": 400, "message": "unsafe prompt"},
		},
	}
	engine := newTestEngine(t, api)

	_, err := engine.Generate(context.Background(), Request{Prompt: "p"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "generation failed") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestGenerateEmptyResponse(t *testing.T) {
	api := &fakeVideosAPI{
		result: &genai.GenerateVideosOperation{
			Name:     "operations/test",
			Done:     true,
			Response: &genai.GenerateVideosResponse{},
		},
	}
	engine := newTestEngine(t, api)

	_, err := engine.Generate(context.Background(), Request{Prompt: "p"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "no video returned") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestGenerateContextCanceled(t *testing.T) {
	api := &fakeVideosAPI{pollsUntilDone: 1000, videoData: []byte("x")}
	engine := newTestEngine(t, api)
	engine.pollInterval = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Generate(ctx, Request{Prompt: "p"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestGenerateSubmitError(t *testing.T) {
	api := &fakeVideosAPI{startErr: errors.New("quota exceeded")}
	engine := newTestEngine(t, api)

	_, err := engine.Generate(context.Background(), Request{Prompt: "p"})
	if err == nil || !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("expected submit error, got %v", err)
	}
}

func TestGenerateInvalidRequestRejectedBeforeSubmit(t *testing.T) {
	api := &fakeVideosAPI{startErr: errors.New("should not be called")}
	engine := newTestEngine(t, api)

	_, err := engine.Generate(context.Background(), Request{})
	if err == nil || !strings.Contains(err.Error(), "prompt is required") {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestBuildVideosConfig(t *testing.T) {
	req := Request{
		Prompt:          "p",
		AspectRatio:     "16:9",
		NegativePrompt:  "blurry",
		DurationSeconds: 6,
		GenerateAudio:   true,
		StartImage:      &ImageInput{Data: []byte{1}, MIMEType: "image/png"},
		LastFrame:       &ImageInput{Data: []byte{2}, MIMEType: "image/jpeg"},
	}

	cfg := buildVideosConfig(req)

	if cfg.AspectRatio != "16:9" {
		t.Errorf("aspect ratio: got %q", cfg.AspectRatio)
	}
	if cfg.NegativePrompt != "blurry" {
		t.Errorf("negative prompt: got %q", cfg.NegativePrompt)
	}
	if cfg.DurationSeconds == nil || *cfg.DurationSeconds != 6 {
		t.Errorf("duration: got %v", cfg.DurationSeconds)
	}
	if cfg.GenerateAudio == nil || !*cfg.GenerateAudio {
		t.Errorf("generate audio: got %v", cfg.GenerateAudio)
	}
	if cfg.LastFrame == nil || cfg.LastFrame.MIMEType != "image/jpeg" {
		t.Errorf("last frame: got %v", cfg.LastFrame)
	}

	// Zero duration and audio off leave the pointers nil
	cfg = buildVideosConfig(Request{Prompt: "p"})
	if cfg.DurationSeconds != nil || cfg.GenerateAudio != nil || cfg.LastFrame != nil {
		t.Error("expected nil optional fields for minimal request")
	}
}
