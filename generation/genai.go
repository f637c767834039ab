package generation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"reelstudio/logger"
)

// NewClient constructs the vendor client for the Gemini API backend.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, errors.New("missing API key: set GEMINI_API_KEY or GOOGLE_API_KEY")
	}
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// videosAPI is the slice of the vendor SDK the engine touches, narrowed so
// the submit/poll/download flow can be exercised without network access.
type videosAPI interface {
	start(ctx context.Context, model, prompt string, image *genai.Image, cfg *genai.GenerateVideosConfig) (*genai.GenerateVideosOperation, error)
	poll(ctx context.Context, op *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error)
	download(ctx context.Context, video *genai.Video) ([]byte, error)
}

type genaiVideos struct {
	client *genai.Client
}

func (g genaiVideos) start(ctx context.Context, model, prompt string, image *genai.Image, cfg *genai.GenerateVideosConfig) (*genai.GenerateVideosOperation, error) {
	return g.client.Models.GenerateVideos(ctx, model, prompt, image, cfg)
}

func (g genaiVideos) poll(ctx context.Context, op *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error) {
	return g.client.Operations.GetVideosOperation(ctx, op, nil)
}

func (g genaiVideos) download(ctx context.Context, video *genai.Video) ([]byte, error) {
	// Smaller results arrive inline on the operation response.
	if len(video.VideoBytes) > 0 {
		return video.VideoBytes, nil
	}
	data, err := g.client.Files.Download(ctx, video, nil)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		data = video.VideoBytes
	}
	return data, nil
}

// VeoEngine implements Engine against the hosted Veo API: it submits the
// job, polls the long-running operation at a fixed interval, and downloads
// the result into the output directory. No retry, no backoff; a failure
// surfaces as a single error and the caller decides whether to resubmit.
type VeoEngine struct {
	api          videosAPI
	model        string
	pollInterval time.Duration
	outDir       string
}

// NewVeoEngine wraps an existing vendor client.
func NewVeoEngine(client *genai.Client, model string, pollInterval time.Duration, outDir string) *VeoEngine {
	return &VeoEngine{
		api:          genaiVideos{client: client},
		model:        model,
		pollInterval: pollInterval,
		outDir:       outDir,
	}
}

// Generate implements Engine.
func (e *VeoEngine) Generate(ctx context.Context, req Request) (*Clip, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	model := req.Model
	if model == "" {
		model = e.model
	}

	var image *genai.Image
	if req.StartImage != nil && len(req.StartImage.Data) > 0 {
		image = &genai.Image{ImageBytes: req.StartImage.Data, MIMEType: req.StartImage.MIMEType}
	}

	op, err := e.api.start(ctx, model, req.Prompt, image, buildVideosConfig(req))
	if err != nil {
		return nil, fmt.Errorf("submit generation: %w", err)
	}
	logger.Info().Str("model", model).Msg("generation operation submitted")

	op, err = e.waitForOperation(ctx, op)
	if err != nil {
		return nil, err
	}

	if len(op.Error) > 0 {
		return nil, fmt.Errorf("generation failed: %v", op.Error)
	}
	if op.Response == nil || len(op.Response.GeneratedVideos) == 0 {
		return nil, errors.New("no video returned; the prompt may have been blocked")
	}
	generated := op.Response.GeneratedVideos[0]
	if generated.Video == nil {
		return nil, errors.New("operation completed without video content")
	}

	data, err := e.api.download(ctx, generated.Video)
	if err != nil {
		return nil, fmt.Errorf("download video: %w", err)
	}
	if len(data) == 0 {
		return nil, errors.New("downloaded video is empty")
	}

	if err := os.MkdirAll(e.outDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(e.outDir, fmt.Sprintf("%s.mp4", uuid.New().String()))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("write video: %w", err)
	}

	mimeType := generated.Video.MIMEType
	if mimeType == "" {
		mimeType = "video/mp4"
	}
	return &Clip{Path: path, URI: generated.Video.URI, MIMEType: mimeType}, nil
}

// waitForOperation polls at a fixed interval until the operation reports done.
func (e *VeoEngine) waitForOperation(ctx context.Context, op *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error) {
	for !op.Done {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(e.pollInterval):
		}

		var err error
		op, err = e.api.poll(ctx, op)
		if err != nil {
			return nil, fmt.Errorf("poll operation: %w", err)
		}
		logger.Debug().Str("operation", op.Name).Bool("done", op.Done).Msg("polled generation operation")
	}
	return op, nil
}

func buildVideosConfig(req Request) *genai.GenerateVideosConfig {
	cfg := &genai.GenerateVideosConfig{
		AspectRatio:      req.AspectRatio,
		NegativePrompt:   req.NegativePrompt,
		Resolution:       req.Resolution,
		PersonGeneration: req.PersonGeneration,
	}
	if req.DurationSeconds > 0 {
		d := req.DurationSeconds
		cfg.DurationSeconds = &d
	}
	if req.GenerateAudio {
		audio := true
		cfg.GenerateAudio = &audio
	}
	if req.LastFrame != nil && len(req.LastFrame.Data) > 0 {
		cfg.LastFrame = &genai.Image{ImageBytes: req.LastFrame.Data, MIMEType: req.LastFrame.MIMEType}
	}
	return cfg
}
