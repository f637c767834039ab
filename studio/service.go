package studio

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"reelstudio/director"
	"reelstudio/generation"
	"reelstudio/logger"
	"reelstudio/state"
	"reelstudio/store"
	"reelstudio/types"
)

// Service runs generation jobs end to end: single-prompt jobs and
// multi-scene director jobs. Scenes run sequentially, one poll loop at a
// time. There is no retry policy; a failed job is resubmitted by the user.
type Service struct {
	engine   generation.Engine
	splitter director.Splitter
	stitcher director.Stitcher
	store    store.JobStore
	uploader Uploader
	outDir   string
}

// Uploader mirrors storage.Uploader; nil means videos stay local.
type Uploader interface {
	Upload(ctx context.Context, localPath, key string) (string, error)
}

func New(engine generation.Engine, splitter director.Splitter, stitcher director.Stitcher, st store.JobStore, uploader Uploader, outDir string) *Service {
	return &Service{
		engine:   engine,
		splitter: splitter,
		stitcher: stitcher,
		store:    st,
		uploader: uploader,
		outDir:   outDir,
	}
}

// Store exposes the job store for read paths.
func (s *Service) Store() store.JobStore { return s.store }

// NewGenerateJob creates and persists a queued single-prompt job.
func (s *Service) NewGenerateJob(req generation.Request) types.Job {
	job := newJob(types.KindSingle)
	job.Prompt = req.Prompt
	s.saveInitial(job)
	return job
}

// NewDirectorJob creates and persists a queued director job.
func (s *Service) NewDirectorJob(script string) types.Job {
	job := newJob(types.KindDirector)
	job.Script = script
	s.saveInitial(job)
	return job
}

// RunGenerate executes a single-prompt job. Called on its own goroutine by
// the API layer or inline by the Kafka consumer.
func (s *Service) RunGenerate(ctx context.Context, job types.Job, req generation.Request) {
	tracker := state.NewTracker(job, s.store)

	tracker.SetState(types.StateGenerating)
	tracker.Log("Submitting generation request...")

	clip, err := s.engine.Generate(ctx, req)
	if err != nil {
		tracker.Fail(fmt.Errorf("generate video: %w", err))
		return
	}
	tracker.Log("Video generated")

	s.finish(ctx, tracker, clip.Path)
}

// RunDirector executes a multi-scene job: split the script, generate one
// clip per scene in order, then stitch.
func (s *Service) RunDirector(ctx context.Context, job types.Job, base generation.Request) {
	tracker := state.NewTracker(job, s.store)

	tracker.SetState(types.StateSplitting)
	tracker.Log("Splitting script into scenes...")

	prompts, err := s.splitter.Split(ctx, job.Script)
	if err != nil {
		tracker.Fail(fmt.Errorf("split script: %w", err))
		return
	}
	if len(prompts) == 0 {
		tracker.Fail(fmt.Errorf("script produced no scenes"))
		return
	}

	scenes := make([]types.Scene, len(prompts))
	for i, p := range prompts {
		scenes[i] = types.Scene{Index: i, Prompt: p, State: types.ScenePending}
	}
	tracker.SetScenes(scenes)
	tracker.Log(fmt.Sprintf("Planned %d scenes", len(scenes)))

	tracker.SetState(types.StateGenerating)
	clipPaths := make([]string, 0, len(scenes))
	for i, scene := range scenes {
		tracker.SceneGenerating(i)
		tracker.Log(fmt.Sprintf("Generating scene %d/%d...", i+1, len(scenes)))

		clip, err := s.engine.Generate(ctx, base.WithPrompt(scene.Prompt))
		if err != nil {
			tracker.SceneFailed(i, err.Error())
			tracker.Fail(fmt.Errorf("scene %d: %w", i+1, err))
			return
		}
		tracker.SceneDone(i, clip.Path)
		clipPaths = append(clipPaths, clip.Path)
	}

	finalPath := clipPaths[0]
	if len(clipPaths) > 1 {
		tracker.SetState(types.StateStitching)
		tracker.Log("Stitching scenes...")

		finalPath = filepath.Join(s.outDir, fmt.Sprintf("%s.mp4", job.ID))
		if err := s.stitcher.Stitch(ctx, clipPaths, finalPath); err != nil {
			tracker.Fail(fmt.Errorf("stitch scenes: %w", err))
			return
		}
	}

	s.finish(ctx, tracker, finalPath)
}

// finish uploads the final video when an uploader is configured and marks
// the job complete. Upload failures are logged but do not fail the job; the
// local file still exists and is playable.
func (s *Service) finish(ctx context.Context, tracker *state.Tracker, videoPath string) {
	url := "/videos/" + filepath.Base(videoPath)

	if s.uploader != nil {
		tracker.SetState(types.StateUploading)
		tracker.Log("Uploading video...")

		remoteURL, err := s.uploader.Upload(ctx, videoPath, "")
		if err != nil {
			logger.Warn().Err(err).Msg("upload failed, keeping local video")
			tracker.Log(fmt.Sprintf("Upload failed, video kept locally: %v", err))
		} else {
			url = remoteURL
		}
	}

	tracker.SetVideo(videoPath, url)
	tracker.Complete()
}

func newJob(kind types.JobKind) types.Job {
	now := time.Now()
	return types.Job{
		ID:        uuid.New().String(),
		Kind:      kind,
		State:     types.StateQueued,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *Service) saveInitial(job types.Job) {
	if err := s.store.Save(context.Background(), job); err != nil {
		logger.Error().Err(err).Str("job", job.ID).Msg("failed to persist new job")
	}
}
