package generation

import (
	"errors"
	"fmt"

	"reelstudio/config"
)

// ImageInput is a conditioning image supplied with a request. Data is
// base64-encoded on the wire (encoding/json handles []byte transparently).
type ImageInput struct {
	Data     []byte `json:"data"`
	MIMEType string `json:"mime_type"`
}

// Request describes one video generation call to the vendor API.
type Request struct {
	Prompt           string      `json:"prompt"`
	Model            string      `json:"model,omitempty"`
	NegativePrompt   string      `json:"negative_prompt,omitempty"`
	AspectRatio      string      `json:"aspect_ratio,omitempty"`
	Resolution       string      `json:"resolution,omitempty"`
	DurationSeconds  int32       `json:"duration_seconds,omitempty"`
	PersonGeneration string      `json:"person_generation,omitempty"`
	GenerateAudio    bool        `json:"generate_audio,omitempty"`
	StartImage       *ImageInput `json:"start_image,omitempty"`
	LastFrame        *ImageInput `json:"last_frame,omitempty"`
}

var validAspectRatios = map[string]bool{
	"":     true,
	"16:9": true,
	"9:16": true,
}

// Empty means the engine's configured default model.
var validModels = map[string]bool{
	"":                          true,
	"veo-2.0-generate-001":      true,
	"veo-3.0-generate-001":      true,
	"veo-3.0-generate-preview":  true,
	"veo-3.0-fast-generate-001": true,
}

var validPersonGeneration = map[string]bool{
	"":            true,
	"allow_adult": true,
	"allow_all":   true,
	"dont_allow":  true,
}

// Validate checks the request before it is sent to the vendor API. The API
// would reject these too, but catching them here gives the user a clear
// message instead of a vendor error string.
func (r *Request) Validate() error {
	if r.Prompt == "" {
		return errors.New("prompt is required")
	}
	return r.ValidateSettings()
}

// ValidateSettings checks everything except the prompt. Director submissions
// carry these settings with a script instead of a prompt of their own.
func (r *Request) ValidateSettings() error {
	if !validModels[r.Model] {
		return fmt.Errorf("unsupported model: %q", r.Model)
	}
	if !validAspectRatios[r.AspectRatio] {
		return fmt.Errorf("unsupported aspect ratio: %q", r.AspectRatio)
	}
	if !validPersonGeneration[r.PersonGeneration] {
		return fmt.Errorf("unsupported person generation policy: %q", r.PersonGeneration)
	}
	if r.DurationSeconds < 0 || r.DurationSeconds > config.MaxDurationSeconds {
		return fmt.Errorf("duration must be between 1 and %d seconds", config.MaxDurationSeconds)
	}
	if r.StartImage != nil && len(r.StartImage.Data) > 0 && r.StartImage.MIMEType == "" {
		return errors.New("start image requires a mime type")
	}
	if r.LastFrame != nil && len(r.LastFrame.Data) > 0 && r.LastFrame.MIMEType == "" {
		return errors.New("last frame image requires a mime type")
	}
	if r.LastFrame != nil && r.StartImage == nil {
		return errors.New("a last frame requires a start image")
	}
	return nil
}

// WithPrompt returns a copy of the request carrying a different prompt.
// Director jobs reuse one base request across scenes; conditioning images
// apply only to the scene they were supplied for, so they are dropped here.
func (r Request) WithPrompt(prompt string) Request {
	r.Prompt = prompt
	r.StartImage = nil
	r.LastFrame = nil
	return r
}
