package director

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"reelstudio/logger"
)

// Splitter turns a free-form script into an ordered list of scene prompts.
type Splitter interface {
	Split(ctx context.Context, script string) ([]string, error)
}

const splitInstruction = `You are a film director. Break the following script into at most %d scenes for a text-to-video model. Respond with a JSON array of strings, one cinematic shot prompt per scene, in order. Each prompt must stand alone: include subject, setting, camera movement and mood. No commentary, JSON only.

Script:
%s`

// textAPI is the slice of the vendor SDK the splitter needs.
type textAPI interface {
	generate(ctx context.Context, model, prompt string) (string, error)
}

type genaiText struct {
	client *genai.Client
}

func (g genaiText) generate(ctx context.Context, model, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// ModelSplitter asks the text model to plan scenes, falling back to a
// deterministic paragraph split when the model call or parsing fails.
type ModelSplitter struct {
	api       textAPI
	model     string
	maxScenes int
}

func NewModelSplitter(client *genai.Client, model string, maxScenes int) *ModelSplitter {
	return &ModelSplitter{api: genaiText{client: client}, model: model, maxScenes: maxScenes}
}

// Split implements Splitter.
func (s *ModelSplitter) Split(ctx context.Context, script string) ([]string, error) {
	script = strings.TrimSpace(script)
	if script == "" {
		return nil, fmt.Errorf("script is empty")
	}

	raw, err := s.api.generate(ctx, s.model, fmt.Sprintf(splitInstruction, s.maxScenes, script))
	if err == nil {
		if scenes, perr := parseScenes(raw); perr == nil {
			return capScenes(scenes, s.maxScenes), nil
		} else {
			logger.Warn().Err(perr).Msg("scene plan unparseable, falling back to paragraph split")
		}
	} else {
		logger.Warn().Err(err).Msg("scene planning call failed, falling back to paragraph split")
	}

	return FallbackSplit(script, s.maxScenes), nil
}

// parseScenes accepts either a bare JSON array of strings or an object with
// a "scenes" array, with or without markdown code fences around it.
func parseScenes(raw string) ([]string, error) {
	raw = stripCodeFence(raw)

	var scenes []string
	if err := json.Unmarshal([]byte(raw), &scenes); err != nil {
		var wrapped struct {
			Scenes []string `json:"scenes"`
		}
		if err2 := json.Unmarshal([]byte(raw), &wrapped); err2 != nil {
			return nil, fmt.Errorf("parse scene plan: %w", err)
		}
		scenes = wrapped.Scenes
	}

	out := make([]string, 0, len(scenes))
	for _, sc := range scenes {
		if trimmed := strings.TrimSpace(sc); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("scene plan contained no scenes")
	}
	return out, nil
}

func stripCodeFence(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "```") {
		return raw
	}
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")
	return strings.TrimSpace(raw)
}

// FallbackSplit splits a script on blank lines. Overflow paragraphs beyond
// the cap are folded into the final scene so no script text is dropped.
func FallbackSplit(script string, maxScenes int) []string {
	if maxScenes < 1 {
		maxScenes = 1
	}

	var paragraphs []string
	for _, block := range strings.Split(strings.ReplaceAll(script, "\r\n", "\n"), "\n\n") {
		lines := strings.Split(block, "\n")
		for i, l := range lines {
			lines[i] = strings.TrimSpace(l)
		}
		if p := strings.TrimSpace(strings.Join(lines, " ")); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	if len(paragraphs) == 0 {
		return nil
	}
	if len(paragraphs) <= maxScenes {
		return paragraphs
	}

	capped := make([]string, maxScenes)
	copy(capped, paragraphs[:maxScenes-1])
	capped[maxScenes-1] = strings.Join(paragraphs[maxScenes-1:], " ")
	return capped
}

func capScenes(scenes []string, maxScenes int) []string {
	if maxScenes > 0 && len(scenes) > maxScenes {
		return scenes[:maxScenes]
	}
	return scenes
}
