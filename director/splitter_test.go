package director

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type fakeTextAPI struct {
	response string
	err      error
	prompt   string
}

func (f *fakeTextAPI) generate(ctx context.Context, model, prompt string) (string, error) {
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestParseScenes(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []string
		wantErr bool
	}{
		{
			name: "bare array",
			raw:  `["wide shot of a harbor", "close up of rigging"]`,
			want: []string{"wide shot of a harbor", "close up of rigging"},
		},
		{
			name: "wrapped object",
			raw:  `{"scenes": ["a", "b", "c"]}`,
			want: []string{"a", "b", "c"},
		},
		{
			name: "fenced json",
			raw:  "```json\n[\"one\", \"two\"]\n```",
			want: []string{"one", "two"},
		},
		{
			name: "fence without language tag",
			raw:  "```\n[\"one\"]\n```",
			want: []string{"one"},
		},
		{
			name: "whitespace entries dropped",
			raw:  `["  keep  ", "", "   "]`,
			want: []string{"keep"},
		},
		{
			name:    "empty array",
			raw:     `[]`,
			wantErr: true,
		},
		{
			name:    "prose instead of json",
			raw:     "Sure! Here are your scenes:",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseScenes(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFallbackSplit(t *testing.T) {
	tests := []struct {
		name      string
		script    string
		maxScenes int
		want      []string
	}{
		{
			name:      "single paragraph",
			script:    "A lone boat drifts.",
			maxScenes: 8,
			want:      []string{"A lone boat drifts."},
		},
		{
			name:      "paragraphs on blank lines",
			script:    "First scene.\n\nSecond scene.\n\nThird scene.",
			maxScenes: 8,
			want:      []string{"First scene.", "Second scene.", "Third scene."},
		},
		{
			name:      "windows line endings",
			script:    "One.\r\n\r\nTwo.",
			maxScenes: 8,
			want:      []string{"One.", "Two."},
		},
		{
			name:      "wrapped lines joined within a paragraph",
			script:    "A sentence\nthat wraps.\n\nNext.",
			maxScenes: 8,
			want:      []string{"A sentence that wraps.", "Next."},
		},
		{
			name:      "overflow folded into last scene",
			script:    "a\n\nb\n\nc\n\nd",
			maxScenes: 2,
			want:      []string{"a", "b c d"},
		},
		{
			name:      "blank script",
			script:    "   \n\n  ",
			maxScenes: 8,
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FallbackSplit(tt.script, tt.maxScenes)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModelSplitterUsesModelPlan(t *testing.T) {
	api := &fakeTextAPI{response: `["shot one", "shot two"]`}
	s := &ModelSplitter{api: api, model: "test-model", maxScenes: 8}

	got, err := s.Split(context.Background(), "Some script.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"shot one", "shot two"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if api.prompt == "" {
		t.Error("expected the model to be called")
	}
}

func TestModelSplitterCapsModelPlan(t *testing.T) {
	api := &fakeTextAPI{response: `["a", "b", "c", "d"]`}
	s := &ModelSplitter{api: api, model: "test-model", maxScenes: 2}

	got, err := s.Split(context.Background(), "Some script.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 scenes, got %d", len(got))
	}
}

func TestModelSplitterFallsBackOnAPIError(t *testing.T) {
	api := &fakeTextAPI{err: errors.New("rate limited")}
	s := &ModelSplitter{api: api, model: "test-model", maxScenes: 8}

	got, err := s.Split(context.Background(), "First.\n\nSecond.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"First.", "Second."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestModelSplitterFallsBackOnGarbageResponse(t *testing.T) {
	api := &fakeTextAPI{response: "not json at all"}
	s := &ModelSplitter{api: api, model: "test-model", maxScenes: 8}

	got, err := s.Split(context.Background(), "Only paragraph.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != "Only paragraph." {
		t.Errorf("got %v", got)
	}
}

func TestModelSplitterRejectsEmptyScript(t *testing.T) {
	s := &ModelSplitter{api: &fakeTextAPI{}, model: "test-model", maxScenes: 8}
	if _, err := s.Split(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty script")
	}
}
