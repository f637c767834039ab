package publish

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"reelstudio/config"
	"reelstudio/logger"
)

// Metadata describes the listing of a published video.
type Metadata struct {
	Title       string
	Description string
	Tags        []string
}

// Publisher uploads finished videos to YouTube via a service account.
type Publisher struct {
	service *youtube.Service
}

func NewPublisher(ctx context.Context, serviceAccountFile string) (*Publisher, error) {
	data, err := os.ReadFile(serviceAccountFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read service account file: %w", err)
	}

	jwtConfig, err := google.JWTConfigFromJSON(data, youtube.YoutubeUploadScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account: %w", err)
	}

	service, err := youtube.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("unable to create YouTube service: %w", err)
	}

	return &Publisher{service: service}, nil
}

// Publish uploads the video file and returns the YouTube video id.
func (p *Publisher) Publish(videoPath string, meta Metadata) (string, error) {
	file, err := os.Open(videoPath)
	if err != nil {
		return "", fmt.Errorf("failed to open video file: %w", err)
	}
	defer file.Close()

	video := &youtube.Video{
		Snippet: &youtube.VideoSnippet{
			Title:       meta.Title,
			Description: meta.Description,
			Tags:        meta.Tags,
			CategoryId:  config.YouTubeCategoryID,
		},
		Status: &youtube.VideoStatus{
			PrivacyStatus:           config.YouTubePrivacyStatus,
			SelfDeclaredMadeForKids: false,
		},
	}

	call := p.service.Videos.Insert([]string{"snippet", "status"}, video).Media(file)
	response, err := call.Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload video: %w", err)
	}

	logger.Info().Str("video_id", response.Id).Msg("published to YouTube")
	return response.Id, nil
}

// BuildMetadata derives a listing from the prompt that produced the video.
func BuildMetadata(prompt string) Metadata {
	title := prompt
	if words := strings.Fields(prompt); len(words) > 10 {
		title = strings.Join(words[:10], " ") + "..."
	}
	// Truncate on runes so a multibyte character at the boundary stays intact.
	if runes := []rune(title); len(runes) > 100 {
		title = string(runes[:97]) + "..."
	}
	return Metadata{
		Title:       title,
		Description: prompt,
		Tags:        []string{"ai", "generated", "video"},
	}
}
