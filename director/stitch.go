package director

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Stitcher concatenates finished scene clips into one video.
type Stitcher interface {
	Stitch(ctx context.Context, clipPaths []string, outputPath string) error
}

// FFmpegStitcher concatenates with the ffmpeg concat demuxer. All clips come
// from the same vendor model with identical encoding, so streams are copied
// rather than re-encoded.
type FFmpegStitcher struct{}

// Stitch implements Stitcher.
func (FFmpegStitcher) Stitch(ctx context.Context, clipPaths []string, outputPath string) error {
	if len(clipPaths) == 0 {
		return fmt.Errorf("no clips to stitch")
	}

	listPath := outputPath + ".concat.txt"
	if err := writeConcatList(clipPaths, listPath); err != nil {
		return fmt.Errorf("write concat list: %w", err)
	}
	defer os.Remove(listPath)

	err := ffmpeg.Input(listPath, ffmpeg.KwArgs{"f": "concat", "safe": 0}).
		Output(outputPath, ffmpeg.KwArgs{"c": "copy"}).
		OverWriteOutput().
		Run()
	if err != nil {
		return fmt.Errorf("ffmpeg concat failed: %w", err)
	}
	return nil
}

// writeConcatList writes the concat demuxer file list. Paths are absolute
// and quoted so the demuxer does not resolve them relative to the list file.
func writeConcatList(clipPaths []string, listPath string) error {
	var b strings.Builder
	for _, p := range clipPaths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		abs = filepath.ToSlash(abs)
		abs = strings.ReplaceAll(abs, "'", `'\''`)
		fmt.Fprintf(&b, "file '%s'\n", abs)
	}
	return os.WriteFile(listPath, []byte(b.String()), 0644)
}
