package prompt

import (
	"fmt"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
)

const articleTimeout = 30 * time.Second

// Script is readable article text prepared for a director job.
type Script struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// ScriptFromURL fetches a page and extracts its readable text as a script.
func ScriptFromURL(url string) (*Script, error) {
	if url == "" {
		return nil, fmt.Errorf("url is required")
	}

	article, err := readability.FromURL(url, articleTimeout)
	if err != nil {
		return nil, fmt.Errorf("readability extraction failed: %w", err)
	}

	text := normalizeScript(article.TextContent)
	if text == "" {
		return nil, fmt.Errorf("no readable text found at %s", url)
	}
	return &Script{Title: article.Title, Text: text}, nil
}

// normalizeScript collapses extraction whitespace into blank-line separated
// paragraphs, the shape the director's fallback splitter expects.
func normalizeScript(raw string) string {
	var paragraphs []string
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	return strings.Join(paragraphs, "\n\n")
}
