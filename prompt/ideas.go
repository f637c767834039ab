package prompt

import (
	"context"
	"fmt"

	"github.com/mmcdole/gofeed"
)

// DefaultFeedPreset is used when no feed is named.
const DefaultFeedPreset = "tr"

// FeedPresets maps friendly names to RSS feed URLs used for prompt ideas.
var FeedPresets = map[string]string{
	"cna": "https://www.channelnewsasia.com/api/v1/rss-outbound-feed?_format=xml",
	"hn":  "https://hnrss.org/newest",
	"tr":  "https://www.technologyreview.com/feed/",
	"bbc": "https://feeds.bbci.co.uk/news/world/rss.xml",
}

// ResolveFeedURL resolves a feed identifier: preset names map to their URL,
// anything else passes through as a direct URL.
func ResolveFeedURL(feedInput string) string {
	if feedInput == "" {
		feedInput = DefaultFeedPreset
	}
	if url, exists := FeedPresets[feedInput]; exists {
		return url
	}
	return feedInput
}

// Idea is a headline offered as a prompt starting point.
type Idea struct {
	Title string `json:"title"`
	Link  string `json:"link,omitempty"`
}

// Ideas fetches recent headlines from the named feed.
func Ideas(ctx context.Context, feed string, maxCount int) ([]Idea, error) {
	parser := gofeed.NewParser()
	parsed, err := parser.ParseURLWithContext(ResolveFeedURL(feed), ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	return ideasFromFeed(parsed, maxCount), nil
}

func ideasFromFeed(feed *gofeed.Feed, maxCount int) []Idea {
	count := len(feed.Items)
	if maxCount > 0 && maxCount < count {
		count = maxCount
	}

	ideas := make([]Idea, 0, count)
	for _, item := range feed.Items[:count] {
		if item.Title == "" {
			continue
		}
		ideas = append(ideas, Idea{Title: item.Title, Link: item.Link})
	}
	return ideas
}
