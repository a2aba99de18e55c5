package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"

	"ytgrip/internal/domain"
)

const DefaultFeedBaseURL = "https://www.youtube.com/feeds/videos.xml"

// FeedClient reads the public Atom feed of a channel
type FeedClient struct {
	baseURL string
	parser  *gofeed.Parser
}

// NewFeedClient creates a feed client. An empty baseURL uses the public endpoint.
func NewFeedClient(baseURL string, timeout time.Duration) *FeedClient {
	if baseURL == "" {
		baseURL = DefaultFeedBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: timeout}
	return &FeedClient{
		baseURL: baseURL,
		parser:  parser,
	}
}

// FeedURL returns the feed address for a channel
func (f *FeedClient) FeedURL(channelID string) string {
	return f.baseURL + "?channel_id=" + url.QueryEscape(channelID)
}

// FetchChannel returns the channel's latest uploads in feed order
func (f *FeedClient) FetchChannel(ctx context.Context, ch domain.Channel) ([]domain.FeedEntry, error) {
	feed, err := f.parser.ParseURLWithContext(f.FeedURL(ch.ID), ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed for %s: %w", ch.ID, err)
	}

	channelName := ch.Name
	if channelName == "" {
		channelName = feed.Title
	}

	entries := make([]domain.FeedEntry, 0, len(feed.Items))
	for _, item := range feed.Items {
		videoID := extensionValue(item.Extensions, "yt", "videoId")
		link := item.Link
		if videoID != "" {
			link = WatchURLPrefix + videoID
		}

		var published time.Time
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		}

		entries = append(entries, domain.FeedEntry{
			VideoID:   videoID,
			Title:     strings.TrimSpace(item.Title),
			Channel:   channelName,
			ChannelID: ch.ID,
			Link:      link,
			Published: published,
			Views:     mediaViews(item.Extensions),
		})
	}
	return entries, nil
}

func extensionValue(exts ext.Extensions, ns, name string) string {
	if exts == nil {
		return ""
	}
	values := exts[ns][name]
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0].Value)
}

// mediaViews digs media:group/media:community/media:statistics@views
func mediaViews(exts ext.Extensions) string {
	if exts == nil {
		return ""
	}
	groups := exts["media"]["group"]
	if len(groups) == 0 {
		return ""
	}
	for _, community := range groups[0].Children["community"] {
		for _, stats := range community.Children["statistics"] {
			if v, ok := stats.Attrs["views"]; ok {
				return v
			}
		}
	}
	return ""
}
