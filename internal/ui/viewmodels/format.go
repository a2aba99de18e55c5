package viewmodels

import (
	"time"

	"github.com/dustin/go-humanize"

	"ytgrip/internal/domain"
	"ytgrip/internal/ui/views"
	"ytgrip/internal/youtube"
)

// ResultRow formats a search result for the table
func ResultRow(item domain.ResultItem) views.ResultRow {
	return views.ResultRow{
		Title:     item.Title,
		Channel:   item.Channel,
		Published: Age(item.PublishedAt),
		Duration:  youtube.FormatDuration(item.Duration),
		Views:     Views(item.ViewCount),
	}
}

// Info formats a search result for the details panel
func Info(item domain.ResultItem) views.InfoPanel {
	published := Age(item.PublishedAt)
	if t, err := time.Parse(time.RFC3339, item.PublishedAt); err == nil {
		published = t.Format("2006-01-02") + " (" + humanize.Time(t) + ")"
	}
	return views.InfoPanel{
		Title:       item.Title,
		Channel:     item.Channel,
		Published:   published,
		Duration:    youtube.FormatDuration(item.Duration),
		Views:       Views(item.ViewCount),
		Link:        item.Link,
		Description: item.Description,
	}
}

// FeedRow formats a subscription upload
func FeedRow(entry domain.FeedEntry) views.FeedRow {
	age := ""
	if !entry.Published.IsZero() {
		age = humanize.Time(entry.Published)
	}
	return views.FeedRow{
		Title:   entry.Title,
		Channel: entry.Channel,
		Age:     age,
		Views:   Views(entry.Views),
	}
}

// ChannelName falls back to the channel ID when no name is configured
func ChannelName(ch domain.Channel) string {
	if ch.Name != "" {
		return ch.Name
	}
	return ch.ID
}

// Age renders an RFC 3339 timestamp relative to now. Unparseable values
// are returned unchanged.
func Age(rfc3339 string) string {
	if rfc3339 == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, rfc3339)
	if err != nil {
		return rfc3339
	}
	return humanize.Time(t)
}

// Views groups a decimal view count with commas
func Views(count string) string {
	n, ok := youtube.ParseViewCount(count)
	if !ok {
		return count
	}
	return humanize.Comma(n)
}
