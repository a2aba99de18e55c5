package domain

import "time"

// ResultItem is a single search hit merged with its detail lookup
type ResultItem struct {
	Title       string
	Channel     string
	PublishedAt string // RFC 3339 as returned by the API
	Duration    string // ISO 8601, e.g. PT1H2M3S
	ViewCount   string
	Link        string
	Description string
}

// Channel is a subscribed channel from the config file
type Channel struct {
	Name string
	ID   string
}

// FeedEntry is one upload from a channel feed
type FeedEntry struct {
	VideoID   string
	Title     string
	Channel   string
	ChannelID string
	Link      string
	Published time.Time
	Views     string // may be empty, feeds only sometimes carry statistics
}

// Tab identifies the active view
type Tab int

const (
	TabSearch Tab = iota
	TabSubscriptions
)

// Tabs lists the views in display order
var Tabs = []Tab{TabSearch, TabSubscriptions}

func (t Tab) String() string {
	switch t {
	case TabSearch:
		return "Search"
	case TabSubscriptions:
		return "Subs"
	default:
		return "Unknown"
	}
}
