package repositories

import (
	"sort"

	"ytgrip/internal/domain"
)

// ChannelStatus is the load state of one subscribed channel
type ChannelStatus struct {
	Channel domain.Channel
	Loaded  bool
	Entries int
	Err     error
}

// FeedStore keeps the subscribed channels and their merged uploads,
// newest first
type FeedStore struct {
	channels []ChannelStatus
	byID     map[string][]domain.FeedEntry
	entries  []domain.FeedEntry
}

// NewFeedStore creates a store for the given subscriptions
func NewFeedStore(channels []domain.Channel) *FeedStore {
	fs := &FeedStore{byID: make(map[string][]domain.FeedEntry)}
	fs.SetChannels(channels)
	return fs
}

// SetChannels replaces the subscription list and drops all entries
func (fs *FeedStore) SetChannels(channels []domain.Channel) {
	fs.channels = make([]ChannelStatus, 0, len(channels))
	for _, ch := range channels {
		fs.channels = append(fs.channels, ChannelStatus{Channel: ch})
	}
	fs.byID = make(map[string][]domain.FeedEntry)
	fs.entries = nil
}

// Channels returns the subscriptions in config order
func (fs *FeedStore) Channels() []ChannelStatus {
	return fs.channels
}

// Domain returns the plain channel list
func (fs *FeedStore) Domain() []domain.Channel {
	out := make([]domain.Channel, 0, len(fs.channels))
	for _, c := range fs.channels {
		out = append(out, c.Channel)
	}
	return out
}

// SetEntries stores a channel's uploads and rebuilds the merged list
func (fs *FeedStore) SetEntries(channelID string, entries []domain.FeedEntry) {
	for i := range fs.channels {
		if fs.channels[i].Channel.ID == channelID {
			fs.channels[i].Loaded = true
			fs.channels[i].Entries = len(entries)
			fs.channels[i].Err = nil
		}
	}
	fs.byID[channelID] = append([]domain.FeedEntry(nil), entries...)
	fs.rebuild()
}

// SetError records a failed fetch. Previously loaded entries are kept.
func (fs *FeedStore) SetError(channelID string, err error) {
	for i := range fs.channels {
		if fs.channels[i].Channel.ID == channelID {
			fs.channels[i].Err = err
		}
	}
}

func (fs *FeedStore) rebuild() {
	fs.entries = fs.entries[:0]
	for _, ch := range fs.channels {
		fs.entries = append(fs.entries, fs.byID[ch.Channel.ID]...)
	}
	sort.SliceStable(fs.entries, func(i, j int) bool {
		return fs.entries[i].Published.After(fs.entries[j].Published)
	})
}

// Entries returns all uploads, newest first
func (fs *FeedStore) Entries() []domain.FeedEntry {
	return fs.entries
}

func (fs *FeedStore) Len() int {
	return len(fs.entries)
}

// At returns the entry at i, or nil when out of range
func (fs *FeedStore) At(i int) *domain.FeedEntry {
	if i < 0 || i >= len(fs.entries) {
		return nil
	}
	return &fs.entries[i]
}

// IndexOfLink returns the position of the entry with link, or -1
func (fs *FeedStore) IndexOfLink(link string) int {
	for i := range fs.entries {
		if fs.entries[i].Link == link {
			return i
		}
	}
	return -1
}

// Failed counts channels whose last fetch failed
func (fs *FeedStore) Failed() int {
	n := 0
	for _, c := range fs.channels {
		if c.Err != nil {
			n++
		}
	}
	return n
}
