package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventError                EventType = "Error"
	EventSearchStarted        EventType = "SearchStarted"
	EventSearchCompleted      EventType = "SearchCompleted"
	EventSearchFailed         EventType = "SearchFailed"
	EventPlaybackStarted      EventType = "PlaybackStarted"
	EventPlaybackFailed       EventType = "PlaybackFailed"
	EventPlaybackExited       EventType = "PlaybackExited"
	EventFeedRefreshRequested EventType = "FeedRefreshRequested"
	EventFeedRefreshStarted   EventType = "FeedRefreshStarted"
	EventFeedLoaded           EventType = "FeedLoaded"
	EventFeedFailed           EventType = "FeedFailed"
	EventFeedRefreshCompleted EventType = "FeedRefreshCompleted"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ErrorEvent is emitted when a background service hits an error
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// SearchStartedEvent is emitted when a query is handed to the search client
type SearchStartedEvent struct {
	Query string
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchCompletedEvent is emitted after results are committed
type SearchCompletedEvent struct {
	Query   string
	Results int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent is emitted when the search client returns an error
type SearchFailedEvent struct {
	Query string
	Err   error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// PlaybackStartedEvent is emitted once the player process is running
type PlaybackStartedEvent struct {
	URL string
	PID int
}

func (e PlaybackStartedEvent) Type() EventType { return EventPlaybackStarted }

// PlaybackFailedEvent is emitted when the player could not be spawned
type PlaybackFailedEvent struct {
	URL string
	Err error
}

func (e PlaybackFailedEvent) Type() EventType { return EventPlaybackFailed }

// PlaybackExitedEvent is emitted when a detached player process is reaped
type PlaybackExitedEvent struct {
	URL    string
	Err    error  // non-nil for a non-zero exit
	Stderr string // tail of the player's stderr
}

func (e PlaybackExitedEvent) Type() EventType { return EventPlaybackExited }

// FeedRefreshRequestedEvent asks the feed service to reload channels
type FeedRefreshRequestedEvent struct {
	Channels []Channel
}

func (e FeedRefreshRequestedEvent) Type() EventType { return EventFeedRefreshRequested }

// FeedRefreshStartedEvent is emitted when a feed refresh begins
type FeedRefreshStartedEvent struct {
	Channels int
}

func (e FeedRefreshStartedEvent) Type() EventType { return EventFeedRefreshStarted }

// FeedLoadedEvent carries the entries of one channel
type FeedLoadedEvent struct {
	Channel Channel
	Entries []FeedEntry
}

func (e FeedLoadedEvent) Type() EventType { return EventFeedLoaded }

// FeedFailedEvent is emitted when one channel feed could not be loaded
type FeedFailedEvent struct {
	Channel Channel
	Err     error
}

func (e FeedFailedEvent) Type() EventType { return EventFeedFailed }

// FeedRefreshCompletedEvent is emitted when every channel has been tried
type FeedRefreshCompletedEvent struct {
	Loaded int
	Failed int
}

func (e FeedRefreshCompletedEvent) Type() EventType { return EventFeedRefreshCompleted }
