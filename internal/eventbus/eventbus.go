package eventbus

import (
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"ytgrip/internal/domain"
	"ytgrip/internal/logging"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventError                = domain.EventError
	EventSearchStarted        = domain.EventSearchStarted
	EventSearchCompleted      = domain.EventSearchCompleted
	EventSearchFailed         = domain.EventSearchFailed
	EventPlaybackStarted      = domain.EventPlaybackStarted
	EventPlaybackFailed       = domain.EventPlaybackFailed
	EventPlaybackExited       = domain.EventPlaybackExited
	EventFeedRefreshRequested = domain.EventFeedRefreshRequested
	EventFeedRefreshStarted   = domain.EventFeedRefreshStarted
	EventFeedLoaded           = domain.EventFeedLoaded
	EventFeedFailed           = domain.EventFeedFailed
	EventFeedRefreshCompleted = domain.EventFeedRefreshCompleted
)

// Re-export domain event types
type ErrorEvent = domain.ErrorEvent
type SearchStartedEvent = domain.SearchStartedEvent
type SearchCompletedEvent = domain.SearchCompletedEvent
type SearchFailedEvent = domain.SearchFailedEvent
type PlaybackStartedEvent = domain.PlaybackStartedEvent
type PlaybackFailedEvent = domain.PlaybackFailedEvent
type PlaybackExitedEvent = domain.PlaybackExitedEvent
type FeedRefreshRequestedEvent = domain.FeedRefreshRequestedEvent
type FeedRefreshStartedEvent = domain.FeedRefreshStartedEvent
type FeedLoadedEvent = domain.FeedLoadedEvent
type FeedFailedEvent = domain.FeedFailedEvent
type FeedRefreshCompletedEvent = domain.FeedRefreshCompletedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers.
// Never blocks: when the queue is full the event is dropped.
func (b *bus) Publish(event DomainEvent) {
	logging.Debug("eventbus: publish", zap.String("type", string(event.Type())))

	select {
	case <-b.quit:
		return
	default:
	}

	select {
	case b.eventChan <- event:
	default:
		logging.Warn("eventbus: channel full, dropping event", zap.String("type", string(event.Type())))
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher. Pending events are discarded.
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
		b.wg.Wait()
	})
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := make([]subscription, len(b.handlers[event.Type()]))
			copy(subs, b.handlers[event.Type()])
			b.mu.RUnlock()

			for _, s := range subs {
				go b.invoke(s.handler, event)
			}

		case <-b.quit:
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}

func (b *bus) invoke(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error("eventbus: handler panic",
				zap.String("type", string(event.Type())),
				zap.Any("panic", r),
				zap.ByteString("stack", debug.Stack()))
		}
	}()
	h(event)
}
