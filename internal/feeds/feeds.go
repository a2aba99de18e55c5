// Package feeds refreshes the subscribed channels' upload feeds in the background.
package feeds

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ytgrip/internal/domain"
	"ytgrip/internal/eventbus"
	"ytgrip/internal/logging"
)

// maxConcurrentFetches bounds parallel feed requests
const maxConcurrentFetches = 4

// ErrRefreshInProgress is returned when a refresh is requested while one runs
var ErrRefreshInProgress = errors.New("feed refresh already in progress")

// Fetcher loads the latest uploads for one channel
type Fetcher interface {
	FetchChannel(ctx context.Context, ch domain.Channel) ([]domain.FeedEntry, error)
}

// FeedService fetches subscription feeds and reports progress on the bus
type FeedService interface {
	StartRefresh(ctx context.Context, channels []domain.Channel) error
	Stop()
}

// feedService is the concrete implementation
type feedService struct {
	bus        eventbus.EventBus
	fetcher    Fetcher
	mu         sync.Mutex
	refreshing bool
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewFeedService creates a feed service that also answers
// FeedRefreshRequested events
func NewFeedService(bus eventbus.EventBus, fetcher Fetcher) FeedService {
	fs := &feedService{
		bus:     bus,
		fetcher: fetcher,
	}

	bus.Subscribe(eventbus.EventFeedRefreshRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.FeedRefreshRequestedEvent); ok {
			if err := fs.StartRefresh(context.Background(), event.Channels); err != nil {
				logging.Debug("feed refresh request ignored", zap.Error(err))
			}
		}
	})

	return fs
}

// StartRefresh fetches every channel concurrently in the background.
// Each channel reports FeedLoaded or FeedFailed; one failure does not stop the others.
func (fs *feedService) StartRefresh(ctx context.Context, channels []domain.Channel) error {
	fs.mu.Lock()
	if fs.refreshing {
		fs.mu.Unlock()
		return ErrRefreshInProgress
	}
	fs.refreshing = true

	refreshCtx, cancel := context.WithCancel(ctx)
	fs.cancelFunc = cancel
	fs.mu.Unlock()

	fs.bus.Publish(eventbus.FeedRefreshStartedEvent{Channels: len(channels)})

	fs.wg.Add(1)
	go func() {
		defer fs.wg.Done()
		defer cancel()

		loaded, failed := fs.refresh(refreshCtx, channels)

		fs.mu.Lock()
		fs.refreshing = false
		fs.cancelFunc = nil
		fs.mu.Unlock()

		fs.bus.Publish(eventbus.FeedRefreshCompletedEvent{Loaded: loaded, Failed: failed})
	}()

	return nil
}

func (fs *feedService) refresh(ctx context.Context, channels []domain.Channel) (int, int) {
	var (
		mu             sync.Mutex
		loaded, failed int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	for _, ch := range channels {
		g.Go(func() error {
			entries, err := fs.fetcher.FetchChannel(gctx, ch)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				logging.Warn("feed fetch failed", zap.String("channel", ch.ID), zap.Error(err))
				fs.bus.Publish(eventbus.FeedFailedEvent{Channel: ch, Err: err})
				mu.Lock()
				failed++
				mu.Unlock()
				return nil
			}

			logging.Debug("feed fetched", zap.String("channel", ch.ID), zap.Int("entries", len(entries)))
			fs.bus.Publish(eventbus.FeedLoadedEvent{Channel: ch, Entries: entries})
			mu.Lock()
			loaded++
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		fs.bus.Publish(eventbus.ErrorEvent{
			Message: fmt.Sprintf("feed refresh aborted after %d of %d channels", loaded+failed, len(channels)),
			Err:     err,
		})
	}
	return loaded, failed
}

// Stop cancels a running refresh and waits for it to finish
func (fs *feedService) Stop() {
	fs.mu.Lock()
	if fs.cancelFunc != nil {
		fs.cancelFunc()
	}
	fs.mu.Unlock()

	fs.wg.Wait()
}
