// Package playback hands the selected row's link to the media player.
package playback

import (
	"go.uber.org/zap"

	"ytgrip/internal/domain"
	"ytgrip/internal/logging"
)

// Player starts playback of url without waiting for it to finish
type Player interface {
	Launch(url string, extraArgs []string) error
}

// Launcher resolves rows to links and starts the player
type Launcher struct {
	player Player
	args   []string
}

// NewLauncher creates a launcher passing args before every link.
// A nil player disables playback.
func NewLauncher(player Player, args []string) *Launcher {
	return &Launcher{
		player: player,
		args:   append([]string(nil), args...),
	}
}

// Launch plays item. A nil item does nothing.
func (l *Launcher) Launch(item *domain.ResultItem) {
	if item == nil {
		return
	}
	l.LaunchURL(item.Link)
}

// LaunchFeedEntry plays a subscription upload
func (l *Launcher) LaunchFeedEntry(entry *domain.FeedEntry) {
	if entry == nil {
		return
	}
	l.LaunchURL(entry.Link)
}

// LaunchURL starts the player on url. Spawn failures are logged by the
// player and deliberately not returned to the UI.
func (l *Launcher) LaunchURL(url string) {
	if l.player == nil || url == "" {
		return
	}
	if err := l.player.Launch(url, l.args); err != nil {
		logging.Debug("playback launch failed", zap.String("url", url), zap.Error(err))
	}
}
