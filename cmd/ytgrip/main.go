// Ytgrip is a terminal client for searching YouTube and following channel
// uploads, handing the chosen video to an external player.
//
// Usage:
//
//	ytgrip [query...] [flags]
//
// See 'ytgrip --help' for available options.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ytgrip/internal/config"
	"ytgrip/internal/eventbus"
	"ytgrip/internal/feeds"
	"ytgrip/internal/logging"
	"ytgrip/internal/player"
	"ytgrip/internal/ui"
	"ytgrip/internal/ui/input/modes"
	"ytgrip/internal/youtube"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

// e2eEnvVar makes the binary announce readiness for the pty test driver
const e2eEnvVar = "YTGRIP_E2E_TEST"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ytgrip [query...]",
	Short: "Search YouTube and play videos from the terminal",
	Long: `ytgrip searches YouTube from a keyboard-driven terminal UI and hands the
selected video to an external player (mpv by default).

Press i or / to type a query, enter to search, j/k to move and enter to play.
Channels listed under [[subscriptions]] in the config file appear on the
second tab with their latest uploads.

The API key is read from YTGRIP_API_KEY, API_KEY, the config file or --api-key.`,
	Example: `  # Start with an empty result list
  ytgrip

  # Search right away
  ytgrip elden ring boss guide

  # Play audio only
  ytgrip --player-args "--no-video" lofi`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runApp,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ytgrip %s\n", version)
	},
}

// Root command flags
var (
	configPath string
	apiKey     string
	apiBase    string
	feedBase   string
	playerCmd  string
	playerArgs string
	logFile    string
	logLevel   string
)

func init() {
	rootCmd.AddCommand(versionCmd)

	flags := rootCmd.Flags()
	flags.StringVar(&configPath, "config", "", "Path to the config file (default: "+config.DefaultPath()+")")
	flags.StringVar(&apiKey, "api-key", "", "YouTube Data API key")
	flags.StringVar(&apiBase, "api-base", "", "YouTube Data API base URL")
	flags.StringVar(&feedBase, "feed-base", "", "Channel feed base URL")
	flags.StringVar(&playerCmd, "player", "", "Player command (default: mpv)")
	flags.StringVar(&playerArgs, "player-args", "", "Extra player arguments, shell-quoted")
	flags.StringVar(&logFile, "log-file", "", "Log file path (default: "+logging.DefaultLogFile()+")")
	flags.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); logging is off when unset")
}

// loadConfig reads the config file and applies environment and flag overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	svc := config.NewConfigService()
	if configPath != "" {
		svc = config.NewConfigServiceAt(configPath)
	}

	cfg, err := svc.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.ApplyEnv(os.Getenv)

	flags := cmd.Flags()
	if flags.Changed("api-key") {
		cfg.APIKey = apiKey
	}
	if flags.Changed("api-base") {
		cfg.APIBaseURL = apiBase
	}
	if flags.Changed("feed-base") {
		cfg.FeedBaseURL = feedBase
	}
	if flags.Changed("player") {
		cfg.Player.Command = playerCmd
	}
	if flags.Changed("player-args") {
		cfg.Player.Args = playerArgs
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", svc.Path(), err)
	}
	return cfg, nil
}

func runApp(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := logging.Initialize(logLevel, logFile); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.Sync()

	keys := modes.DefaultKeyMap()
	if unknown := keys.ApplyOverrides(cfg.KeyOverrides()); len(unknown) > 0 {
		return fmt.Errorf("unknown actions in [keys]: %s (valid: %s)",
			strings.Join(unknown, ", "), strings.Join(modes.ActionNames(), ", "))
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	timeout := time.Duration(cfg.RequestTimeoutSeconds) * time.Second

	// Initialize services
	client := youtube.NewClient(cfg.APIKey,
		youtube.WithBaseURL(cfg.APIBaseURL),
		youtube.WithMaxResults(cfg.MaxResults),
		youtube.WithTimeout(timeout),
	)
	feedSvc := feeds.NewFeedService(bus, youtube.NewFeedClient(cfg.FeedBaseURL, timeout))
	defer feedSvc.Stop()
	playerSvc := player.NewPlayerService(cfg.Player.Command, bus)

	bus.Subscribe(eventbus.EventPlaybackStarted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PlaybackStartedEvent); ok {
			logging.Info("playback started", zap.String("url", event.URL), zap.Int("pid", event.PID))
		}
	})
	bus.Subscribe(eventbus.EventPlaybackFailed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PlaybackFailedEvent); ok {
			logging.Warn("playback failed", zap.String("url", event.URL), zap.Error(event.Err))
		}
	})

	uiModel := ui.NewModel(ui.Options{
		Context:      ctx,
		Config:       cfg,
		Bus:          bus,
		Searcher:     client,
		Player:       playerSvc,
		PlayerArgs:   player.SplitArgs(cfg.Player.Args),
		Keys:         &keys,
		InitialQuery: strings.Join(args, " "),
	})

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Forward background events to the UI
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventFeedRefreshStarted,
		eventbus.EventFeedLoaded,
		eventbus.EventFeedFailed,
		eventbus.EventFeedRefreshCompleted,
		eventbus.EventPlaybackExited,
		eventbus.EventError,
	} {
		bus.Subscribe(t, forward)
	}

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			logging.Info("signal received, shutting down")
			cancel()
		case <-ctx.Done():
		}
	}()

	if os.Getenv(e2eEnvVar) == "1" {
		fmt.Println("__READY__")
	}

	logging.Info("starting UI", zap.String("version", version), zap.Int("subscriptions", len(cfg.Subscriptions)))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}
	logging.Info("UI exited normally")

	return nil
}
