package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"coinpicker/internal/coins"
	"coinpicker/internal/config"
	"coinpicker/internal/eventbus"
	"coinpicker/internal/ui"
)

func main() {
	// Parse command line arguments
	var (
		configPath     string
		sourceURL      string
		logPath        string
		printFavorites bool
	)
	flag.StringVar(&configPath, "config", "", "Path to the config file (default: user config dir)")
	flag.StringVar(&sourceURL, "url", "", "Coin list endpoint (overrides config)")
	flag.StringVar(&logPath, "log", "", "Log file (overrides config)")
	flag.BoolVar(&printFavorites, "print-favorites", true, "Print favorited coins to stdout on exit")
	flag.Parse()

	// Load configuration
	var configSvc config.ConfigService
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath)
	} else {
		configSvc = config.NewConfigService()
	}
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config %s: %v\n", configSvc.Path(), err)
		os.Exit(1)
	}
	if sourceURL != "" {
		cfg.SourceURL = sourceURL
	}
	if logPath != "" {
		cfg.LogFile = logPath
	}

	// Set up logging
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	log.SetPrefix(fmt.Sprintf("[%s] ", uuid.NewString()[:8]))
	log.Printf("Starting with config %s, source %s", configSvc.Path(), cfg.SourceURL)

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create event bus
	bus := eventbus.New()
	subscribeLogging(bus)

	// Create UI model
	source := coins.NewClient(cfg.SourceURL, cfg.RequestTimeout())
	uiModel := ui.NewModel(bus, cfg, source)

	// Create Bubble Tea program
	// Mouse tracking is switched on by the widget when it mounts
	p := tea.NewProgram(uiModel,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			log.Printf("Interrupted, shutting down")
			p.Quit()
		case <-ctx.Done():
		}
	}()

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		log.Printf("Error running program: %v", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	// Cleanup
	uiModel.Dispose()
	bus.Close()

	if printFavorites {
		for _, c := range uiModel.Favorites() {
			fmt.Println(c.Label())
		}
	}
}

// subscribeLogging writes widget events to the log
func subscribeLogging(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventDropdownToggled, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.DropdownToggledEvent); ok {
			log.Printf("Dropdown open=%t outside=%t", event.Open, event.Outside)
		}
	})
	bus.Subscribe(eventbus.EventCoinsLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.CoinsLoadedEvent); ok {
			log.Printf("Coin list ready: %d coins", event.Count)
		}
	})
	bus.Subscribe(eventbus.EventCoinsLoadFailed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.CoinsLoadFailedEvent); ok {
			log.Printf("Coin list unavailable: %v", event.Err)
		}
	})
	bus.Subscribe(eventbus.EventCategoryChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.CategoryChangedEvent); ok {
			log.Printf("Category: %s", event.Category)
		}
	})
	bus.Subscribe(eventbus.EventFavoriteToggled, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.FavoriteToggledEvent); ok {
			log.Printf("Favorite %s: %t", event.Coin.Label(), event.Favorited)
		}
	})
}
