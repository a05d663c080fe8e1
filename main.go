package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"dicbrowse/internal/config"
	"dicbrowse/internal/discovery"
	"dicbrowse/internal/store/sqlite"
	"dicbrowse/internal/ui"
	"dicbrowse/internal/ui/services/navigation"
)

func main() {
	// Parse command line arguments
	var targetDir, configPath string
	flag.StringVar(&targetDir, "dir", "", "Directory containing dictionaries")
	flag.StringVar(&targetDir, "d", "", "Directory containing dictionaries (shorthand)")
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.StringVar(&configPath, "c", "", "Path to the config file (shorthand)")
	flag.Parse()

	// If no directory specified, check for remaining args
	if targetDir == "" && flag.NArg() > 0 {
		targetDir = flag.Arg(0)
	}

	configSvc := config.NewConfigService()
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath)
	}
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Printf("Error loading config %s: %v\n", configSvc.Path(), err)
		os.Exit(1)
	}
	if targetDir != "" {
		cfg.DictionaryDir = targetDir
	}

	// Set up logging
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	absDir, err := filepath.Abs(cfg.DictionaryDir)
	if err != nil {
		fmt.Printf("Error resolving path: %v\n", err)
		os.Exit(1)
	}

	catalog, err := discovery.NewDiscoveryService(cfg.Extension).Discover(absDir)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	nav := navigation.NewService(sqlite.NewOpener(catalog.Dir, catalog.Extension), catalog)
	if err := nav.LoadDictionary(0); err != nil {
		fmt.Printf("Error opening dictionary %q: %v\n", catalog.Name(0), err)
		os.Exit(1)
	}
	defer func() {
		if err := nav.Close(); err != nil {
			log.Printf("Error closing dictionary: %v", err)
		}
	}()

	uiModel := ui.NewModel(cfg, nav, ui.SystemClipboard{})

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UISettings.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(uiModel, opts...)
	uiModel.SetProgram(p)

	if os.Getenv("DICBROWSE_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	// Run the UI
	log.Printf("Starting UI with %d dictionaries from %s", catalog.Len(), absDir)
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}
