package main

import (
	"fmt"
	"log"

	"github.com/pravin157/Flight-Schedule-Optimization/internal/analysis"
	"github.com/pravin157/Flight-Schedule-Optimization/internal/config"
	"github.com/pravin157/Flight-Schedule-Optimization/internal/datapaths"
	"github.com/pravin157/Flight-Schedule-Optimization/internal/dispatcher"
	"github.com/pravin157/Flight-Schedule-Optimization/internal/llm"
)

// app holds the pieces shared by every subcommand.
type app struct {
	cfg        *config.Config
	paths      datapaths.Paths
	dispatcher *dispatcher.Dispatcher
}

func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("config load failed: %w", err)
	}

	paths, err := datapaths.New(datapaths.Options{
		Root:                cfg.Data.ProjectRoot,
		DataDir:             cfg.Data.DataDir,
		PrimaryFile:         cfg.Data.PrimaryFile,
		CascadingDelaysFile: cfg.Data.CascadingDelaysFile,
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[Main] Reading datasets from %s", paths.DataDir)

	client := llm.NewClient(cfg.LLM.URL, cfg.LLM.Model, cfg.LLM.Timeout)
	client.System = cfg.LLM.SystemPrompt
	client.Retries = cfg.LLM.Retries

	return &app{
		cfg:        cfg,
		paths:      paths,
		dispatcher: dispatcher.New(client, analysis.NewRegistry(), analysis.NewAnalyzer(paths)),
	}, nil
}
