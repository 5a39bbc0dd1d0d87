package main

import (
	"log"

	"ainewsdesk/internal/api"
	"ainewsdesk/internal/config"
	"ainewsdesk/internal/feeds"
	"ainewsdesk/internal/logger"
	"ainewsdesk/internal/service"
	"ainewsdesk/internal/summarize"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Debug)

	sources, err := feeds.LoadSources(cfg.FeedsConfigPath)
	if err != nil {
		log.Fatalf("Failed to load feed sources: %v", err)
	}
	logger.Info("Loaded feed sources", "count", len(sources))

	fetcher := feeds.NewFetcher(sources, cfg.FetchTimeout)

	summarizer := summarize.New(cfg.GeminiAPIKey, cfg.GeminiModel)
	if g, ok := summarizer.(*summarize.Gemini); ok {
		defer g.Close()
	}

	svc := service.New(fetcher, summarizer, cfg.CacheTTL, cfg.TopItems, cfg.SummaryConcurrency)

	server := api.NewServer(api.NewHandler(svc))
	logger.Info("Starting server", "port", cfg.Port)
	if err := server.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
