package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/kovalyov-valentin/news-ai-agent/internal/config"
	"github.com/kovalyov-valentin/news-ai-agent/internal/fetcher"
	"github.com/kovalyov-valentin/news-ai-agent/internal/pipeline"
	"github.com/kovalyov-valentin/news-ai-agent/internal/post"
	"github.com/kovalyov-valentin/news-ai-agent/internal/publisher"
	"github.com/kovalyov-valentin/news-ai-agent/internal/source"
	"github.com/kovalyov-valentin/news-ai-agent/internal/storage"
)

func main() {
	cfg := config.Get()

	// В dry run режиме бот не нужен, поэтому и не создаем его
	var botAPI *tgbotapi.BotAPI
	if !cfg.DryRun {
		var err error

		botAPI, err = tgbotapi.NewBotAPI(cfg.TelegramBotToken)
		if err != nil {
			log.Printf("failed to create bot: %v", err)
			return
		}
	}

	snapshots, err := storage.NewSnapshotStorage(cfg.OutputDir)
	if err != nil {
		log.Printf("failed to create snapshot storage: %v", err)
		return
	}

	// Инициализируем наши зависимости
	var (
		newsFetcher = fetcher.New(
			source.DefaultRegistry(),
			cfg.ArticlesPerSource,
			cfg.FilterKeywords,
		)
		generator = post.NewOpenAIGenerator(cfg.OpenAIKey, cfg.OpenAIModel)
		telegram  = publisher.New(
			botAPI,
			cfg.TelegramChannelID,
			cfg.PublishDelay,
			cfg.DryRun,
		)
	)

	newsPipeline := pipeline.New(
		newsFetcher,
		generator,
		telegram,
		snapshots,
		cfg.MaxPosts,
		cfg.RunInterval,
	)

	// Graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newsPipeline.Start(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Printf("[ERROR] pipeline failed: %v", err)
			return
		}

		log.Println("pipeline stopped")
	}
}
