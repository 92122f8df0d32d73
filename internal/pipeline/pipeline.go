package pipeline

import (
	"context"
	"log"
	"time"

	"github.com/kovalyov-valentin/news-ai-agent/internal/model"
	"github.com/kovalyov-valentin/news-ai-agent/internal/publisher"
)

type Fetcher interface {
	FetchAll(ctx context.Context) ([]model.Article, error)
}

type Generator interface {
	GenerateBatch(ctx context.Context, articles []model.Article, maxPosts int) []model.Post
}

type Publisher interface {
	PublishAll(ctx context.Context, posts []model.Post) []publisher.Result
}

type SnapshotStorage interface {
	SaveArticles(articles []model.Article, filename string) error
	SavePosts(posts []model.Post, filename string) error
	SaveResults(results any, filename string) error
}

// Итог одной стадии прогона
type StageResult struct {
	Success bool               `json:"success"`
	Count   int                `json:"count"`
	Results []publisher.Result `json:"results,omitempty"`
}

// Итог всего прогона, уходит в снапшот results_<ts>.json
type RunResult struct {
	Timestamp string                 `json:"timestamp"`
	Stages    map[string]StageResult `json:"stages"`
	Error     string                 `json:"error,omitempty"`
}

// Оркестратор: три стадии строго по порядку,
// скачивание -> генерация -> публикация
type Pipeline struct {
	fetcher   Fetcher
	generator Generator
	publisher Publisher
	snapshots SnapshotStorage
	maxPosts  int
	// Интервал между прогонами. 0 — один прогон и выход
	runInterval time.Duration
}

func New(
	fetcher Fetcher,
	generator Generator,
	publisher Publisher,
	snapshots SnapshotStorage,
	maxPosts int,
	runInterval time.Duration,
) *Pipeline {
	return &Pipeline{
		fetcher:     fetcher,
		generator:   generator,
		publisher:   publisher,
		snapshots:   snapshots,
		maxPosts:    maxPosts,
		runInterval: runInterval,
	}
}

// Запускает пайплайн. Без интервала это просто один прогон.
// С интервалом работаем как воркер, пока не отменят контекст
func (p *Pipeline) Start(ctx context.Context) error {
	if _, err := p.Run(ctx); err != nil {
		return err
	}

	if p.runInterval == 0 {
		return nil
	}

	ticker := time.NewTicker(p.runInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := p.Run(ctx); err != nil {
				return err
			}
		}
	}
}

// Один прогон пайплайна. Каждая стадия пишет свой снапшот на диск.
// Пустой результат скачивания не ошибка: прогон просто
// останавливается после первой стадии
func (p *Pipeline) Run(ctx context.Context) (RunResult, error) {
	timestamp := time.Now().Format("20060102_150405")

	log.Println("starting pipeline run")

	result := RunResult{
		Timestamp: timestamp,
		Stages:    map[string]StageResult{},
	}

	// Стадия 1: скачивание статей
	articles, err := p.fetcher.FetchAll(ctx)
	if err != nil {
		result.Error = err.Error()
		return result, err
	}

	p.saveSnapshot(func() error {
		return p.snapshots.SaveArticles(articles, "articles_"+timestamp+".json")
	})

	result.Stages["scraping"] = StageResult{Success: true, Count: len(articles)}

	if len(articles) == 0 {
		log.Println("no articles fetched, nothing to do")
		return result, nil
	}

	// Стадия 2: генерация постов
	posts := p.generator.GenerateBatch(ctx, articles, p.maxPosts)

	p.saveSnapshot(func() error {
		return p.snapshots.SavePosts(posts, "posts_"+timestamp+".json")
	})

	result.Stages["ai_processing"] = StageResult{Success: true, Count: len(posts)}

	if len(posts) > 0 {
		log.Printf("sample post:\n%s", posts[0].Format())
	}

	// Стадия 3: публикация
	published := p.publisher.PublishAll(ctx, posts)

	result.Stages["publishing"] = StageResult{
		Success: true,
		Count:   len(published),
		Results: published,
	}

	p.saveSnapshot(func() error {
		return p.snapshots.SaveResults(result, "results_"+timestamp+".json")
	})

	log.Println("pipeline run completed")

	return result, nil
}

// Снапшоты это диагностика, а не источник правды.
// Неудавшаяся запись не должна ронять прогон
func (p *Pipeline) saveSnapshot(save func() error) {
	if err := save(); err != nil {
		log.Printf("[ERROR] saving snapshot: %v", err)
	}
}
