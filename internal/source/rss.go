package source

import (
	"context"

	"github.com/SlyMarbo/rss"
	"github.com/samber/lo"

	"github.com/kovalyov-valentin/news-ai-agent/internal/model"
)

// RSS клиент для одной пары источник/рубрика
type RSSSource struct {
	// URL откуда мы забираем данные
	URL        string
	sourceName string
	category   string
}

func NewRSSSource(sourceName, category, url string) RSSSource {
	return RSSSource{
		URL:        url,
		sourceName: sourceName,
		category:   category,
	}
}

// Загружает ленту и отдает слайс сырых записей.
// Здесь ничего не фильтруем, этим занимается сборщик
func (s RSSSource) Fetch(ctx context.Context) ([]model.Item, error) {
	feed, err := s.loadFeed(ctx, s.URL)
	if err != nil {
		return nil, err
	}

	return lo.Map(feed.Items, func(item *rss.Item, _ int) model.Item {
		return model.Item{
			Title:      item.Title,
			Summary:    item.Summary,
			Link:       item.Link,
			Categories: item.Categories,
			Date:       item.Date,
			DateValid:  item.DateValid,
			ImageURL:   firstEnclosureURL(item.Enclosures),
		}
	}), nil
}

// У rss.Fetch нет контекста, поэтому оборачиваем его в горутину
// и слушаем каналы через select
func (s RSSSource) loadFeed(ctx context.Context, url string) (*rss.Feed, error) {
	var (
		feedCh = make(chan *rss.Feed)
		errCh  = make(chan error)
	)

	go func() {
		feed, err := rss.Fetch(url)
		if err != nil {
			errCh <- err
			return
		}

		feedCh <- feed
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case err := <-errCh:
		return nil, err
	case feed := <-feedCh:
		return feed, nil
	}
}

func (s RSSSource) Name() string {
	return s.sourceName
}

func (s RSSSource) Category() string {
	return s.category
}

// Берем урл первого enclosure, не проверяя что это вообще картинка
func firstEnclosureURL(enclosures []*rss.Enclosure) string {
	if len(enclosures) == 0 {
		return ""
	}

	return enclosures[0].URL
}
