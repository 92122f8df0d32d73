package fetcher

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/tomakado/containers/set"

	"github.com/kovalyov-valentin/news-ai-agent/internal/model"
	"github.com/kovalyov-valentin/news-ai-agent/internal/source"
)

// Интерфейс источника. RSS клиент его уже реализует
type Source interface {
	Name() string
	Category() string
	Fetch(ctx context.Context) ([]model.Item, error)
}

// Сборщик: обходит реестр и превращает сырые записи в статьи
type Fetcher struct {
	registry source.Registry
	// Кап статей на одну пару источник/рубрика
	articlesPerSource int
	// Фильтрация статей по ключевым словам
	filterKeywords []string
}

// Реестр передаем явно в конструктор, никакого глобального состояния
func New(registry source.Registry, articlesPerSource int, filterKeywords []string) *Fetcher {
	return &Fetcher{
		registry:          registry,
		articlesPerSource: articlesPerSource,
		filterKeywords:    filterKeywords,
	}
}

// Обходит все пары источник/рубрика строго последовательно,
// в порядке объявления в реестре, и склеивает результаты.
// Сломанная лента не должна уронить весь обход: ошибку логируем,
// считаем что лента отдала ноль статей, и идем дальше.
// Наружу уходит только отмена контекста
func (f *Fetcher) FetchAll(ctx context.Context) ([]model.Article, error) {
	var articles []model.Article

	for _, src := range f.registry {
		for _, feed := range src.Feeds {
			rssSource := source.NewRSSSource(src.Name, feed.Category, feed.URL)

			items, err := rssSource.Fetch(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return articles, err
				}

				log.Printf("[ERROR] fetching items from %s/%s: %v", src.Name, feed.Category, err)
				continue
			}

			articles = append(articles, f.normalizeItems(rssSource, items)...)
		}
	}

	log.Printf("fetched %d articles total", len(articles))

	return articles, nil
}

// Нормализует записи одной ленты по порядку, пока не наберется кап.
// Выброшенные записи в кап не засчитываются
func (f *Fetcher) normalizeItems(src Source, items []model.Item) []model.Article {
	var articles []model.Article

	for _, item := range items {
		if len(articles) >= f.articlesPerSource {
			break
		}

		article, ok := f.normalize(src, item)
		if !ok {
			continue
		}

		articles = append(articles, article)
	}

	return articles
}

// Из сырой записи делаем статью, либо говорим что запись непригодна.
// Записи без заголовка или без ссылки молча выбрасываем:
// это фильтр качества, а не ошибка
func (f *Fetcher) normalize(src Source, item model.Item) (model.Article, bool) {
	if item.Title == "" || item.Link == "" {
		return model.Article{}, false
	}

	if f.itemShouldBeSkipped(item) {
		return model.Article{}, false
	}

	// Если дату распарсить не удалось, подставляем время скачивания.
	// Даты публикации у нас нигде не считаются авторитетными
	publishedAt := item.Date.UTC()
	if !item.DateValid || item.Date.IsZero() {
		publishedAt = time.Now().UTC()
	}

	return model.Article{
		Source:      src.Name(),
		Category:    src.Category(),
		Title:       item.Title,
		Summary:     item.Summary,
		URL:         item.Link,
		PublishedAt: publishedAt,
		ImageURL:    item.ImageURL,
	}, true
}

// Проходимся по списку рубрик записи и по заголовку.
// Если нашли ключевое слово — запись пропускаем
func (f *Fetcher) itemShouldBeSkipped(item model.Item) bool {
	// Сет, а не слайс, чтобы быстро проверять вхождение
	categoriesSet := set.New(item.Categories...)

	for _, keyword := range f.filterKeywords {
		titleContainsKeyword := strings.Contains(strings.ToLower(item.Title), keyword)

		if categoriesSet.Contains(keyword) || titleContainsKeyword {
			return true
		}
	}

	return false
}
