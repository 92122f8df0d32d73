package publisher_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kovalyov-valentin/news-ai-agent/internal/model"
	"github.com/kovalyov-valentin/news-ai-agent/internal/publisher"
)

func postsFixture(n int) []model.Post {
	posts := make([]model.Post, 0, n)
	for i := 0; i < n; i++ {
		posts = append(posts, model.Post{
			OriginalTitle: "Titel",
			OriginalURL:   "http://example.nl/artikel/1",
			Source:        "nos",
			Content:       "Kort bericht",
			Hashtags:      []string{"#nieuws", "#nederland"},
			Emoji:         "📰",
			Platform:      "telegram",
		})
	}
	return posts
}

func TestPublishAll_DryRun(t *testing.T) {
	// В dry run до бота дело не доходит, поэтому nil безопасен
	p := publisher.New(nil, 0, time.Millisecond, true)

	results := p.PublishAll(context.Background(), postsFixture(3))

	require.Len(t, results, 3, "one result per post")
	for _, result := range results {
		assert.Equal(t, publisher.StatusDryRun, result.Status)
		assert.Equal(t, "Titel", result.OriginalTitle)
		assert.Zero(t, result.MessageID)
		assert.Empty(t, result.Error)
	}
}

func TestPublishAll_NoPosts(t *testing.T) {
	p := publisher.New(nil, 0, time.Millisecond, true)

	results := p.PublishAll(context.Background(), nil)
	assert.Empty(t, results)
}

func TestPublishAll_DryRunIgnoresDelay(t *testing.T) {
	p := publisher.New(nil, 0, time.Hour, true)

	done := make(chan struct{})
	go func() {
		p.PublishAll(context.Background(), postsFixture(5))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("dry run should not wait between posts")
	}
}
