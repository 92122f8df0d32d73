package source_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kovalyov-valentin/news-ai-agent/internal/source"
)

const feedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Testfeed</title>
    <link>http://example.nl</link>
    <description>test</description>
    <item>
      <title>Kabinet presenteert nieuwe begroting</title>
      <link>http://example.nl/artikel/1</link>
      <description>Het kabinet heeft vandaag de begroting gepresenteerd.</description>
      <category>politiek</category>
      <pubDate>Tue, 10 Oct 2023 06:00:00 +0000</pubDate>
      <enclosure url="http://example.nl/img/1.jpg" type="image/jpeg" length="1024"/>
      <enclosure url="http://example.nl/img/2.jpg" type="image/jpeg" length="2048"/>
    </item>
    <item>
      <title>Tweede artikel</title>
      <link>http://example.nl/artikel/2</link>
      <description>Zonder afbeelding.</description>
      <pubDate>geen datum</pubDate>
    </item>
  </channel>
</rss>`

func newFeedServer(t *testing.T, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestRSSSource_Fetch(t *testing.T) {
	srv := newFeedServer(t, feedXML)

	src := source.NewRSSSource("nos", "general", srv.URL)

	items, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	first := items[0]
	assert.Equal(t, "Kabinet presenteert nieuwe begroting", first.Title)
	assert.Equal(t, "http://example.nl/artikel/1", first.Link)
	assert.Equal(t, "Het kabinet heeft vandaag de begroting gepresenteerd.", first.Summary)
	assert.Equal(t, []string{"politiek"}, first.Categories)
	assert.True(t, first.DateValid)
	assert.True(t, first.Date.Equal(time.Date(2023, 10, 10, 6, 0, 0, 0, time.UTC)))
	assert.Equal(t, "http://example.nl/img/1.jpg", first.ImageURL, "first enclosure wins")

	second := items[1]
	assert.False(t, second.DateValid)
	assert.Empty(t, second.ImageURL)
}

func TestRSSSource_FetchUnreachable(t *testing.T) {
	src := source.NewRSSSource("nos", "general", "http://127.0.0.1:1/feed")

	items, err := src.Fetch(context.Background())
	assert.Error(t, err)
	assert.Empty(t, items)
}

func TestRSSSource_FetchCancelledContext(t *testing.T) {
	release := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	t.Cleanup(srv.Close)
	// Срабатывает раньше srv.Close, иначе Close будет ждать хендлер
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := source.NewRSSSource("nos", "general", srv.URL)

	_, err := src.Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDefaultRegistryOrder(t *testing.T) {
	registry := source.DefaultRegistry()

	require.Len(t, registry, 3)
	assert.Equal(t, "nos", registry[0].Name)
	assert.Equal(t, "nu", registry[1].Name)
	assert.Equal(t, "telegraaf", registry[2].Name)

	for _, src := range registry {
		assert.NotEmpty(t, src.Feeds)
		for _, feed := range src.Feeds {
			assert.NotEmpty(t, feed.Category)
			assert.NotEmpty(t, feed.URL)
		}
	}
}
