package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kovalyov-valentin/news-ai-agent/internal/model"
)

func TestPostFormat(t *testing.T) {
	p := model.Post{
		OriginalTitle: "Kabinet presenteert begroting",
		OriginalURL:   "http://example.nl/artikel/1",
		Source:        "nos",
		Content:       "Het kabinet heeft de begroting gepresenteerd.",
		Hashtags:      []string{"#politiek", "#begroting", "#nederland"},
		Emoji:         "📊",
		Platform:      "telegram",
	}

	want := "📊 Het kabinet heeft de begroting gepresenteerd.\n\n" +
		"#politiek #begroting #nederland\n\n" +
		"🔗 http://example.nl/artikel/1"

	assert.Equal(t, want, p.Format())
}
