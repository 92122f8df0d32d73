package markup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kovalyov-valentin/news-ai-agent/internal/markup"
)

func TestEscapeForMarkdown(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "plain text untouched",
			src:  "gewoon tekst",
			want: "gewoon tekst",
		},
		{
			name: "dots and exclamation marks",
			src:  "Let op! Dit is nieuws.",
			want: "Let op\\! Dit is nieuws\\.",
		},
		{
			name: "url",
			src:  "http://example.nl/artikel-1_2",
			want: "http://example\\.nl/artikel\\-1\\_2",
		},
		{
			name: "markdown syntax",
			src:  "*bold* [link](url)",
			want: "\\*bold\\* \\[link\\]\\(url\\)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, markup.EscapeForMarkdown(tt.src))
		})
	}
}
