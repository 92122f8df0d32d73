package post

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strings"
	"sync"

	readability "github.com/go-shiori/go-readability"
	"github.com/sashabaranov/go-openai"

	"github.com/kovalyov-valentin/news-ai-agent/internal/model"
)

// Генератор постов поверх openai.
// Из одной статьи делает один черновик поста для канала
type OpenAIGenerator struct {
	client *openai.Client
	model  string
	// Флаг вкл/выкл генератора. Без ключа работаем вхолостую
	enabled bool
	mu      sync.Mutex
}

func NewOpenAIGenerator(apiKey, model string) *OpenAIGenerator {
	g := &OpenAIGenerator{
		client: openai.NewClient(apiKey),
		model:  model,
	}

	log.Printf("openai post generator enabled: %v", apiKey != "")

	if apiKey != "" {
		g.enabled = true
	}

	return g
}

var ErrDisabled = errors.New("openai post generator is disabled")

// Шаблон промпта. Просим модель вернуть json с текстом поста,
// эмодзи и хэштегами
const promptFormat = `Je bent een social media expert gespecialiseerd in Nederlandse nieuwscontent.

ARTIKEL DETAILS:
Titel: %s
Beschrijving: %s
Bron: %s
Categorie: %s

TAAK:
Creëer een pakkende post in het Nederlands die:
1. De kern van het nieuws samenvat
2. Engaging en informatief is
3. Maximaal %d karakters is (ZONDER link en hashtags)
4. Een passende emoji gebruikt
5. 3-5 relevante hashtags bevat

RESPONSE FORMAT (JSON):
{
    "content": "De post tekst zonder emoji, hashtags of link",
    "emoji": "Een enkele relevante emoji",
    "hashtags": ["#hashtag1", "#hashtag2", "#hashtag3"]
}

Belangrijk: Houd de content feitelijk en neutraal. Gebruik geen sensationele taal.`

const (
	platform         = "telegram"
	maxContentLength = 500
)

// Генерит посты максимум для maxPosts первых статей.
// Если какая-то статья не обработалась, логируем и идем к следующей
func (g *OpenAIGenerator) GenerateBatch(ctx context.Context, articles []model.Article, maxPosts int) []model.Post {
	if len(articles) > maxPosts {
		articles = articles[:maxPosts]
	}

	var posts []model.Post

	for i, article := range articles {
		post, err := g.Generate(ctx, article)
		if err != nil {
			log.Printf("[ERROR] generating post %d/%d: %v", i+1, len(articles), err)
			continue
		}

		posts = append(posts, post)
		log.Printf("generated post %d/%d", i+1, len(articles))
	}

	log.Printf("generated %d posts total", len(posts))

	return posts
}

func (g *OpenAIGenerator) Generate(ctx context.Context, article model.Article) (model.Post, error) {
	// Обкладываем мьютексом, т.к. конкурентный доступ к клиенту
	// может вызывать сюрпризы
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.enabled {
		return model.Post{}, ErrDisabled
	}

	description, err := g.articleText(article)
	if err != nil {
		return model.Post{}, err
	}

	request := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(
					promptFormat,
					article.Title,
					description,
					strings.ToUpper(article.Source),
					article.Category,
					maxContentLength,
				),
			},
		},
		MaxTokens:   500,
		Temperature: 0.7,
		TopP:        1,
	}

	resp, err := g.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return model.Post{}, err
	}

	parsed, err := parseResponse(resp.Choices[0].Message.Content)
	if err != nil {
		return model.Post{}, err
	}

	p := model.Post{
		OriginalTitle: article.Title,
		OriginalURL:   article.URL,
		Source:        article.Source,
		Content:       parsed.Content,
		Hashtags:      parsed.Hashtags,
		Emoji:         parsed.Emoji,
		Platform:      platform,
	}
	p.FullPost = p.Format()

	return p, nil
}

// Текст, который скармливаем модели.
// Если у статьи есть summary, используем его как есть.
// Если нет — идем по ссылке, и вытаскиваем из html читаемый текст
func (g *OpenAIGenerator) articleText(article model.Article) (string, error) {
	if article.Summary != "" {
		return article.Summary, nil
	}

	resp, err := http.Get(article.URL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var r io.Reader = resp.Body

	doc, err := readability.FromReader(r, nil)
	if err != nil {
		return "", err
	}

	return cleanText(doc.TextContent), nil
}

type generated struct {
	Content  string   `json:"content"`
	Emoji    string   `json:"emoji"`
	Hashtags []string `json:"hashtags"`
}

// Модель иногда оборачивает json в пояснительный текст,
// поэтому сначала вырезаем все от первой { до последней }
var jsonPattern = regexp.MustCompile(`(?s)\{.*\}`)

// Разбирает ответ модели.
// Если json вообще не разобрался — возвращаем заглушку, пост важнее.
// Если json разобрался, но обязательных полей нет — это уже ошибка
func parseResponse(text string) (generated, error) {
	raw := jsonPattern.FindString(text)
	if raw == "" {
		raw = text
	}

	var result generated
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		log.Printf("[ERROR] failed to parse model response: %v", err)

		return generated{
			Content:  "Breaking news update",
			Emoji:    "📰",
			Hashtags: []string{"#nieuws", "#netherlands"},
		}, nil
	}

	if result.Content == "" || result.Emoji == "" || len(result.Hashtags) == 0 {
		return generated{}, errors.New("missing required fields in model response")
	}

	return result, nil
}

// readability оставляет в тексте много пустых строк.
// Все последовательности от 3 переводов строки схлопываем в один
var redundantNewLines = regexp.MustCompile(`\n{3,}`)

func cleanText(text string) string {
	return redundantNewLines.ReplaceAllString(text, "\n")
}
