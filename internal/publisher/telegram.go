package publisher

import (
	"context"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/kovalyov-valentin/news-ai-agent/internal/markup"
	"github.com/kovalyov-valentin/news-ai-agent/internal/model"
)

// Итог публикации одного поста
type Result struct {
	OriginalTitle string `json:"original_title"`
	Status        string `json:"status"`
	MessageID     int    `json:"message_id,omitempty"`
	Error         string `json:"error,omitempty"`
}

const (
	StatusDryRun  = "dry_run"
	StatusSuccess = "success"
	StatusError   = "error"
)

// Публикует черновики постов в телеграм канал
type TelegramPublisher struct {
	bot       *tgbotapi.BotAPI
	channelID int64
	// Пауза между постами, чтобы не заспамить канал и не упереться в лимиты
	delay time.Duration
	// В dry run режиме посты только логируем
	dryRun bool
}

// В dry run бот не нужен, можно передать nil
func New(bot *tgbotapi.BotAPI, channelID int64, delay time.Duration, dryRun bool) *TelegramPublisher {
	return &TelegramPublisher{
		bot:       bot,
		channelID: channelID,
		delay:     delay,
		dryRun:    dryRun,
	}
}

// Публикует посты по очереди, с паузой между отправками.
// Ошибка одного поста не останавливает остальные,
// на каждый пост возвращается ровно один Result
func (p *TelegramPublisher) PublishAll(ctx context.Context, posts []model.Post) []Result {
	if p.dryRun {
		log.Println("running in dry run mode, nothing will be posted")
	}

	results := make([]Result, 0, len(posts))

	for i, post := range posts {
		if p.dryRun {
			log.Printf("[DRY RUN %d/%d] would post:\n%s", i+1, len(posts), post.Format())
			results = append(results, Result{
				OriginalTitle: post.OriginalTitle,
				Status:        StatusDryRun,
			})
			continue
		}

		messageID, err := p.publish(post)
		if err != nil {
			log.Printf("[ERROR] posting %d/%d: %v", i+1, len(posts), err)
			results = append(results, Result{
				OriginalTitle: post.OriginalTitle,
				Status:        StatusError,
				Error:         err.Error(),
			})
			continue
		}

		log.Printf("posted %d/%d, message id %d", i+1, len(posts), messageID)
		results = append(results, Result{
			OriginalTitle: post.OriginalTitle,
			Status:        StatusSuccess,
			MessageID:     messageID,
		})

		// Пауза перед следующим постом, после последнего не ждем
		if i < len(posts)-1 {
			select {
			case <-ctx.Done():
				return results
			case <-time.After(p.delay):
			}
		}
	}

	return results
}

func (p *TelegramPublisher) publish(post model.Post) (int, error) {
	msg := tgbotapi.NewMessage(p.channelID, markup.EscapeForMarkdown(post.Format()))
	msg.ParseMode = tgbotapi.ModeMarkdownV2

	sent, err := p.bot.Send(msg)
	if err != nil {
		return 0, err
	}

	return sent.MessageID, nil
}
