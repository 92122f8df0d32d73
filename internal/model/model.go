package model

import (
	"fmt"
	"strings"
	"time"
)

// Сырая запись из RSS ленты, до нормализации
type Item struct {
	Title   string
	Summary string
	Link    string
	// Список рубрик, которые источник сам проставил записи
	Categories []string
	// Дата публикации и флаг того, что ее удалось распарсить
	Date      time.Time
	DateValid bool
	// Ссылка на первый enclosure, если он есть
	ImageURL string
}

// Каноническая статья. После нормализации она не меняется,
// все последующие стадии делают из нее новые объекты
type Article struct {
	// Имя источника из реестра
	Source string `json:"source"`
	// Рубрика, под которой запись была скачана
	Category string `json:"category"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
	// Дата публикации в источнике.
	// Если источник дату не отдал, сюда попадает время скачивания
	PublishedAt time.Time `json:"published_at"`
	ImageURL    string    `json:"image_url"`
}

// Черновик поста для соцсети, сгенерированный из статьи
type Post struct {
	OriginalTitle string   `json:"original_title"`
	OriginalURL   string   `json:"original_url"`
	Source        string   `json:"source"`
	Content       string   `json:"content"`
	Hashtags      []string `json:"hashtags"`
	Emoji         string   `json:"emoji"`
	Platform      string   `json:"platform"`
	// Готовый текст поста целиком, заполняется при генерации
	FullPost string `json:"full_post,omitempty"`
}

// Собираем итоговый текст поста: эмодзи с текстом, хэштеги, ссылка
func (p Post) Format() string {
	return fmt.Sprintf(
		"%s %s\n\n%s\n\n🔗 %s",
		p.Emoji,
		p.Content,
		strings.Join(p.Hashtags, " "),
		p.OriginalURL,
	)
}
