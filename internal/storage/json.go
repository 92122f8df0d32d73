package storage

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/kovalyov-valentin/news-ai-agent/internal/model"
)

// Пишет снапшоты прогона на диск в виде json файлов.
// Это диагностический артефакт: никто его потом обратно не читает,
// поэтому атомарной записи здесь нет
type SnapshotStorage struct {
	dir string
}

func NewSnapshotStorage(dir string) (*SnapshotStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	return &SnapshotStorage{dir: dir}, nil
}

func (s *SnapshotStorage) SaveArticles(articles []model.Article, filename string) error {
	if err := s.writeJSON(articles, filename); err != nil {
		return err
	}

	log.Printf("saved %d articles to %s", len(articles), filepath.Join(s.dir, filename))

	return nil
}

func (s *SnapshotStorage) SavePosts(posts []model.Post, filename string) error {
	if err := s.writeJSON(posts, filename); err != nil {
		return err
	}

	log.Printf("saved %d posts to %s", len(posts), filepath.Join(s.dir, filename))

	return nil
}

func (s *SnapshotStorage) SaveResults(results any, filename string) error {
	return s.writeJSON(results, filename)
}

// Человекочитаемый json: с отступами, юникод как есть,
// html символы не эскейпим. Существующий файл перезаписываем
func (s *SnapshotStorage) writeJSON(v any, filename string) error {
	f, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return enc.Encode(v)
}
