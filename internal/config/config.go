package config

import (
	"log"
	"sync"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfighcl"
)

// Конфиг храним в файле в формате hcl.
// Также указываем ключ для переменных окружения
type Config struct {
	TelegramBotToken  string        `hcl:"telegram_bot_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChannelID int64         `hcl:"telegram_channel_id" env:"TELEGRAM_CHANNEL_ID"`
	OpenAIKey         string        `hcl:"openai_key" env:"OPENAI_KEY"`
	OpenAIModel       string        `hcl:"openai_model" env:"OPENAI_MODEL" default:"gpt-3.5-turbo"`
	// Директория для json снапшотов каждого прогона
	OutputDir string `hcl:"output_dir" env:"OUTPUT_DIR" default:"output"`
	// Сколько статей максимум забираем с одной пары источник/рубрика
	ArticlesPerSource int `hcl:"articles_per_source" env:"ARTICLES_PER_SOURCE" default:"2"`
	// Сколько постов максимум генерим за один прогон
	MaxPosts int `hcl:"max_posts" env:"MAX_POSTS" default:"5"`
	// По умолчанию ничего не постим, только логируем
	DryRun bool `hcl:"dry_run" env:"DRY_RUN" default:"true"`
	// Пауза между отправками постов в канал
	PublishDelay time.Duration `hcl:"publish_delay" env:"PUBLISH_DELAY" default:"1m"`
	// Интервал между прогонами пайплайна. 0 — один прогон и выход
	RunInterval    time.Duration `hcl:"run_interval" env:"RUN_INTERVAL"`
	FilterKeywords []string      `hcl:"filter_keywords" env:"FILTER_KEYWORDS"`
}

// cfg - инстанс конфига, в который мы будем читать данные.
// И once, которая гарантирует что чтение выполнится не более одного раза,
// откуда бы Get не дергали
var (
	cfg  Config
	once sync.Once
)

func Get() Config {
	once.Do(func() {
		loader := aconfig.LoaderFor(&cfg, aconfig.Config{
			// Префикс для переменных окружения, чтобы они случайно
			// не пересеклись с системными
			EnvPrefix: "NAA",
			Files:     []string{"./config.hcl", "./config.local.hcl"},
			FileDecoders: map[string]aconfig.FileDecoder{
				".hcl": aconfighcl.New(),
			},
		})

		if err := loader.Load(); err != nil {
			log.Printf("[ERROR] failed to load config: %v", err)
		}
	})

	return cfg
}
