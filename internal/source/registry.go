package source

// Одна лента: рубрика и ее урл
type Feed struct {
	Category string
	URL      string
}

// Источник новостей и его ленты.
// Ленты лежат в слайсе, а не в мапе, чтобы порядок обхода
// совпадал с порядком объявления
type Source struct {
	Name  string
	Feeds []Feed
}

// Реестр источников — это просто план обхода для сборщика.
// Никакого поведения кроме итерации у него нет
type Registry []Source

// Реестр по умолчанию: голландские новостные сайты
func DefaultRegistry() Registry {
	return Registry{
		{
			Name: "nos",
			Feeds: []Feed{
				{Category: "general", URL: "https://feeds.nos.nl/nosnieuwsalgemeen"},
				{Category: "binnenland", URL: "https://feeds.nos.nl/nosnieuwsbinnenland"},
				{Category: "buitenland", URL: "https://feeds.nos.nl/nosnieuwsbuitenland"},
				{Category: "sport", URL: "https://feeds.nos.nl/nossportalgemeen"},
			},
		},
		{
			Name: "nu",
			Feeds: []Feed{
				{Category: "general", URL: "https://www.nu.nl/rss/Algemeen"},
				{Category: "binnenland", URL: "https://www.nu.nl/rss/Binnenland"},
				{Category: "economie", URL: "https://www.nu.nl/rss/Economie"},
				{Category: "tech", URL: "https://www.nu.nl/rss/Tech"},
			},
		},
		{
			Name: "telegraaf",
			Feeds: []Feed{
				{Category: "algemeen", URL: "https://www.telegraaf.nl/rss"},
				{Category: "binnenland", URL: "https://www.telegraaf.nl/rss/binnenland"},
				{Category: "buitenland", URL: "https://www.telegraaf.nl/rss/buitenland"},
				{Category: "financieel", URL: "https://www.telegraaf.nl/rss/financieel"},
			},
		},
	}
}
