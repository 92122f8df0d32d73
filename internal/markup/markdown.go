package markup

import "strings"

// Телеграм в режиме MarkdownV2 требует эскейпить все свои спец символы,
// иначе отправка падает с ошибкой парсинга
var replacer = strings.NewReplacer(
	"-", "\\-",
	"_", "\\_",
	"*", "\\*",
	"[", "\\[",
	"]", "\\]",
	"(", "\\(",
	")", "\\)",
	"~", "\\~",
	"`", "\\`",
	">", "\\>",
	"#", "\\#",
	"+", "\\+",
	"=", "\\=",
	"|", "\\|",
	"{", "\\{",
	"}", "\\}",
	".", "\\.",
	"!", "\\!",
)

func EscapeForMarkdown(src string) string {
	return replacer.Replace(src)
}
