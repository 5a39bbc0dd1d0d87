package summarize

// Language is a supported front-end language code.
type Language string

const (
	Japanese Language = "jp"
	English  Language = "en"
	Korean   Language = "kr"
	Chinese  Language = "cn"
)

// DefaultLanguage is used when a request carries no valid language code.
const DefaultLanguage = Japanese

// ParseLanguage maps a query value to a supported language, defaulting to
// Japanese for anything unknown.
func ParseLanguage(s string) Language {
	switch Language(s) {
	case Japanese, English, Korean, Chinese:
		return Language(s)
	default:
		return DefaultLanguage
	}
}
