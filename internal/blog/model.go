package blog

import "time"

// Language is the reader's language preference. English is the primary
// language owned by the content API; Korean content comes from the
// translation store.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageKorean  Language = "ko"
)

// ParseLanguage mirrors the site's cookie parsing: anything that is not
// explicitly Korean is English.
func ParseLanguage(value string) Language {
	if value == string(LanguageKorean) {
		return LanguageKorean
	}
	return LanguageEnglish
}

type Category struct {
	ID   int
	Name string
}

// Post is an English article with its taxonomy resolved and category names
// already entity-decoded.
type Post struct {
	ID            int
	Slug          string
	Date          time.Time
	Title         string
	Excerpt       string
	Content       string
	FeaturedImage string
	Categories    []Category
}

// TranslatedPost is the Korean rendering of a post, linked to the English
// one by WordpressID. It carries no taxonomy of its own.
type TranslatedPost struct {
	WordpressID int
	Slug        string
	Date        time.Time
	Title       string
	Excerpt     string
	Content     string
}

// PageResult is one page of the listing plus the total-page count reported
// by the source.
type PageResult struct {
	Posts      []Post
	TotalPages int
}

// SearchResult holds a filtered page. TotalPages may overstate the match
// count when tag filtering trimmed the page after the fetch.
type SearchResult struct {
	Posts      []Post
	TotalPages int
}

// RelatedPost is the teaser shown under an article.
type RelatedPost struct {
	Slug          string
	Date          time.Time
	Title         string
	Excerpt       string
	FeaturedImage string
}

// ResolvedPost is a post ready to render in the requested language.
// Categories always come from the English post regardless of language,
// because translations carry no taxonomy.
type ResolvedPost struct {
	Language      Language
	Slug          string
	Date          time.Time
	Title         string
	Excerpt       string
	Content       string
	FeaturedImage string
	Categories    []Category
	ReadingTime   int
	Related       []RelatedPost
}
