package newsgrab

import "time"

// Limits applied to every pipeline invocation.
const (
	// MaxCandidates caps the number of links taken from a listing page.
	MaxCandidates = 5

	// MaxContentLength caps extracted content, counted in characters (runes).
	MaxContentLength = 1000

	// MinFallbackTextLength is the anchor text length an anchor must exceed
	// to be picked up when no link pattern matched.
	MinFallbackTextLength = 10
)

// Literal strings substituted when the pipeline cannot produce real content.
const (
	SentinelTitle     = "エラー"
	SentinelContent   = "ニュースの取得中にエラーが発生しました"
	FetchErrorContent = "コンテンツの取得中にエラーが発生しました"
	EmptyContent      = "コンテンツを取得できませんでした"
	PendingContent    = "コンテンツを取得中..."
	NotFoundMessage   = "ニュースが見つかりませんでした"
)

// DateLayout formats capture dates the way the ja-JP locale prints dates.
const DateLayout = "2006/1/2"

// CandidateLink is a discovered (title, URL) pair before content extraction.
type CandidateLink struct {
	Title string `json:"title"`
	Href  string `json:"href"`
	URL   string `json:"url"`
}

// NewsItem is one enriched article record handed to the presentation layer.
// Items are built once per invocation and never modified afterwards.
type NewsItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Content string `json:"content"`
	Date    string `json:"date"`
}

// IsSentinel reports whether the item stands for a failed listing fetch.
func (i NewsItem) IsSentinel() bool {
	return i.Title == SentinelTitle && i.Link == ""
}

// SentinelItem returns the single item emitted when the listing page itself
// cannot be fetched.
func SentinelItem(now time.Time) NewsItem {
	return NewsItem{
		Title:   SentinelTitle,
		Link:    "",
		Content: SentinelContent,
		Date:    FormatDate(now),
	}
}

// FormatDate formats a capture time using DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Page is what renderers receive: the items of one pipeline invocation plus
// the context needed to present them.
type Page struct {
	Title     string     `json:"title"`
	SourceURL string     `json:"sourceUrl"`
	Items     []NewsItem `json:"items"`
}

// Empty reports whether the page should show the not-found state.
func (p *Page) Empty() bool {
	return len(p.Items) == 0
}
