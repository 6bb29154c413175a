package wikitoc

import (
	"fmt"
	"net/url"
	"strings"
)

// Category classifies why a URL was rejected, or which failure class a
// pipeline error belongs to. Policy categories map to HTTP 403 at the
// transport boundary; the remaining categories map per kind.
type Category string

// Policy rejection categories.
const (
	CategorySystemNamespace   Category = "SystemNamespace"
	CategoryTalkNamespace     Category = "TalkNamespace"
	CategorySpecialPage       Category = "SpecialPage"
	CategoryUserNamespace     Category = "UserNamespace"
	CategoryShortcutNamespace Category = "ShortcutNamespace"
	CategoryNonArticlePath    Category = "NonArticlePath"
)

// Pipeline failure categories.
const (
	CategoryTimeout           Category = "Timeout"
	CategoryConnectionFailed  Category = "ConnectionFailed"
	CategoryHTTPError         Category = "HttpError"
	CategoryExtractionFailure Category = "ExtractionFailure"
	CategoryInputFailure      Category = "InputFailure"
	CategoryInternal          Category = "Internal"
)

// Verdict is the outcome of validating a candidate URL. A rejected verdict
// carries the matching category and a human-readable reason.
type Verdict struct {
	Allowed  bool
	Category Category
	Reason   string
}

// Rule is one forbidden-pattern entry of the crawling policy. Raw is the
// canonical decoded form and Encoded its percent-encoded UTF-8 equivalent;
// Wikipedia accepts either spelling in a URL, so enforcement checks both.
type Rule struct {
	Category Category
	Raw      string
	Encoded  string
}

// Policy is an ordered set of forbidden-pattern rules, matched by linear
// scan with first match winning. New languages and namespaces are added as
// rows, not code.
type Policy []Rule

// DefaultPolicy returns the crawling policy for wikipedia.org, covering
// English namespace prefixes, their Japanese equivalents, and the compound
// Japanese project pages that live under those namespaces.
func DefaultPolicy() Policy {
	return Policy{
		{CategorySpecialPage, "Special:", "Special%3A"},
		{CategorySpecialPage, "特別:", "%E7%89%B9%E5%88%A5%3A"},
		{CategoryTalkNamespace, "User_talk:", "User_talk%3A"},
		{CategoryTalkNamespace, "利用者‐会話:", "%E5%88%A9%E7%94%A8%E8%80%85%E2%80%90%E4%BC%9A%E8%A9%B1%3A"},
		{CategoryUserNamespace, "User:", "User%3A"},
		{CategoryUserNamespace, "利用者:", "%E5%88%A9%E7%94%A8%E8%80%85%3A"},
		{CategoryTalkNamespace, "Talk:", "Talk%3A"},
		{CategoryTalkNamespace, "ノート:", "%E3%83%8E%E3%83%BC%E3%83%88%3A"},
		{CategorySystemNamespace, "Wikipedia:", "Wikipedia%3A"},
		{CategorySystemNamespace, "Template:", "Template%3A"},
		{CategorySystemNamespace, "Module:", "Module%3A"},
		{CategorySystemNamespace, "MediaWiki:", "MediaWiki%3A"},
		{CategorySystemNamespace, "Project:", "Project%3A"},
		{CategorySystemNamespace, "Help:", "Help%3A"},
		{CategorySystemNamespace, "Portal:", "Portal%3A"},
		{CategorySystemNamespace, "Draft:", "Draft%3A"},
		{CategorySystemNamespace, "Book:", "Book%3A"},
		{CategorySystemNamespace, "Media:", "Media%3A"},
		{CategorySystemNamespace, "File:", "File%3A"},
		{CategorySystemNamespace, "ファイル:", "%E3%83%95%E3%82%A1%E3%82%A4%E3%83%AB%3A"},
		{CategorySystemNamespace, "Category:", "Category%3A"},
		{CategorySystemNamespace, "カテゴリ:", "%E3%82%AB%E3%83%86%E3%82%B4%E3%83%AA%3A"},
		{CategoryShortcutNamespace, "WP:", "WP%3A"},
		{CategoryShortcutNamespace, "LTA:", "LTA%3A"},
		{CategorySystemNamespace, "削除の復帰依頼", "%E5%89%8A%E9%99%A4%E3%81%AE%E5%BE%A9%E5%B8%B0%E4%BE%9D%E9%A0%BC"},
		{CategorySystemNamespace, "削除依頼", "%E5%89%8A%E9%99%A4%E4%BE%9D%E9%A0%BC"},
		{CategorySystemNamespace, "投稿ブロック依頼", "%E6%8A%95%E7%A8%BF%E3%83%96%E3%83%AD%E3%83%83%E3%82%AF%E4%BE%9D%E9%A0%BC"},
		{CategorySystemNamespace, "管理者伝言板", "%E7%AE%A1%E7%90%86%E8%80%85%E4%BC%9D%E8%A8%80%E6%9D%BF"},
	}
}

// Validate classifies a candidate URL under the policy. It is a pure
// function of the URL string: no clock, no network. It must run before the
// rate gate so forbidden URLs never consume the shared rate budget.
func (p Policy) Validate(rawURL string) Verdict {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return rejected(CategoryNonArticlePath, "URL is required")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return rejected(CategoryNonArticlePath, "invalid URL format")
	}

	if u.Scheme != "https" {
		return rejected(CategoryNonArticlePath, "URL must use HTTPS")
	}

	host := u.Hostname()
	if !strings.HasSuffix(host, ".wikipedia.org") {
		return rejected(CategoryNonArticlePath, "URL must be from Wikipedia (*.wikipedia.org)")
	}
	if strings.HasPrefix(host, "m.") || strings.HasPrefix(host, "commons.") {
		return rejected(CategoryNonArticlePath, "mobile and Commons Wikipedia URLs are not supported")
	}

	// Paths wikipedia.org's robots.txt disallows outright.
	for _, prefix := range []string{"/w/", "/api/", "/trap/"} {
		if strings.HasPrefix(u.Path, prefix) {
			return rejected(CategoryNonArticlePath, fmt.Sprintf("access to %s paths is prohibited by robots.txt", prefix))
		}
	}

	if !strings.HasPrefix(u.Path, "/wiki/") {
		return rejected(CategoryNonArticlePath, "URL must be a Wikipedia article (/wiki/article_name)")
	}

	// Article name in both spellings: decoded (u.Path) and as it appeared
	// on the wire (EscapedPath). Matching both defeats encoding-based
	// bypass, including double encoding.
	article := strings.TrimPrefix(u.Path, "/wiki/")
	rawArticle := strings.TrimPrefix(u.EscapedPath(), "/wiki/")
	if article == "" {
		return rejected(CategoryNonArticlePath, "article name is required")
	}

	for _, r := range p {
		if strings.Contains(article, r.Raw) || strings.Contains(rawArticle, r.Raw) ||
			strings.Contains(article, r.Encoded) || strings.Contains(rawArticle, r.Encoded) {
			return rejected(r.Category, fmt.Sprintf("access to %s pages is prohibited by Wikipedia's robots.txt", strings.TrimSuffix(r.Raw, ":")))
		}
	}

	return Verdict{Allowed: true}
}

func rejected(category Category, reason string) Verdict {
	return Verdict{Category: category, Reason: reason}
}
