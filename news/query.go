package news

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

const (
	// AnchorTerm is appended to every news search.
	AnchorTerm = "clinical trial"
	// MaxSummaryLength caps the plain-text excerpt, in characters.
	MaxSummaryLength = 260
)

// localeParams pins language and region so the feed resolves the same way
// from hosted environments.
const localeParams = "&hl=en-US&gl=US&ceid=US:en"

var tagPattern = regexp.MustCompile(`<.*?>`)

// SearchTerms builds the ordered term list: drug, condition, then the anchor.
// Blank terms are dropped.
func SearchTerms(drugTerm, conditionTerm string) []string {
	candidates := []string{
		strings.TrimSpace(drugTerm),
		strings.TrimSpace(conditionTerm),
		AnchorTerm,
	}

	terms := make([]string, 0, len(candidates))
	for _, t := range candidates {
		if t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

// SearchURL joins the terms into one phrase, query-escapes it and attaches
// the locale parameters.
func SearchURL(baseURL string, terms []string) string {
	query := url.QueryEscape(strings.Join(terms, " "))
	return fmt.Sprintf("%s?q=%s%s", baseURL, query, localeParams)
}

// CleanSummary strips markup from a feed summary and truncates it to
// MaxSummaryLength characters. Tag removal is pattern based, not a parser.
func CleanSummary(s string) string {
	if s == "" {
		return ""
	}
	clean := tagPattern.ReplaceAllString(s, "")
	// unmatched brackets left behind by broken markup
	clean = strings.NewReplacer("<", "", ">", "").Replace(clean)
	clean = strings.TrimSpace(clean)

	runes := []rune(clean)
	if len(runes) > MaxSummaryLength {
		return string(runes[:MaxSummaryLength])
	}
	return clean
}
