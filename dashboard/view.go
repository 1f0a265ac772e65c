package dashboard

import (
	"net/url"
	"strconv"
	"strings"

	"trial-explorer/trials"
)

const (
	MinCount     = 10
	MaxCount     = 100
	CountStep    = 5
	DefaultCount = 25

	// labelTitleLength is how much of a title the trial list shows.
	labelTitleLength = 65
)

const (
	msgFetchFailed = "Unable to load trial data."
	msgNoResults   = "No trials found. Try a different search."
)

// SearchExpr returns the trimmed user query, or the default term when blank.
func SearchExpr(query string) string {
	if q := strings.TrimSpace(query); q != "" {
		return q
	}
	return trials.DefaultSearchTerm
}

// ParseCount reads the result-count selection, clamped to the allowed range
// and snapped down to the step.
func ParseCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return DefaultCount
	}
	if n < MinCount {
		n = MinCount
	}
	if n > MaxCount {
		n = MaxCount
	}
	return n - n%CountStep
}

// CountOptions lists every selectable result count.
func CountOptions() []int {
	opts := make([]int, 0, (MaxCount-MinCount)/CountStep+1)
	for n := MinCount; n <= MaxCount; n += CountStep {
		opts = append(opts, n)
	}
	return opts
}

// TrialLabel renders "id — title", eliding titles longer than the list width.
func TrialLabel(r trials.TrialRecord) string {
	title := []rune(r.Title)
	suffix := ""
	if len(title) > labelTitleLength {
		title = title[:labelTitleLength]
		suffix = "…"
	}
	return r.ID + " — " + string(title) + suffix
}

// SelectRecord returns the record with the given id, or the first record
// when id is empty or unknown. records must not be empty.
func SelectRecord(records []trials.TrialRecord, id string) int {
	for i, r := range records {
		if id != "" && r.ID == id {
			return i
		}
	}
	return 0
}

// buildOptions renders the selectable list, linking each entry back to the
// dashboard with the same search.
func buildOptions(records []trials.TrialRecord, query string, count, selected int) []TrialOption {
	opts := make([]TrialOption, 0, len(records))
	for i, r := range records {
		params := url.Values{}
		if query != "" {
			params.Set("q", query)
		}
		params.Set("n", strconv.Itoa(count))
		params.Set("id", r.ID)

		opts = append(opts, TrialOption{
			ID:       r.ID,
			Label:    TrialLabel(r),
			Href:     "/?" + params.Encode(),
			Selected: i == selected,
		})
	}
	return opts
}

// orDash substitutes an em dash for empty display values.
func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
