package trials

import (
	"sort"
	"time"
)

// dateLayouts lists the registry's partial date forms, most precise first.
var dateLayouts = []string{"2006-01-02", "2006-01", "2006"}

// ParseDate parses a registry partial date (full date, year-month or year).
// The first layout that matches wins; ok is false when none does.
func ParseDate(s string) (t time.Time, ok bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// ResolveTitle returns the first non-empty candidate, in priority order.
func ResolveTitle(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

// ResolveLocation picks the first listed site. Further sites are ignored.
func ResolveLocation(locations []any) Site {
	if len(locations) == 0 {
		return Site{}
	}
	first := locations[0]
	return Site{
		City:    stringAt(first, "city"),
		State:   stringAt(first, "state"),
		Country: stringAt(first, "country"),
	}
}

// SortByLastUpdated orders records newest update first. Records without a
// parsed date go last; ties keep their original order.
func SortByLastUpdated(records []TrialRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i].LastUpdatedParsed, records[j].LastUpdatedParsed
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
}
