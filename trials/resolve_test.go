package trials

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{name: "full date", input: "2022-05-03", want: time.Date(2022, 5, 3, 0, 0, 0, 0, time.UTC), ok: true},
		{name: "year and month", input: "2022-05", want: time.Date(2022, 5, 1, 0, 0, 0, 0, time.UTC), ok: true},
		{name: "year only", input: "2022", want: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), ok: true},
		{name: "garbage", input: "not-a-date", ok: false},
		{name: "empty", input: "", ok: false},
		{name: "trailing text", input: "2022-05-03T10:00", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
			} else {
				assert.True(t, got.IsZero())
			}
		})
	}
}

func TestResolveTitle(t *testing.T) {
	assert.Equal(t, "Official", ResolveTitle("Official", "Brief"))
	assert.Equal(t, "Brief", ResolveTitle("", "Brief"))
	assert.Equal(t, "", ResolveTitle("", ""))
	assert.Equal(t, "", ResolveTitle())
}

func TestResolveLocation(t *testing.T) {
	t.Run("first site wins", func(t *testing.T) {
		site := ResolveLocation([]any{
			map[string]any{"city": "Boston", "state": "Massachusetts", "country": "United States"},
			map[string]any{"city": "Paris", "country": "France"},
		})
		assert.Equal(t, Site{City: "Boston", State: "Massachusetts", Country: "United States"}, site)
	})

	t.Run("partial first site", func(t *testing.T) {
		site := ResolveLocation([]any{map[string]any{"country": "Japan"}})
		assert.Equal(t, Site{Country: "Japan"}, site)
	})

	t.Run("no sites", func(t *testing.T) {
		assert.Equal(t, Site{}, ResolveLocation(nil))
		assert.Equal(t, Site{}, ResolveLocation([]any{}))
	})

	t.Run("non-object entry", func(t *testing.T) {
		assert.Equal(t, Site{}, ResolveLocation([]any{"Boston"}))
	})
}

func datePtr(s string) *time.Time {
	t, ok := ParseDate(s)
	if !ok {
		return nil
	}
	return &t
}

func TestSortByLastUpdated(t *testing.T) {
	records := []TrialRecord{
		{ID: "A", LastUpdatedParsed: nil},
		{ID: "B", LastUpdatedParsed: datePtr("2021-01-01")},
		{ID: "C", LastUpdatedParsed: datePtr("2023-06")},
		{ID: "D", LastUpdatedParsed: nil},
		{ID: "E", LastUpdatedParsed: datePtr("2021-01-01")},
		{ID: "F", LastUpdatedParsed: datePtr("2024")},
	}

	SortByLastUpdated(records)

	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	require.Len(t, ids, 6)
	assert.Equal(t, []string{"F", "C", "B", "E", "A", "D"}, ids)
}

func TestStudyLinkIsDeterministic(t *testing.T) {
	assert.Equal(t, "https://clinicaltrials.gov/study/NCT01234567", StudyLink("NCT01234567"))
	assert.Equal(t, StudyLink("NCT01234567"), StudyLink("NCT01234567"))
}

func TestTrialRecordDisplay(t *testing.T) {
	r := TrialRecord{
		Interventions: []string{"Drug A", "Placebo"},
		Conditions:    []string{"Alzheimer Disease"},
		Phases:        []string{"PHASE2", "PHASE3"},
		Country:       "Canada",
	}
	assert.Equal(t, "Drug A, Placebo", r.InterventionText())
	assert.Equal(t, "Alzheimer Disease", r.ConditionText())
	assert.Equal(t, "PHASE2, PHASE3", r.PhaseText())
	assert.Equal(t, "Canada", r.Location())

	r.City, r.State = "Toronto", "Ontario"
	assert.Equal(t, "Toronto, Ontario, Canada", r.Location())

	assert.Equal(t, "", TrialRecord{}.Location())
}
