package dashboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"trial-explorer/trials"
)

func TestSearchExpr(t *testing.T) {
	assert.Equal(t, "Alzheimer", SearchExpr("  Alzheimer "))
	assert.Equal(t, trials.DefaultSearchTerm, SearchExpr(""))
	assert.Equal(t, trials.DefaultSearchTerm, SearchExpr("   "))
}

func TestParseCount(t *testing.T) {
	tests := map[string]int{
		"":    DefaultCount,
		"abc": DefaultCount,
		"25":  25,
		"5":   MinCount,
		"500": MaxCount,
		"37":  35,
		"100": 100,
	}
	for raw, want := range tests {
		assert.Equal(t, want, ParseCount(raw), "ParseCount(%q)", raw)
	}
}

func TestCountOptions(t *testing.T) {
	opts := CountOptions()
	assert.Equal(t, MinCount, opts[0])
	assert.Equal(t, MaxCount, opts[len(opts)-1])
	assert.Len(t, opts, 19)
}

func TestTrialLabel(t *testing.T) {
	short := trials.TrialRecord{ID: "NCT1", Title: "Short title"}
	assert.Equal(t, "NCT1 — Short title", TrialLabel(short))

	exact := trials.TrialRecord{ID: "NCT2", Title: strings.Repeat("a", 65)}
	assert.Equal(t, "NCT2 — "+strings.Repeat("a", 65), TrialLabel(exact))

	long := trials.TrialRecord{ID: "NCT3", Title: strings.Repeat("ü", 80)}
	assert.Equal(t, "NCT3 — "+strings.Repeat("ü", 65)+"…", TrialLabel(long))

	assert.Equal(t, "NCT4 — ", TrialLabel(trials.TrialRecord{ID: "NCT4"}))
}

func TestSelectRecord(t *testing.T) {
	records := []trials.TrialRecord{{ID: "A"}, {ID: "B"}, {ID: "C"}}
	assert.Equal(t, 1, SelectRecord(records, "B"))
	assert.Equal(t, 0, SelectRecord(records, ""))
	assert.Equal(t, 0, SelectRecord(records, "missing"))
}

func TestOrDash(t *testing.T) {
	assert.Equal(t, "—", orDash(""))
	assert.Equal(t, "RECRUITING", orDash("RECRUITING"))
}
