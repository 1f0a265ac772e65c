package trials

import (
	"strings"
	"time"
)

// StudyURLBase is the canonical study page prefix on the registry website.
const StudyURLBase = "https://clinicaltrials.gov/study/"

// TrialRecord is the flattened projection of one registry study
type TrialRecord struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Interventions     []string   `json:"interventions"`
	Conditions        []string   `json:"conditions"`
	Phases            []string   `json:"phases"`
	Status            string     `json:"status"`
	Sponsor           string     `json:"sponsor"`
	StartDate         string     `json:"start_date"`
	FirstPosted       string     `json:"first_posted"`
	LastUpdated       string     `json:"last_updated"`
	LastUpdatedParsed *time.Time `json:"last_updated_parsed,omitempty"`
	City              string     `json:"city"`
	State             string     `json:"state"`
	Country           string     `json:"country"`
	Link              string     `json:"link"`
}

// InterventionText joins the interventions for display
func (r TrialRecord) InterventionText() string {
	return strings.Join(r.Interventions, ", ")
}

// ConditionText joins the conditions for display
func (r TrialRecord) ConditionText() string {
	return strings.Join(r.Conditions, ", ")
}

// PhaseText joins the phases for display
func (r TrialRecord) PhaseText() string {
	return strings.Join(r.Phases, ", ")
}

// Location renders "city, state, country", skipping empty parts.
func (r TrialRecord) Location() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{r.City, r.State, r.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Site is the first listed location of a study
type Site struct {
	City    string
	State   string
	Country string
}

// StudyLink builds the study page URL for a registry identifier.
func StudyLink(id string) string {
	return StudyURLBase + id
}
