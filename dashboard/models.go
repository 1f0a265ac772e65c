package dashboard

import (
	"trial-explorer/news"
	"trial-explorer/trials"
)

// TrialsResponse represents the API response for a trial search
type TrialsResponse struct {
	Success bool                 `json:"success"`
	Data    []trials.TrialRecord `json:"data"`
	Count   int                  `json:"count"`
	Query   string               `json:"query"`
}

// NewsResponse represents the API response for related news
type NewsResponse struct {
	Success bool                  `json:"success"`
	Data    []news.ArticleSummary `json:"data"`
	Count   int                   `json:"count"`
	TrialID string                `json:"trial_id,omitempty"`
}

// SourcesResponse represents the API response for the configured upstreams
type SourcesResponse struct {
	Success bool     `json:"success"`
	Sources []Source `json:"sources"`
}

// Source represents an upstream data source
type Source struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	URL         string `json:"url"`
	Active      bool   `json:"active"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// TrialOption is one entry of the selectable trial list
type TrialOption struct {
	ID       string
	Label    string
	Href     string
	Selected bool
}

// DashboardView is everything the dashboard template renders for one request
type DashboardView struct {
	Query        string
	Count        int
	CountOptions []int
	Error        string
	Warning      string
	Options      []TrialOption
	Selected     *trials.TrialRecord
	Articles     []news.ArticleSummary
}
