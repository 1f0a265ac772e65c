package trials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	// DefaultRegistryURL is the registry's v2 study search endpoint.
	DefaultRegistryURL = "https://clinicaltrials.gov/api/v2/studies"
	// DefaultSearchTerm is used by callers when the user typed nothing.
	DefaultSearchTerm = "phase"
	// DefaultPageSize applies when maxResults is not positive.
	DefaultPageSize = 100
	// DefaultTimeout bounds one registry round-trip.
	DefaultTimeout = 20 * time.Second
)

// ErrEmptySearch is returned when FetchTrials is called without a search expression.
var ErrEmptySearch = errors.New("search expression is empty")

// FetchError reports a failed registry call: transport error, timeout,
// non-success status or an undecodable body.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status code: %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Client queries the registry search endpoint
type Client struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewClient creates a registry client. An empty baseURL selects the public
// registry; a non-positive timeout selects DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultRegistryURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  slog.Default().With("component", "trials"),
	}
}

// FetchTrials runs one search against the registry and returns the flattened
// studies, newest update first. Zero matches is an empty slice, not an error.
func (c *Client) FetchTrials(ctx context.Context, searchExpr string, maxResults int) ([]TrialRecord, error) {
	if searchExpr == "" {
		return nil, ErrEmptySearch
	}
	if maxResults <= 0 {
		maxResults = DefaultPageSize
	}

	reqURL, err := c.searchURL(searchExpr, maxResults)
	if err != nil {
		return nil, &FetchError{URL: c.baseURL, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &FetchError{URL: reqURL, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("registry request failed", "url", reqURL, "error", err)
		return nil, &FetchError{URL: reqURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("registry returned non-success status", "url", reqURL, "status_code", resp.StatusCode)
		return nil, &FetchError{URL: reqURL, StatusCode: resp.StatusCode}
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &FetchError{URL: reqURL, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	records := FlattenStudies(payload)
	c.logger.Info("registry search completed",
		"query", searchExpr,
		"count", len(records),
		"duration_ms", time.Since(start).Milliseconds())

	return records, nil
}

func (c *Client) searchURL(searchExpr string, pageSize int) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid registry url: %w", err)
	}
	q := u.Query()
	q.Set("format", "json")
	q.Set("query.term", searchExpr)
	q.Set("pageSize", strconv.Itoa(pageSize))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// FlattenStudies converts a decoded search response into sorted records.
// A payload without a "studies" list produces an empty, non-nil slice.
func FlattenStudies(payload map[string]any) []TrialRecord {
	studies := listAt(payload, "studies")
	records := make([]TrialRecord, 0, len(studies))
	for _, study := range studies {
		records = append(records, FlattenStudy(study))
	}
	if len(records) > 0 {
		SortByLastUpdated(records)
	}
	return records
}

// FlattenStudy projects one nested study onto a TrialRecord. Missing
// sections resolve to empty values.
func FlattenStudy(study any) TrialRecord {
	protocol := objectAt(study, "protocolSection")

	ident := objectAt(protocol, "identificationModule")
	status := objectAt(protocol, "statusModule")
	sponsor := objectAt(protocol, "sponsorCollaboratorsModule")
	conditions := objectAt(protocol, "conditionsModule")
	design := objectAt(protocol, "designModule")
	arms := objectAt(protocol, "armsInterventionsModule")
	locs := objectAt(protocol, "contactsLocationsModule")

	id := stringAt(ident, "nctId")
	lastUpdated := stringAt(status, "lastUpdatePostDateStruct", "date")
	site := ResolveLocation(listAt(locs, "locations"))

	record := TrialRecord{
		ID:            id,
		Title:         ResolveTitle(stringAt(ident, "officialTitle"), stringAt(ident, "briefTitle")),
		Interventions: namesAt(arms, "interventions"),
		Conditions:    stringsAt(conditions, "conditions"),
		Phases:        stringsAt(design, "phases"),
		Status:        stringAt(status, "overallStatus"),
		Sponsor:       stringAt(sponsor, "leadSponsor", "name"),
		StartDate:     stringAt(status, "startDateStruct", "date"),
		FirstPosted:   stringAt(status, "studyFirstPostDateStruct", "date"),
		LastUpdated:   lastUpdated,
		City:          site.City,
		State:         site.State,
		Country:       site.Country,
		Link:          StudyLink(id),
	}
	if t, ok := ParseDate(lastUpdated); ok {
		record.LastUpdatedParsed = &t
	}
	return record
}
