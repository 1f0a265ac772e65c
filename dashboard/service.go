package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"trial-explorer/config"
	"trial-explorer/news"
	"trial-explorer/trials"
)

// TrialFetcher runs a registry search
type TrialFetcher interface {
	FetchTrials(ctx context.Context, searchExpr string, maxResults int) ([]trials.TrialRecord, error)
}

// ArticleFetcher looks up news for a drug and condition; it never fails
type ArticleFetcher interface {
	FetchArticles(ctx context.Context, drugTerm, conditionTerm string) []news.ArticleSummary
}

// DashboardService handles trial search and news requests
type DashboardService struct {
	trials   TrialFetcher
	news     ArticleFetcher
	pageSize int
	sources  []Source
	logger   *slog.Logger
}

// NewDashboardService creates a dashboard service backed by the public
// registry and news feed configured in cfg.
func NewDashboardService(cfg config.AppConfig) *DashboardService {
	svc := NewDashboardServiceWith(
		trials.NewClient(cfg.RegistryURL, cfg.RegistryTimeout),
		news.NewClient(cfg.NewsURL, cfg.NewsUserAgent, cfg.NewsTimeout),
		cfg.RegistryPageSize,
	)
	svc.sources = []Source{
		{
			Name:        "registry",
			DisplayName: "ClinicalTrials.gov",
			URL:         cfg.RegistryURL,
			Active:      true,
		},
		{
			Name:        "news",
			DisplayName: "Google News",
			URL:         cfg.NewsURL,
			Active:      true,
		},
	}
	return svc
}

// NewDashboardServiceWith wires arbitrary fetchers. pageSize is the number of
// studies requested from the registry per search.
func NewDashboardServiceWith(trialFetcher TrialFetcher, articleFetcher ArticleFetcher, pageSize int) *DashboardService {
	if pageSize <= 0 {
		pageSize = trials.DefaultPageSize
	}
	return &DashboardService{
		trials:   trialFetcher,
		news:     articleFetcher,
		pageSize: pageSize,
		sources:  []Source{},
		logger:   slog.Default().With("component", "dashboard"),
	}
}

// search runs one registry search and truncates the result to count rows.
func (ds *DashboardService) search(ctx context.Context, expr string, count int) ([]trials.TrialRecord, error) {
	records, err := ds.trials.FetchTrials(ctx, expr, ds.pageSize)
	if err != nil {
		return nil, err
	}
	if len(records) > count {
		records = records[:count]
	}
	return records, nil
}

// GetDashboard renders the HTML dashboard
func (ds *DashboardService) GetDashboard(c *gin.Context) {
	query := c.Query("q")
	count := ParseCount(c.DefaultQuery("n", ""))

	view := DashboardView{
		Query:        query,
		Count:        count,
		CountOptions: CountOptions(),
	}

	records, err := ds.search(c.Request.Context(), SearchExpr(query), count)
	if err != nil {
		ds.logger.Error("trial search failed", "query", query, "error", err)
		view.Error = msgFetchFailed
		c.HTML(http.StatusBadGateway, "dashboard.html", view)
		return
	}
	if len(records) == 0 {
		view.Warning = msgNoResults
		c.HTML(http.StatusOK, "dashboard.html", view)
		return
	}

	selected := SelectRecord(records, c.Query("id"))
	record := records[selected]

	view.Options = buildOptions(records, query, count, selected)
	view.Selected = &record
	view.Articles = ds.news.FetchArticles(c.Request.Context(), record.InterventionText(), record.ConditionText())

	c.HTML(http.StatusOK, "dashboard.html", view)
}

// GetTrials returns the search results as JSON
func (ds *DashboardService) GetTrials(c *gin.Context) {
	expr := SearchExpr(c.Query("q"))
	count := ParseCount(c.DefaultQuery("n", ""))

	records, err := ds.search(c.Request.Context(), expr, count)
	if err != nil {
		ds.logger.Error("trial search failed", "query", expr, "error", err)
		c.JSON(http.StatusBadGateway, fetchErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, TrialsResponse{
		Success: true,
		Data:    records,
		Count:   len(records),
		Query:   expr,
	})
}

// GetTrialNews returns news for one study of a search result set
func (ds *DashboardService) GetTrialNews(c *gin.Context) {
	id := c.Param("id")
	expr := SearchExpr(c.DefaultQuery("q", id))

	records, err := ds.trials.FetchTrials(c.Request.Context(), expr, ds.pageSize)
	if err != nil {
		ds.logger.Error("trial search failed", "query", expr, "error", err)
		c.JSON(http.StatusBadGateway, fetchErrorResponse(err))
		return
	}

	for _, r := range records {
		if r.ID != id {
			continue
		}
		articles := ds.news.FetchArticles(c.Request.Context(), r.InterventionText(), r.ConditionText())
		c.JSON(http.StatusOK, NewsResponse{
			Success: true,
			Data:    articles,
			Count:   len(articles),
			TrialID: id,
		})
		return
	}

	c.JSON(http.StatusNotFound, ErrorResponse{
		Success: false,
		Error:   "trial_not_found",
		Message: "Trial not found in search results",
	})
}

// GetNews returns news for free drug and condition terms
func (ds *DashboardService) GetNews(c *gin.Context) {
	articles := ds.news.FetchArticles(c.Request.Context(), c.Query("drug"), c.Query("condition"))

	c.JSON(http.StatusOK, NewsResponse{
		Success: true,
		Data:    articles,
		Count:   len(articles),
	})
}

// GetAvailableSources returns the configured upstreams
func (ds *DashboardService) GetAvailableSources(c *gin.Context) {
	c.JSON(http.StatusOK, SourcesResponse{
		Success: true,
		Sources: ds.sources,
	})
}

// GetHealth reports liveness
func (ds *DashboardService) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now()})
}

func fetchErrorResponse(err error) ErrorResponse {
	code := "fetch_error"
	if errors.Is(err, trials.ErrEmptySearch) {
		code = "empty_search"
	}
	return ErrorResponse{
		Success: false,
		Error:   code,
		Message: msgFetchFailed,
	}
}
