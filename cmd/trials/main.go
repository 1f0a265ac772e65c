package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"trial-explorer/config"
	"trial-explorer/dashboard"
	"trial-explorer/logger"
	"trial-explorer/news"
	"trial-explorer/trials"
)

// Response represents the JSON output structure
type Response struct {
	Success bool                  `json:"success"`
	Data    []trials.TrialRecord  `json:"data"`
	Count   int                   `json:"count"`
	Query   string                `json:"query"`
	News    []news.ArticleSummary `json:"news,omitempty"`
}

type options struct {
	count    int
	withNews bool
	asJSON   bool
}

func main() {
	cfg := config.Load()
	// keep stdout clean for --json
	logger.InitWithWriter(os.Stderr, cfg.LogLevel)

	cmd := newRootCommand(
		trials.NewClient(cfg.RegistryURL, cfg.RegistryTimeout),
		news.NewClient(cfg.NewsURL, cfg.NewsUserAgent, cfg.NewsTimeout),
		cfg.RegistryPageSize,
	)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func newRootCommand(tf dashboard.TrialFetcher, af dashboard.ArticleFetcher, pageSize int) *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:   "trials [search terms...]",
		Short: "Search clinical trials from the terminal",
		Long: `trials searches the clinical-trials registry and lists matching studies,
newest update first. With --news it also looks up related articles for the
most recently updated study.

Example usage:
  trials Alzheimer
  trials -n 10 CAR-T --news
  trials "breast cancer" --json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), tf, af, pageSize, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", dashboard.DefaultCount, "number of trials to show (10-100)")
	cmd.Flags().BoolVar(&opts.withNews, "news", false, "fetch related news for the first trial")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print JSON instead of formatted text")

	return cmd
}

func run(ctx context.Context, out io.Writer, tf dashboard.TrialFetcher, af dashboard.ArticleFetcher, pageSize int, query string, opts options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	expr := dashboard.SearchExpr(query)
	count := dashboard.ParseCount(strconv.Itoa(opts.count))

	records, err := tf.FetchTrials(ctx, expr, pageSize)
	if err != nil {
		return fmt.Errorf("unable to load trial data: %w", err)
	}
	if len(records) > count {
		records = records[:count]
	}

	var articles []news.ArticleSummary
	if opts.withNews && len(records) > 0 {
		articles = af.FetchArticles(ctx, records[0].InterventionText(), records[0].ConditionText())
	}

	if opts.asJSON {
		response := Response{
			Success: true,
			Data:    records,
			Count:   len(records),
			Query:   expr,
			News:    articles,
		}
		jsonData, err := json.MarshalIndent(response, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling JSON: %w", err)
		}
		fmt.Fprintln(out, string(jsonData))
		return nil
	}

	printTrials(out, expr, records)
	if opts.withNews && len(records) > 0 {
		printArticles(out, articles)
	}
	return nil
}
