package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"trial-explorer/dashboard"
	"trial-explorer/news"
	"trial-explorer/trials"
)

var (
	primaryColor = lipgloss.Color("#0969DA")
	accentColor  = lipgloss.Color("#2DA44E")
	warningColor = lipgloss.Color("#D29922")
	errorColor   = lipgloss.Color("#CF222E")
	dimColor     = lipgloss.Color("#6E7681")
	linkColor    = lipgloss.Color("#58A6FF")
	dateColor    = lipgloss.Color("#A371F7")

	HeaderStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accentColor)

	TitleStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	LinkStyle = lipgloss.NewStyle().
			Foreground(linkColor).
			Underline(true)

	DateStyle = lipgloss.NewStyle().
			Foreground(dateColor).
			Italic(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)
)

func printTrials(out io.Writer, expr string, records []trials.TrialRecord) {
	fmt.Fprintln(out, HeaderStyle.Render(fmt.Sprintf("Trials for %q", expr)))

	if len(records) == 0 {
		fmt.Fprintln(out, WarningStyle.Render("No trials found. Try a different search."))
		return
	}

	for _, r := range records {
		fmt.Fprintln(out)
		fmt.Fprintln(out, TitleStyle.Render(dashboard.TrialLabel(r)))
		printField(out, "Drug / Intervention", r.InterventionText())
		printField(out, "Condition(s)", r.ConditionText())
		printField(out, "Phase", r.PhaseText())
		printField(out, "Status", r.Status)
		printField(out, "Sponsor", r.Sponsor)
		fmt.Fprintf(out, "%s %s\n", LabelStyle.Render("Last Updated:"), DateStyle.Render(orDash(r.LastUpdated)))
		if loc := r.Location(); loc != "" {
			printField(out, "Location", loc)
		}
		fmt.Fprintln(out, LinkStyle.Render(r.Link))
	}
}

func printArticles(out io.Writer, articles []news.ArticleSummary) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, HeaderStyle.Render("Related Articles"))

	if len(articles) == 0 {
		fmt.Fprintln(out, LabelStyle.Render("No recent news found."))
		return
	}

	for _, a := range articles {
		fmt.Fprintln(out)
		fmt.Fprintln(out, TitleStyle.Render(a.Title))
		fmt.Fprintln(out, LinkStyle.Render(a.Link))
		if a.Published != "" {
			fmt.Fprintln(out, DateStyle.Render(a.Published))
		}
		if a.Summary != "" {
			fmt.Fprintln(out, a.Summary+"...")
		}
	}
}

func printField(out io.Writer, label, value string) {
	fmt.Fprintf(out, "%s %s\n", LabelStyle.Render(label+":"), orDash(value))
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
