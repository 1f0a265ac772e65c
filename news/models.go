package news

// ArticleSummary is one simplified news item
type ArticleSummary struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Published string `json:"published"`
	Summary   string `json:"summary"`
}
