package dashboard

import (
	"embed"
	"html/template"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// NewRouter builds the gin engine serving the dashboard and the JSON API.
func NewRouter(ds *DashboardService) *gin.Engine {
	r := gin.Default()

	// Configure CORS
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	r.Use(cors.New(config))

	r.SetHTMLTemplate(parseTemplates())

	r.GET("/", ds.GetDashboard)

	api := r.Group("/api/v1")
	{
		api.GET("/trials", ds.GetTrials)
		api.GET("/trials/:id/news", ds.GetTrialNews)
		api.GET("/news", ds.GetNews)
		api.GET("/sources", ds.GetAvailableSources)
		api.GET("/health", ds.GetHealth)
	}

	return r
}

func parseTemplates() *template.Template {
	funcs := template.FuncMap{
		"orDash": orDash,
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}
