package httpapi

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

func loadTemplates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

func staticFiles() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// pageRenderer fills in the values every page layout needs.
type pageRenderer struct {
	version string
}

func (p pageRenderer) render(c *gin.Context, status int, name, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	data["Version"] = p.version
	c.HTML(status, name, data)
}

func (p pageRenderer) notFound(c *gin.Context) {
	p.render(c, http.StatusNotFound, "404.html", "Page not found - DevBlog", nil)
}

// apiError writes the failure envelope.
func apiError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "error": msg})
}
