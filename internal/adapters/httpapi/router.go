package httpapi

import (
	"context"
	"net/http"
	"strings"

	"devblog/internal/adapters/httpapi/middleware"
	postPort "devblog/internal/ports/post"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PostUseCase: the interface the controllers need (inbound port)
type PostUseCase interface {
	CreatePost(ctx context.Context, in postPort.CreatePostInput) (*postPort.PostDTO, error)
	ListPosts(ctx context.Context) []*postPort.PostDTO
	GetPost(ctx context.Context, id int64) (*postPort.PostDTO, error)
	UpdatePost(ctx context.Context, id int64, in postPort.UpdatePostInput) (*postPort.PostDTO, error)
	DeletePost(ctx context.Context, id int64) error
	SearchPosts(ctx context.Context, query string) []*postPort.PostDTO
}

// SetupRoutes only wires routes; the use case is injected from outside.
func SetupRoutes(postUC PostUseCase, version string, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	pages := pageRenderer{version: version}

	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger, func(c *gin.Context) {
			if isAPI(c) {
				apiError(c, http.StatusInternalServerError, "Internal server error")
				return
			}
			pages.render(c, http.StatusInternalServerError, "500.html", "Error - DevBlog", nil)
			c.Abort()
		}),
		middleware.SecureHeaders(),
	)
	r.SetHTMLTemplate(loadTemplates())
	r.StaticFS("/static", staticFiles())

	pc := NewPageController(postUC, pages)
	r.GET("/", pc.Index)
	r.GET("/post/:id", pc.ViewPost)
	r.GET("/create", pc.CreateForm)
	r.POST("/create", pc.CreatePost)
	r.GET("/search", pc.Search)

	ac := NewPostController(postUC)
	hc := NewHealthController(version)
	api := r.Group("/api")
	{
		api.GET("/posts", ac.ListPosts)
		api.POST("/posts", ac.CreatePost)
		api.GET("/posts/:id", ac.GetPost)
		api.PUT("/posts/:id", ac.UpdatePost)
		api.DELETE("/posts/:id", ac.DeletePost)
		api.GET("/search", ac.SearchPosts)
		api.GET("/health", hc.Health)
	}

	r.NoRoute(func(c *gin.Context) {
		if isAPI(c) {
			apiError(c, http.StatusNotFound, "Resource not found")
			return
		}
		pages.notFound(c)
	})
	return r
}

func isAPI(c *gin.Context) bool {
	p := c.Request.URL.Path
	return p == "/api" || strings.HasPrefix(p, "/api/")
}
