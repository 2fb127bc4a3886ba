package httpapi

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"strings"

	postapp "devblog/internal/core/post/service"
	postPort "devblog/internal/ports/post"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const apiDefaultAuthor = "API User"

type PostController struct{ pc PostUseCase }

func NewPostController(pc PostUseCase) *PostController { return &PostController{pc: pc} }

type postRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Author  *string `json:"author"`
}

func (ctl *PostController) ListPosts(c *gin.Context) {
	posts := ctl.pc.ListPosts(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true, "data": posts, "count": len(posts)})
}

func (ctl *PostController) CreatePost(c *gin.Context) {
	req, ok := bindPostRequest(c)
	if !ok {
		return
	}
	if isBlank(req.Title) || isBlank(req.Content) {
		apiError(c, http.StatusBadRequest, "Title and content are required")
		return
	}
	author := apiDefaultAuthor
	if !isBlank(req.Author) {
		author = *req.Author
	}

	res, err := ctl.pc.CreatePost(c.Request.Context(), postPort.CreatePostInput{
		Title:   *req.Title,
		Content: *req.Content,
		Author:  author,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": res, "message": "Post created successfully"})
}

func (ctl *PostController) GetPost(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		apiError(c, http.StatusNotFound, "Post not found")
		return
	}
	res, err := ctl.pc.GetPost(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": res})
}

func (ctl *PostController) UpdatePost(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		apiError(c, http.StatusNotFound, "Post not found")
		return
	}
	req, ok := bindPostRequest(c)
	if !ok {
		return
	}
	res, err := ctl.pc.UpdatePost(c.Request.Context(), id, postPort.UpdatePostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": res, "message": "Post updated successfully"})
}

func (ctl *PostController) DeletePost(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		apiError(c, http.StatusNotFound, "Post not found")
		return
	}
	if err := ctl.pc.DeletePost(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Post deleted successfully"})
}

func (ctl *PostController) SearchPosts(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		apiError(c, http.StatusBadRequest, `Search parameter "q" is required`)
		return
	}
	results := ctl.pc.SearchPosts(c.Request.Context(), query)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": results, "query": query, "count": len(results)})
}

// bindPostRequest enforces a JSON content type and a non-empty JSON object body.
// It writes the 400 response itself and reports false on failure.
func bindPostRequest(c *gin.Context) (*postRequest, bool) {
	if c.ContentType() != binding.MIMEJSON {
		apiError(c, http.StatusBadRequest, "Content-Type must be application/json")
		return nil, false
	}
	body, err := c.GetRawData()
	if err != nil || len(bytes.TrimSpace(body)) == 0 {
		apiError(c, http.StatusBadRequest, "No valid JSON data provided")
		return nil, false
	}

	var fields map[string]any
	if err := binding.JSON.BindBody(body, &fields); err != nil {
		apiError(c, http.StatusBadRequest, "Malformed JSON")
		return nil, false
	}
	if len(fields) == 0 {
		apiError(c, http.StatusBadRequest, "No valid JSON data provided")
		return nil, false
	}

	var req postRequest
	if err := binding.JSON.BindBody(body, &req); err != nil {
		apiError(c, http.StatusBadRequest, "Fields title, content and author must be strings")
		return nil, false
	}
	return &req, true
}

func writeServiceError(c *gin.Context, err error) {
	var verr *postapp.ValidationError
	switch {
	case errors.As(err, &verr):
		apiError(c, http.StatusBadRequest, verr.Error())
	case errors.Is(err, postapp.ErrPostNotFound):
		apiError(c, http.StatusNotFound, "Post not found")
	default:
		apiError(c, http.StatusInternalServerError, "Internal error")
	}
}

// parsePostID accepts positive integer ids only.
func parsePostID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
