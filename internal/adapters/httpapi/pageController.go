package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	postapp "devblog/internal/core/post/service"
	postPort "devblog/internal/ports/post"

	"github.com/gin-gonic/gin"
)

const formDefaultAuthor = "Anonymous"

// PageController renders the HTML pages.
type PageController struct {
	pc    PostUseCase
	pages pageRenderer
}

func NewPageController(pc PostUseCase, pages pageRenderer) *PageController {
	return &PageController{pc: pc, pages: pages}
}

// postForm keeps submitted values so the form can be shown again after a validation error.
type postForm struct {
	Title   string
	Content string
	Author  string
}

func (ctl *PageController) Index(c *gin.Context) {
	ctl.pages.render(c, http.StatusOK, "index.html", "DevBlog - My Personal Blog", gin.H{
		"Posts": ctl.pc.ListPosts(c.Request.Context()),
	})
}

func (ctl *PageController) ViewPost(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		ctl.pages.notFound(c)
		return
	}
	p, err := ctl.pc.GetPost(c.Request.Context(), id)
	if err != nil {
		ctl.pages.notFound(c)
		return
	}
	data := gin.H{"Post": p}
	if c.Query("created") == "1" {
		data["Success"] = "Post created successfully!"
	}
	ctl.pages.render(c, http.StatusOK, "post.html", p.Title+" - DevBlog", data)
}

func (ctl *PageController) CreateForm(c *gin.Context) {
	ctl.pages.render(c, http.StatusOK, "create_post.html", "Create New Post - DevBlog", gin.H{
		"Form": postForm{},
	})
}

func (ctl *PageController) CreatePost(c *gin.Context) {
	form := postForm{
		Title:   strings.TrimSpace(c.PostForm("title")),
		Content: strings.TrimSpace(c.PostForm("content")),
		Author:  strings.TrimSpace(c.PostForm("author")),
	}
	author := form.Author
	if author == "" {
		author = formDefaultAuthor
	}

	res, err := ctl.pc.CreatePost(c.Request.Context(), postPort.CreatePostInput{
		Title:   form.Title,
		Content: form.Content,
		Author:  author,
	})
	if err != nil {
		problems := []string{"Could not create the post"}
		var verr *postapp.ValidationError
		if errors.As(err, &verr) {
			problems = verr.Problems
		}
		ctl.pages.render(c, http.StatusOK, "create_post.html", "Create New Post - DevBlog", gin.H{
			"Form":   form,
			"Errors": problems,
		})
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/post/%d?created=1", res.ID))
}

func (ctl *PageController) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	title := "Search - DevBlog"
	data := gin.H{"Query": query}

	if query == "" {
		data["Posts"] = []*postPort.PostDTO{}
		data["Message"] = "Enter a search term"
	} else {
		results := ctl.pc.SearchPosts(c.Request.Context(), query)
		data["Posts"] = results
		if len(results) > 0 {
			data["Message"] = fmt.Sprintf("Results for: %q", query)
		} else {
			data["Message"] = fmt.Sprintf("No results found for: %q", query)
		}
		title = "Search: " + query
	}
	ctl.pages.render(c, http.StatusOK, "search.html", title, data)
}
