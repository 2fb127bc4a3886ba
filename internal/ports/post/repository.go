package post

import "devblog/internal/core/post"

// PostRepository port for storing and retrieving posts.
// Lookups report a missing post with false instead of an error.
type PostRepository interface {
	Create(title, content, author string) *post.Post
	FindAll() []*post.Post
	FindByID(id int64) (*post.Post, bool)
	Update(id int64, patch post.Patch) (*post.Post, bool)
	Delete(id int64) bool
	Search(query string) []*post.Post
}

// DTOs for the use cases
type PostDTO struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	Summary   string `json:"summary"`
}

type CreatePostInput struct {
	Title   string
	Content string
	Author  string
}

// UpdatePostInput carries optional fields; nil leaves the field unchanged.
type UpdatePostInput struct {
	Title   *string
	Content *string
}
