package post

import (
	"strings"
	"time"
)

// DefaultAuthor is used when a post is created without an author.
const DefaultAuthor = "Admin"

type Post struct {
	ID        int64
	Title     string
	Content   string
	Author    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Patch describes a partial update. A nil field means "no change requested".
type Patch struct {
	Title   *string
	Content *string
}

// New builds a post with trimmed fields and both timestamps set to now.
func New(title, content, author string, now time.Time) *Post {
	author = strings.TrimSpace(author)
	if author == "" {
		author = DefaultAuthor
	}
	return &Post{
		Title:     strings.TrimSpace(title),
		Content:   strings.TrimSpace(content),
		Author:    author,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Apply overwrites the supplied fields and refreshes UpdatedAt.
// Values that are empty after trimming are treated as not supplied.
func (p *Post) Apply(patch Patch, now time.Time) {
	if patch.Title != nil {
		if t := strings.TrimSpace(*patch.Title); t != "" {
			p.Title = t
		}
	}
	if patch.Content != nil {
		if c := strings.TrimSpace(*patch.Content); c != "" {
			p.Content = c
		}
	}
	p.UpdatedAt = now
}

// Matches reports whether the lowercased query occurs in the title and in the content.
func (p *Post) Matches(lowerQuery string) (inTitle, inContent bool) {
	inTitle = strings.Contains(strings.ToLower(p.Title), lowerQuery)
	inContent = strings.Contains(strings.ToLower(p.Content), lowerQuery)
	return inTitle, inContent
}

// Sample is seed data for a fresh repository.
type Sample struct {
	Title   string
	Content string
	Author  string
}

// Samples returns the posts a new blog starts with, oldest first.
func Samples() []Sample {
	return []Sample{
		{
			Title: "Welcome to DevBlog!",
			Content: `This is my first post on DevBlog, an application built to learn DevOps and CI/CD.
On this blog I will share what I learn about:
- Web development in Go
- Containerization with Docker
- Automated testing
- CI/CD with GitHub Actions
- Deploying to the cloud

I hope you enjoy reading it as much as I enjoy writing it!`,
			Author: "DevOps Student",
		},
		{
			Title: "My experience with Docker",
			Content: `Docker has been a revelation in my DevOps journey.
Packaging an application with all of its dependencies into a portable container is amazing.
No more "it works on my machine".

Some benefits I have found:
- Consistency across environments
- Easy scaling
- Application isolation
- More reliable deployments

What has your experience with Docker been like?`,
			Author: "DevOps Student",
		},
	}
}
