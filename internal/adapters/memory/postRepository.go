package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"devblog/internal/core/post"
)

// PostRepositoryMemory is the in-memory implementation of PostRepository.
// Mutations and id assignment are serialized by mu.
type PostRepositoryMemory struct {
	mu     sync.RWMutex
	posts  []*post.Post
	nextID int64
	now    func() time.Time
}

type Option func(*PostRepositoryMemory)

// WithClock replaces time.Now as the source of timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *PostRepositoryMemory) { r.now = now }
}

// NewPostRepositoryMemory constructor for an empty repository
func NewPostRepositoryMemory(opts ...Option) *PostRepositoryMemory {
	r := &PostRepositoryMemory{nextID: 1, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *PostRepositoryMemory) Create(title, content, author string) *post.Post {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := post.New(title, content, author, r.now())
	p.ID = r.nextID
	r.nextID++
	r.posts = append(r.posts, p)
	return clone(p)
}

// FindAll returns every post, newest first. Equal timestamps keep insertion order.
func (r *PostRepositoryMemory) FindAll() []*post.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedLocked()
}

func (r *PostRepositoryMemory) FindByID(id int64) (*post.Post, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexLocked(id); i >= 0 {
		return clone(r.posts[i]), true
	}
	return nil, false
}

func (r *PostRepositoryMemory) Update(id int64, patch post.Patch) (*post.Post, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexLocked(id)
	if i < 0 {
		return nil, false
	}
	r.posts[i].Apply(patch, r.now())
	return clone(r.posts[i]), true
}

func (r *PostRepositoryMemory) Delete(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexLocked(id)
	if i < 0 {
		return false
	}
	r.posts = append(r.posts[:i], r.posts[i+1:]...)
	return true
}

// Search matches the query case-insensitively against title and content.
// Title matches come first; each group keeps the FindAll ordering.
// A blank query returns FindAll.
func (r *PostRepositoryMemory) Search(query string) []*post.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.sortedLocked()
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all
	}

	titleHits := make([]*post.Post, 0)
	contentHits := make([]*post.Post, 0)
	for _, p := range all {
		inTitle, inContent := p.Matches(q)
		switch {
		case inTitle:
			titleHits = append(titleHits, p)
		case inContent:
			contentHits = append(contentHits, p)
		}
	}
	return append(titleHits, contentHits...)
}

func (r *PostRepositoryMemory) indexLocked(id int64) int {
	for i, p := range r.posts {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (r *PostRepositoryMemory) sortedLocked() []*post.Post {
	out := make([]*post.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, clone(p))
	}
	// r.posts is in insertion order, so equal timestamps keep it.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func clone(p *post.Post) *post.Post {
	c := *p
	return &c
}
