package postapp

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"devblog/internal/core/activity"
	postEntity "devblog/internal/core/post"
	activityPort "devblog/internal/ports/activity"
	postPort "devblog/internal/ports/post"

	"go.uber.org/zap"
)

const (
	MaxTitleLength = 200
	SummaryLength  = 150
	TimeLayout     = "2006-01-02 15:04:05"
)

var ErrPostNotFound = errors.New("post not found")

// ValidationError lists every problem found in the submitted fields.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

type PostService struct {
	PostRepository postPort.PostRepository
	Activities     activityPort.Publisher // optional
	Logger         *zap.Logger
}

func NewPostService(repo postPort.PostRepository, activities activityPort.Publisher, logger *zap.Logger) *PostService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostService{
		PostRepository: repo,
		Activities:     activities,
		Logger:         logger,
	}
}

// CreatePost validates the input and stores a new post.
func (s *PostService) CreatePost(ctx context.Context, in postPort.CreatePostInput) (*postPort.PostDTO, error) {
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)

	var problems []string
	if title == "" {
		problems = append(problems, "Title is required")
	}
	if content == "" {
		problems = append(problems, "Content is required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		problems = append(problems, "Title cannot be longer than 200 characters")
	}
	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}

	p := s.PostRepository.Create(title, content, in.Author)
	s.Logger.Info("post created", zap.Int64("postID", p.ID), zap.String("author", p.Author))
	s.publish(p, activity.ActionCreated)
	return ToDTO(p), nil
}

func (s *PostService) ListPosts(ctx context.Context) []*postPort.PostDTO {
	return toDTOs(s.PostRepository.FindAll())
}

func (s *PostService) GetPost(ctx context.Context, id int64) (*postPort.PostDTO, error) {
	p, ok := s.PostRepository.FindByID(id)
	if !ok {
		return nil, ErrPostNotFound
	}
	return ToDTO(p), nil
}

// UpdatePost applies the supplied fields. A field sent explicitly empty is rejected
// instead of being silently ignored.
func (s *PostService) UpdatePost(ctx context.Context, id int64, in postPort.UpdatePostInput) (*postPort.PostDTO, error) {
	var problems []string
	if in.Title != nil {
		t := strings.TrimSpace(*in.Title)
		if t == "" {
			problems = append(problems, "Title cannot be empty")
		} else if utf8.RuneCountInString(t) > MaxTitleLength {
			problems = append(problems, "Title cannot be longer than 200 characters")
		}
	}
	if in.Content != nil && strings.TrimSpace(*in.Content) == "" {
		problems = append(problems, "Content cannot be empty")
	}
	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}

	p, ok := s.PostRepository.Update(id, postEntity.Patch{Title: in.Title, Content: in.Content})
	if !ok {
		return nil, ErrPostNotFound
	}
	s.Logger.Info("post updated", zap.Int64("postID", p.ID))
	s.publish(p, activity.ActionUpdated)
	return ToDTO(p), nil
}

func (s *PostService) DeletePost(ctx context.Context, id int64) error {
	p, ok := s.PostRepository.FindByID(id)
	if !ok || !s.PostRepository.Delete(id) {
		return ErrPostNotFound
	}
	s.Logger.Info("post deleted", zap.Int64("postID", id))
	s.publish(p, activity.ActionDeleted)
	return nil
}

func (s *PostService) SearchPosts(ctx context.Context, query string) []*postPort.PostDTO {
	return toDTOs(s.PostRepository.Search(query))
}

// SeedSamplePosts fills an empty blog with the sample posts.
func (s *PostService) SeedSamplePosts(ctx context.Context) {
	for _, sample := range postEntity.Samples() {
		p := s.PostRepository.Create(sample.Title, sample.Content, sample.Author)
		s.Logger.Debug("sample post seeded", zap.Int64("postID", p.ID), zap.String("title", p.Title))
	}
}

func (s *PostService) publish(p *postEntity.Post, action activity.Action) {
	if s.Activities == nil {
		return
	}
	a := activity.New(p.ID, action, p.Title, p.Author, time.Now())
	if !s.Activities.Enqueue(a) {
		s.Logger.Warn("activity dropped", zap.Int64("postID", p.ID), zap.String("action", string(action)))
	}
}

// ToDTO converts a post into its API representation.
func ToDTO(p *postEntity.Post) *postPort.PostDTO {
	return &postPort.PostDTO{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Author:    p.Author,
		CreatedAt: p.CreatedAt.Format(TimeLayout),
		UpdatedAt: p.UpdatedAt.Format(TimeLayout),
		Summary:   Summarize(p.Content),
	}
}

// Summarize truncates content to SummaryLength characters and appends "..." when cut.
func Summarize(content string) string {
	if utf8.RuneCountInString(content) <= SummaryLength {
		return content
	}
	return string([]rune(content)[:SummaryLength]) + "..."
}

func toDTOs(posts []*postEntity.Post) []*postPort.PostDTO {
	out := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, ToDTO(p))
	}
	return out
}
