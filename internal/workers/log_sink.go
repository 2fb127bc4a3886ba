package workers

import (
	"context"

	"devblog/internal/core/activity"

	"go.uber.org/zap"
)

// LogSink writes each activity as a structured log line.
type LogSink struct {
	Logger *zap.Logger
}

func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{Logger: logger}
}

func (s *LogSink) Name() string { return "log" }

func (s *LogSink) Record(ctx context.Context, batch []*activity.Activity) error {
	for _, a := range batch {
		s.Logger.Info("post activity",
			zap.String("id", a.ID.String()),
			zap.Int64("postID", a.PostID),
			zap.String("action", string(a.Action)),
			zap.String("title", a.Title),
			zap.Time("occurredAt", a.OccurredAt))
	}
	return nil
}
