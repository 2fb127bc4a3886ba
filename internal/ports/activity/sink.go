package activity

import (
	"context"

	"devblog/internal/core/activity"
)

// Sink receives batches of activities from the worker.
type Sink interface {
	Name() string
	Record(ctx context.Context, batch []*activity.Activity) error
}

// Publisher accepts activities without blocking the caller.
type Publisher interface {
	Enqueue(a *activity.Activity) bool
}
