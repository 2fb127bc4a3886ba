package workers

import (
	"context"
	"time"

	"devblog/internal/core/activity"
	activityPort "devblog/internal/ports/activity"

	"go.uber.org/zap"
)

// ActivityWorker drains queued activities in batches and hands them to every sink.
type ActivityWorker struct {
	Sinks         []activityPort.Sink
	BatchSize     int
	FlushInterval time.Duration
	Logger        *zap.Logger

	queue chan *activity.Activity
}

func NewActivityWorker(
	sinks []activityPort.Sink,
	queueSize int,
	batchSize int,
	flushInterval time.Duration,
	logger *zap.Logger,
) *ActivityWorker {
	if queueSize <= 0 {
		queueSize = 1
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	if flushInterval <= 0 {
		flushInterval = time.Second
	}
	return &ActivityWorker{
		Sinks:         sinks,
		BatchSize:     batchSize,
		FlushInterval: flushInterval,
		Logger:        logger,
		queue:         make(chan *activity.Activity, queueSize),
	}
}

// Enqueue never blocks; it reports false when the queue is full.
func (w *ActivityWorker) Enqueue(a *activity.Activity) bool {
	select {
	case w.queue <- a:
		return true
	default:
		return false
	}
}

// Run collects activities until ctx is done, then flushes what is left.
func (w *ActivityWorker) Run(ctx context.Context) {
	w.Logger.Info("activity worker started", zap.Int("sinks", len(w.Sinks)), zap.Int("batchSize", w.BatchSize))
	ticker := time.NewTicker(w.FlushInterval)
	defer ticker.Stop()

	batch := make([]*activity.Activity, 0, w.BatchSize)
	for {
		select {
		case <-ctx.Done():
			batch = w.drain(batch)
			// sinks get a fresh context for the last flush
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			w.flush(flushCtx, batch)
			cancel()
			w.Logger.Info("activity worker stopped")
			return
		case a := <-w.queue:
			batch = append(batch, a)
			if len(batch) >= w.BatchSize {
				w.flush(ctx, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				w.flush(ctx, batch)
				batch = batch[:0]
			}
		}
	}
}

func (w *ActivityWorker) drain(batch []*activity.Activity) []*activity.Activity {
	for {
		select {
		case a := <-w.queue:
			batch = append(batch, a)
		default:
			return batch
		}
	}
}

// flush sends the batch to each sink; a failing sink does not stop the others.
func (w *ActivityWorker) flush(ctx context.Context, batch []*activity.Activity) {
	if len(batch) == 0 {
		return
	}
	for start := 0; start < len(batch); start += w.BatchSize {
		end := min(start+w.BatchSize, len(batch))
		chunk := batch[start:end]
		for _, sink := range w.Sinks {
			if err := sink.Record(ctx, chunk); err != nil {
				w.Logger.Error("activity sink failed",
					zap.String("sink", sink.Name()),
					zap.Int("count", len(chunk)),
					zap.Error(err))
				continue
			}
			w.Logger.Debug("activities recorded", zap.String("sink", sink.Name()), zap.Int("count", len(chunk)))
		}
	}
}
