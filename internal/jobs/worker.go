package jobs

import (
	"context"
	"errors"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-shortcodes/internal/logging"
	"github.com/goliatone/go-shortcodes/pkg/interfaces"
)

const (
	ActionExpanded = "expanded"
	ActionFailed   = "failed"
)

// Document is one exported post body queued for expansion.
type Document struct {
	ID      uuid.UUID
	Source  string
	Content string
}

// Result is the expansion outcome for the Document at the same index.
type Result struct {
	ID     uuid.UUID
	Output string
	Err    error
}

// Worker expands batches of documents concurrently over a shared expander.
type Worker struct {
	expander    interfaces.ShortcodeExpander
	logger      interfaces.Logger
	audit       AuditRecorder
	now         func() time.Time
	concurrency int
}

type Option func(*Worker)

func WithAuditRecorder(recorder AuditRecorder) Option {
	return func(w *Worker) {
		w.audit = recorder
	}
}

func WithLogger(logger interfaces.Logger) Option {
	return func(w *Worker) {
		if logger != nil {
			w.logger = logger
		}
	}
}

func WithClock(clock func() time.Time) Option {
	return func(w *Worker) {
		if clock != nil {
			w.now = clock
		}
	}
}

// WithConcurrency bounds the number of documents expanded at once.
// Non-positive values select GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(w *Worker) {
		if n > 0 {
			w.concurrency = n
		}
	}
}

func NewWorker(expander interfaces.ShortcodeExpander, opts ...Option) *Worker {
	w := &Worker{
		expander:    expander,
		logger:      logging.NoOp(),
		now:         time.Now,
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Process expands every document and returns one Result per input, in input
// order. A failing document does not stop the batch; its error is reported on
// its Result. Process itself only fails when ctx is done before the batch
// completes.
func (w *Worker) Process(ctx context.Context, docs []Document) ([]Result, error) {
	if w.expander == nil {
		return nil, errors.New("jobs: expander is nil")
	}
	results := make([]Result, len(docs))
	if len(docs) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(w.concurrency, len(docs)))

	for i, doc := range docs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = w.expand(gctx, doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}
	logging.WithFields(w.logger, map[string]any{
		"documents": len(docs),
		"failed":    failed,
	}).Info("shortcodes.jobs.batch.completed")
	return results, nil
}

func (w *Worker) expand(ctx context.Context, doc Document) Result {
	docCtx := ctx
	if doc.ID != uuid.Nil {
		docCtx = logging.ContextWithFields(ctx, map[string]any{"content_id": doc.ID.String()})
	}
	output, err := w.expander.Expand(docCtx, doc.Content)

	action := ActionExpanded
	meta := map[string]any{
		"input_bytes": len(doc.Content),
	}
	if err != nil {
		action = ActionFailed
		meta["error"] = err.Error()
		logging.WithFields(logging.WithSourceContext(w.logger, idString(doc.ID), doc.Source), map[string]any{
			"error": err,
		}).Warn("shortcodes.jobs.document.failed")
	} else {
		meta["output_bytes"] = len(output)
	}
	w.recordAudit(ctx, AuditEvent{
		DocumentID: idString(doc.ID),
		Source:     doc.Source,
		Action:     action,
		OccurredAt: w.now(),
		Metadata:   meta,
	})

	return Result{ID: doc.ID, Output: output, Err: err}
}

func (w *Worker) recordAudit(ctx context.Context, event AuditEvent) {
	if w.audit == nil {
		return
	}
	if err := w.audit.Record(ctx, event); err != nil {
		logging.WithFields(w.logger, map[string]any{
			"document_id": event.DocumentID,
			"error":       err,
		}).Warn("shortcodes.jobs.audit.failed")
	}
}

func idString(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}
