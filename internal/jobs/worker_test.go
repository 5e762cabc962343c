package jobs_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-shortcodes/internal/jobs"
	"github.com/goliatone/go-shortcodes/internal/shortcode"
)

func newExpander(t *testing.T) *shortcode.Expander {
	t.Helper()
	registry := shortcode.NewRegistry()
	if err := shortcode.RegisterBuiltIns(registry, nil); err != nil {
		t.Fatalf("register built-ins: %v", err)
	}
	if err := registry.Register("loop", func(shortcode.Attributes, *string) string { return "[loop]" }); err != nil {
		t.Fatalf("register loop: %v", err)
	}
	return shortcode.NewExpander(registry, shortcode.WithMaxIterations(20))
}

func TestWorkerProcessPreservesOrderAndCollectsErrors(t *testing.T) {
	ctx := context.Background()
	audit := jobs.NewInMemoryAuditRecorder()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	worker := jobs.NewWorker(newExpander(t),
		jobs.WithAuditRecorder(audit),
		jobs.WithClock(func() time.Time { return now }),
		jobs.WithConcurrency(2),
	)

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	docs := []jobs.Document{
		{ID: ids[0], Source: "wordpress", Content: "[span]one[/span]"},
		{ID: ids[1], Source: "wordpress", Content: "[loop]"},
		{ID: ids[2], Source: "wordpress", Content: "[vc_row]three[/vc_row]"},
	}

	results, err := worker.Process(ctx, docs)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(results) != len(docs) {
		t.Fatalf("expected %d results, got %d", len(docs), len(results))
	}

	if results[0].ID != ids[0] || results[0].Output != "<span>one</span>" || results[0].Err != nil {
		t.Fatalf("unexpected first result %#v", results[0])
	}
	if !errors.Is(results[1].Err, shortcode.ErrNonTerminating) {
		t.Fatalf("expected non-terminating error for second document, got %v", results[1].Err)
	}
	if results[2].Output != "three " {
		t.Fatalf("unexpected third output %q", results[2].Output)
	}

	events := audit.Events()
	if len(events) != 3 {
		t.Fatalf("expected 3 audit events, got %d", len(events))
	}
	actions := map[string]string{}
	for _, event := range events {
		actions[event.DocumentID] = event.Action
		if !event.OccurredAt.Equal(now) {
			t.Fatalf("expected clock time on audit event, got %v", event.OccurredAt)
		}
	}
	if actions[ids[1].String()] != jobs.ActionFailed || actions[ids[0].String()] != jobs.ActionExpanded {
		t.Fatalf("unexpected audit actions %#v", actions)
	}
}

func TestWorkerProcessEmptyBatch(t *testing.T) {
	results, err := jobs.NewWorker(newExpander(t)).Process(context.Background(), nil)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}

func TestWorkerProcessNilExpander(t *testing.T) {
	if _, err := jobs.NewWorker(nil).Process(context.Background(), []jobs.Document{{Content: "x"}}); err == nil {
		t.Fatal("expected error for nil expander")
	}
}

func TestWorkerProcessContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := jobs.NewWorker(newExpander(t)).Process(ctx, []jobs.Document{{Content: "[span]x[/span]"}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

type blockingExpander struct {
	started chan struct{}
}

func (b *blockingExpander) Expand(ctx context.Context, _ string) (string, error) {
	close(b.started)
	<-ctx.Done()
	return "", ctx.Err()
}

func TestWorkerProcessCancelledMidExpansion(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expander := &blockingExpander{started: make(chan struct{})}
	go func() {
		<-expander.started
		cancel()
	}()

	results, err := jobs.NewWorker(expander, jobs.WithConcurrency(1)).Process(ctx, []jobs.Document{{Content: "[span]x[/span]"}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled from Process, got %v", err)
	}
	if len(results) != 1 || !errors.Is(results[0].Err, context.Canceled) {
		t.Fatalf("expected cancelled document result, got %#v", results)
	}
}

type countingExpander struct {
	active  atomic.Int32
	maxSeen atomic.Int32
}

func (c *countingExpander) Expand(_ context.Context, input string) (string, error) {
	n := c.active.Add(1)
	for {
		seen := c.maxSeen.Load()
		if n <= seen || c.maxSeen.CompareAndSwap(seen, n) {
			break
		}
	}
	time.Sleep(2 * time.Millisecond)
	c.active.Add(-1)
	return strings.ToUpper(input), nil
}

func TestWorkerRespectsConcurrencyLimit(t *testing.T) {
	expander := &countingExpander{}
	worker := jobs.NewWorker(expander, jobs.WithConcurrency(2))

	docs := make([]jobs.Document, 10)
	for i := range docs {
		docs[i] = jobs.Document{Content: "doc"}
	}
	results, err := worker.Process(context.Background(), docs)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if got := expander.maxSeen.Load(); got > 2 {
		t.Fatalf("expected at most 2 concurrent expansions, saw %d", got)
	}
	for _, result := range results {
		if result.Output != "DOC" {
			t.Fatalf("unexpected output %q", result.Output)
		}
	}
}

func TestWorkerAuditFailureDoesNotFailDocument(t *testing.T) {
	audit := jobs.NewInMemoryAuditRecorder()
	audit.Fail(errors.New("audit store down"))

	results, err := jobs.NewWorker(newExpander(t), jobs.WithAuditRecorder(audit)).
		Process(context.Background(), []jobs.Document{{Content: "[span]x[/span]"}})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if results[0].Err != nil {
		t.Fatalf("expected document to succeed, got %v", results[0].Err)
	}
}
