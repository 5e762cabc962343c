package logging

import (
	"context"
	"maps"
	"testing"

	"github.com/goliatone/go-shortcodes/pkg/interfaces"
)

type recordingLogger struct {
	fields   []map[string]any
	contexts []context.Context
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	copied := make(map[string]any, len(fields))
	maps.Copy(copied, fields)
	r.fields = append(r.fields, copied)
	return r
}

func (r *recordingLogger) WithContext(ctx context.Context) interfaces.Logger {
	r.contexts = append(r.contexts, ctx)
	return r
}

type stubProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.requested = append(s.requested, name)
	return s.logger
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "shortcodes.test")
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}
	logger = logger.WithContext(context.Background())
	logger.Debug("noop")
}

func TestModuleLoggerUsesProviderAndAnnotatesFields(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = ModuleLogger(provider, expanderModule)

	if len(provider.requested) != 1 || provider.requested[0] != expanderModule {
		t.Fatalf("expected module %s, got %v", expanderModule, provider.requested)
	}
	if len(rec.fields) != 1 {
		t.Fatalf("expected module fields to be applied once, got %d", len(rec.fields))
	}
	if got := rec.fields[0]["module"]; got != expanderModule {
		t.Fatalf("expected module field %s, got %v", expanderModule, got)
	}
}

func TestModuleLoggerDefaultsToRootModule(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = ModuleLogger(provider, "")

	if len(provider.requested) != 1 || provider.requested[0] != rootModule {
		t.Fatalf("expected default module %s, got %v", rootModule, provider.requested)
	}
}

func TestCommandsLoggerAppendsName(t *testing.T) {
	provider := &stubProvider{logger: &recordingLogger{}}

	_ = CommandsLogger(provider, "expand")
	_ = CommandsLogger(provider, " ")

	want := []string{commandsModule + ".expand", commandsModule}
	if len(provider.requested) != len(want) {
		t.Fatalf("expected %d requests, got %v", len(want), provider.requested)
	}
	for i := range want {
		if provider.requested[i] != want[i] {
			t.Fatalf("request %d: expected %s, got %s", i, want[i], provider.requested[i])
		}
	}
}

func TestWithSourceContextSkipsEmptyValues(t *testing.T) {
	rec := &recordingLogger{}

	WithSourceContext(rec, "", "  ")
	if len(rec.fields) != 0 {
		t.Fatalf("expected no fields for empty values, got %v", rec.fields)
	}

	WithSourceContext(rec, " post-12 ", "wordpress")
	if len(rec.fields) != 1 {
		t.Fatalf("expected one fields call, got %d", len(rec.fields))
	}
	if rec.fields[0][fieldContentID] != "post-12" || rec.fields[0][fieldSourceName] != "wordpress" {
		t.Fatalf("unexpected fields %v", rec.fields[0])
	}
}

func TestFromContextMergesAnnotatedFields(t *testing.T) {
	rec := &recordingLogger{}
	ctx := ContextWithFields(context.Background(), map[string]any{"post": 1})
	ctx = ContextWithFields(ctx, map[string]any{"source": "wp"})

	FromContext(ctx, rec)

	if len(rec.contexts) != 1 || rec.contexts[0] != ctx {
		t.Fatalf("expected context to be bound, got %v", rec.contexts)
	}
	if len(rec.fields) != 1 {
		t.Fatalf("expected fields to be applied once, got %d", len(rec.fields))
	}
	if rec.fields[0]["post"] != 1 || rec.fields[0]["source"] != "wp" {
		t.Fatalf("unexpected merged fields %v", rec.fields[0])
	}
}

func TestContextFieldsReturnsCopy(t *testing.T) {
	ctx := ContextWithFields(context.Background(), map[string]any{"post": 1})

	fields := ContextFields(ctx)
	fields["post"] = 2

	if got := ContextFields(ctx)["post"]; got != 1 {
		t.Fatalf("expected stored fields to be unchanged, got %v", got)
	}
}
