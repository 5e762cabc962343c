package gologger

import (
	"context"
	"maps"
	"testing"

	glog "github.com/goliatone/go-logger/glog"
)

func TestNewProviderBuildsModuleLoggers(t *testing.T) {
	p, err := NewProvider(Config{Level: "debug", Format: "console"})
	if err != nil {
		t.Fatalf("NewProvider returned error: %v", err)
	}

	logger := p.GetLogger("shortcodes.expander")
	if logger == nil {
		t.Fatal("expected logger, got nil")
	}
	logger.WithContext(context.Background()).Debug("shortcode.expander.test")
}

func TestNewProviderRejectsUnknownFormat(t *testing.T) {
	if _, err := NewProvider(Config{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNilProviderReturnsNoOp(t *testing.T) {
	var p *Provider
	if logger := p.GetLogger("shortcodes"); logger == nil {
		t.Fatal("expected no-op logger from nil provider")
	}
}

func TestAdapterDelegatesToUnderlyingLogger(t *testing.T) {
	stub := &stubLogger{}
	adapted := adapt(stub)

	adapted.Trace("trace")
	adapted.Debug("debug")
	adapted.Info("info")
	adapted.Warn("warn")
	adapted.Error("error")
	adapted.Fatal("fatal")

	wantCalls := []string{"trace", "debug", "info", "warn", "error", "fatal"}
	if len(stub.calls) != len(wantCalls) {
		t.Fatalf("expected %d calls, got %d", len(wantCalls), len(stub.calls))
	}
	for i, want := range wantCalls {
		if stub.calls[i] != want {
			t.Fatalf("call %d: expected %q, got %q", i, want, stub.calls[i])
		}
	}
}

func TestAdapterClonesFields(t *testing.T) {
	stub := &stubLogger{}
	adapted := adapt(stub).(*adapter)

	fields := map[string]any{"shortcode": "span"}
	adapted.WithFields(fields)
	fields["shortcode"] = "gallery"

	if len(stub.fields) != 1 {
		t.Fatalf("expected fields to be recorded once, got %d", len(stub.fields))
	}
	if stub.fields[0]["shortcode"] != "span" {
		t.Fatalf("expected fields to be cloned, got %v", stub.fields[0]["shortcode"])
	}

	adapted.WithFields(nil)
	if len(stub.fields) != 1 {
		t.Fatalf("expected empty fields to be skipped, got %d calls", len(stub.fields))
	}
}

func TestAdapterPropagatesContext(t *testing.T) {
	stub := &stubLogger{}
	ctx := context.WithValue(context.Background(), struct{}{}, "value")

	adapt(stub).WithContext(ctx)

	if len(stub.contexts) != 1 || stub.contexts[0] != ctx {
		t.Fatalf("expected context propagation, got %#v", stub.contexts)
	}
}

func TestLevelName(t *testing.T) {
	cases := map[string]string{
		"":        "",
		"TRACE":   glog.Trace,
		" warn ":  glog.Warn,
		"warning": glog.Warn,
		"verbose": "",
	}
	for in, want := range cases {
		if got := levelName(in); got != want {
			t.Fatalf("levelName(%q) = %q, want %q", in, got, want)
		}
	}
}

type stubLogger struct {
	calls    []string
	fields   []map[string]any
	contexts []context.Context
}

var _ glog.Logger = (*stubLogger)(nil)
var _ glog.FieldsLogger = (*stubLogger)(nil)

func (s *stubLogger) Trace(string, ...any) { s.calls = append(s.calls, "trace") }
func (s *stubLogger) Debug(string, ...any) { s.calls = append(s.calls, "debug") }
func (s *stubLogger) Info(string, ...any)  { s.calls = append(s.calls, "info") }
func (s *stubLogger) Warn(string, ...any)  { s.calls = append(s.calls, "warn") }
func (s *stubLogger) Error(string, ...any) { s.calls = append(s.calls, "error") }
func (s *stubLogger) Fatal(string, ...any) { s.calls = append(s.calls, "fatal") }

func (s *stubLogger) WithContext(ctx context.Context) glog.Logger {
	s.contexts = append(s.contexts, ctx)
	return s
}

func (s *stubLogger) WithFields(fields map[string]any) glog.Logger {
	s.fields = append(s.fields, maps.Clone(fields))
	return s
}
