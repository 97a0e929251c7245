package otel

import (
	"context"
	"io"
	"testing"

	"orderdesk/pkg/logger"
)

func TestGetTraceIDWithoutSpan(t *testing.T) {
	if id := GetTraceID(context.Background()); id != "" {
		t.Fatalf("expected empty trace id, got %q", id)
	}
}

func TestSpansCarryTraceID(t *testing.T) {
	log := logger.New(io.Discard, logger.LevelError, "test", GetTraceID)
	tp, shutdown, err := InitTracing(log, Config{ServiceName: "test", Probability: 1})
	if err != nil {
		t.Fatalf("init tracing: %v", err)
	}
	defer shutdown(context.Background())

	ctx, root := InjectTracing(context.Background(), tp.Tracer("test"))
	defer root.End()
	id := GetTraceID(ctx)
	if id == "" {
		t.Fatal("expected a trace id on the request span")
	}
	child, span := AddSpan(ctx, "child")
	defer span.End()
	if GetTraceID(child) != id {
		t.Fatalf("child span should share the trace id")
	}
}

func TestInjectTracingSpanEndsWithCaller(t *testing.T) {
	log := logger.New(io.Discard, logger.LevelError, "test", GetTraceID)
	tp, shutdown, err := InitTracing(log, Config{ServiceName: "test", Probability: 1})
	if err != nil {
		t.Fatalf("init tracing: %v", err)
	}
	defer shutdown(context.Background())

	_, span := InjectTracing(context.Background(), tp.Tracer("test"))
	if !span.IsRecording() {
		t.Fatal("request span should record until the caller ends it")
	}
	span.End()
	if span.IsRecording() {
		t.Fatal("request span should stop recording once ended")
	}
}
