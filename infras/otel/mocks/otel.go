// Package mocks provides in-memory otel.Otel implementations for tests.
package mocks

import (
	"context"
	"coworking/infras/otel"
	"slices"
	"sync"
)

type noopScope struct{}

func (noopScope) End() {}
func (noopScope) TraceError(_ error) {}
func (noopScope) TraceIfError(_ error) {}
func (noopScope) AddEvent(_ string) {}
func (noopScope) SetAttribute(_ string, _ any) {}
func (noopScope) SetAttributes(_ map[string]any) {}

type noopOtel struct{}

func (noopOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, noopScope{}
}

func (noopOtel) Shutdown(_ context.Context) error {
	return nil
}

// NewOtel returns an otel.Otel whose scopes discard everything.
func NewOtel() otel.Otel {
	return noopOtel{}
}

// Recorder is an otel.Otel that remembers the spans opened and the errors traced on them.
type Recorder struct {
	mu     sync.Mutex
	spans  []string
	errors map[string][]error
}

func NewRecorder() *Recorder {
	return &Recorder{errors: map[string][]error{}}
}

func (r *Recorder) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.spans = append(r.spans, spanName)

	return ctx, &recordingScope{recorder: r, span: spanName}
}

func (r *Recorder) Shutdown(_ context.Context) error {
	return nil
}

// Spans returns the span names in the order they were opened.
func (r *Recorder) Spans() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.spans)
}

// Errors returns the errors traced on spans named span.
func (r *Recorder) Errors(span string) []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.errors[span])
}

type recordingScope struct {
	noopScope

	recorder *Recorder
	span     string
}

func (s *recordingScope) TraceError(err error) {
	s.recorder.mu.Lock()
	defer s.recorder.mu.Unlock()

	s.recorder.errors[s.span] = append(s.recorder.errors[s.span], err)
}

func (s *recordingScope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}
