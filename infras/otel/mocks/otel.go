package mocks

import (
	"context"
	"habitrack/infras/otel"
	"slices"
	"sync"
)

// Recorder is an otel.Otel that creates no spans but remembers which scopes
// were opened and which errors were traced, so tests can assert on them.
type Recorder struct {
	mu     sync.Mutex
	spans  []string
	errors []error
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func NewOtel() otel.Otel {
	return NewRecorder()
}

// NewScope implements otel.Otel.
func (r *Recorder) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	r.mu.Lock()
	r.spans = append(r.spans, spanName)
	r.mu.Unlock()

	return ctx, &scopeImpl{recorder: r}
}

// Shutdown implements otel.Otel.
func (r *Recorder) Shutdown(_ context.Context) error {
	return nil
}

func (r *Recorder) Spans() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.spans)
}

func (r *Recorder) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.errors)
}

func (r *Recorder) traceError(err error) {
	r.mu.Lock()
	r.errors = append(r.errors, err)
	r.mu.Unlock()
}
