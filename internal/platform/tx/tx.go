package tx

import "context"

// Manager wraps operations that touch both the document store and the
// SQLite projection. The default implementation provides no atomicity;
// callers repair divergence with a reindex.
type Manager interface {
	Within(ctx context.Context, fn func(context.Context) error) error
}

type NoopManager struct{}

func (NoopManager) Within(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}
