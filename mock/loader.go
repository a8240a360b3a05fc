package mock

import (
	"context"

	"github.com/fwojciec/chatexport"
)

var _ chatexport.Loader = (*Loader)(nil)

// Loader is a mock implementation of chatexport.Loader.
type Loader struct {
	LoadFn func(ctx context.Context, path string) (string, error)
}

func (l *Loader) Load(ctx context.Context, path string) (string, error) {
	return l.LoadFn(ctx, path)
}
