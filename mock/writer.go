package mock

import (
	"context"

	"github.com/fwojciec/chatexport"
)

var _ chatexport.HistoryWriter = (*HistoryWriter)(nil)

// HistoryWriter is a mock implementation of chatexport.HistoryWriter.
type HistoryWriter struct {
	WriteHistoryFn func(ctx context.Context, path string, history []*chatexport.ChatMessage) error
}

func (w *HistoryWriter) WriteHistory(ctx context.Context, path string, history []*chatexport.ChatMessage) error {
	return w.WriteHistoryFn(ctx, path, history)
}
