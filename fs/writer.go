// Package fs provides file-based loading and storage of chat histories.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/chatexport"
)

// OutputPath derives the default JSON path for an HTML file by replacing
// its extension with ".json".
// Example: exports/chat.html → exports/chat.json
func OutputPath(htmlPath string) string {
	ext := filepath.Ext(htmlPath)
	if ext == filepath.Base(htmlPath) {
		// Dot files such as ".html" have no extension.
		ext = ""
	}
	return strings.TrimSuffix(htmlPath, ext) + ".json"
}

// MarshalHistory encodes history as indented JSON. Non-ASCII text and
// HTML-significant characters are written as-is.
func MarshalHistory(history []*chatexport.ChatMessage) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(history); err != nil {
		return nil, chatexport.Errorf(chatexport.EINTERNAL, "encode chat history: %v", err)
	}
	return buf.Bytes(), nil
}

// Ensure HistoryWriter implements chatexport.HistoryWriter at compile time.
var _ chatexport.HistoryWriter = (*HistoryWriter)(nil)

// HistoryWriter writes chat histories as JSON files.
// Files are written to a temporary sibling and renamed into place, so a
// failed write never leaves a partial file at the target path. A target
// whose content already matches is left untouched.
type HistoryWriter struct{}

// NewHistoryWriter creates a new HistoryWriter.
func NewHistoryWriter() *HistoryWriter {
	return &HistoryWriter{}
}

// WriteHistory writes history to path as a JSON array.
func (w *HistoryWriter) WriteHistory(ctx context.Context, path string, history []*chatexport.ChatMessage) error {
	if len(history) == 0 {
		return chatexport.Errorf(chatexport.EINVALID, "chat history is empty")
	}
	for _, msg := range history {
		if err := msg.Validate(); err != nil {
			return err
		}
	}

	data, err := MarshalHistory(history)
	if err != nil {
		return err
	}

	if unchanged(path, data) {
		return nil
	}
	if err := writeAtomic(path, data); err != nil {
		return chatexport.Errorf(chatexport.EINTERNAL, "write %s: %v", path, err)
	}
	return nil
}

// unchanged reports whether the file at path already holds data. The
// existing file is hashed as a stream and never loaded whole.
func unchanged(path string, data []byte) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() || info.Size() != int64(len(data)) {
		return false
	}

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return false
	}
	return h.Sum64() == xxhash.Sum64(data)
}

// writeAtomic writes data to a temporary file next to path, then renames
// it over path. The temporary file is removed on any failure.
func writeAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(0644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
