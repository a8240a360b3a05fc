package fs

import (
	"bytes"
	"context"
	"errors"
	"os"
	"unicode/utf8"

	"github.com/fwojciec/chatexport"
)

// utf8BOM is stripped from the start of loaded files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Ensure Loader implements chatexport.Loader at compile time.
var _ chatexport.Loader = (*Loader)(nil)

// Loader reads UTF-8 HTML files from disk.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load returns the content of the HTML file at path.
// Returns ENOTFOUND if the file does not exist, EINVALID if it is not
// valid UTF-8, and EINTERNAL for other read failures.
func (l *Loader) Load(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", chatexport.Errorf(chatexport.ENOTFOUND, "HTML file not found at %s", path)
	} else if err != nil {
		return "", chatexport.Errorf(chatexport.EINTERNAL, "read %s: %v", path, err)
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", chatexport.Errorf(chatexport.EINVALID, "%s is not valid UTF-8", path)
	}

	return string(data), nil
}
