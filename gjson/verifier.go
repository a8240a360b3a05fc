// Package gjson verifies written chat history files using tidwall/gjson.
package gjson

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/fwojciec/chatexport"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Ensure Verifier implements chatexport.Verifier at compile time.
var _ chatexport.Verifier = (*Verifier)(nil)

// Verifier reads back a chat history file and summarizes it.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Verify reads the JSON file at path and returns its message count along
// with the first and last messages.
func (v *Verifier) Verify(ctx context.Context, path string) (*chatexport.Verification, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, chatexport.Errorf(chatexport.ENOTFOUND, "JSON file %s was not created", path)
	} else if err != nil {
		return nil, chatexport.Errorf(chatexport.EINTERNAL, "read %s: %v", path, err)
	}

	if !gjson.ValidBytes(data) {
		return nil, chatexport.Errorf(chatexport.EINVALID, "%s is not valid JSON", path)
	}
	history := gjson.ParseBytes(data)
	if !history.IsArray() {
		return nil, chatexport.Errorf(chatexport.EINVALID, "%s does not contain a JSON array", path)
	}

	count := int(history.Get("#").Int())
	result := &chatexport.Verification{Count: count}
	if count > 0 {
		result.First = indent(history.Get("0").Raw)
	}
	if count > 1 {
		result.Last = indent(history.Get(strconv.Itoa(count - 1)).Raw)
	}
	return result, nil
}

// indent reformats a raw JSON value with two-space indentation.
func indent(raw string) string {
	return strings.TrimSpace(string(pretty.Pretty([]byte(raw))))
}
