package mock

import (
	"fmt"

	"github.com/fwojciec/chatexport"
)

var _ chatexport.Catalog = (*Catalog)(nil)

// Catalog is a mock implementation of chatexport.Catalog.
//
// When SprintfFn is nil, Sprintf renders the key followed by its
// arguments, e.g. "history_extracted_success [out.json]", which keeps
// assertions independent of any translation.
type Catalog struct {
	LanguageFn func() string
	SprintfFn  func(key chatexport.MessageKey, args ...any) string
}

func (c *Catalog) Language() string {
	if c.LanguageFn == nil {
		return "en"
	}
	return c.LanguageFn()
}

func (c *Catalog) Sprintf(key chatexport.MessageKey, args ...any) string {
	if c.SprintfFn != nil {
		return c.SprintfFn(key, args...)
	}
	if len(args) == 0 {
		return string(key)
	}
	return fmt.Sprintf("%s %v", key, args)
}
