package mock

import "github.com/fwojciec/chatexport"

var _ chatexport.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of chatexport.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*chatexport.Extraction, error)
}

func (e *Extractor) Extract(html string) (*chatexport.Extraction, error) {
	return e.ExtractFn(html)
}
