// Package export converts exported chat pages into JSON chat histories.
// It coordinates loading, extraction, writing, and verification, and
// reports progress through localized catalog messages.
package export

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/chatexport"
)

// Exporter converts a single HTML chat export to a JSON history file.
type Exporter struct {
	Loader    chatexport.Loader
	Extractor chatexport.Extractor
	Writer    chatexport.HistoryWriter
	Catalog   chatexport.Catalog

	// Verifier is optional. When set, every written file is read back and
	// summarized.
	Verifier chatexport.Verifier
}

// Job names the input page and the output file of one export.
type Job struct {
	Input  string
	Output string
}

// Result holds the outcome of an export.
type Result struct {
	Input    string
	Output   string
	Strategy chatexport.Strategy
	Found    int
	Messages int
	Skipped  int
	Written  bool

	// Verification is nil unless the file was written and verified.
	Verification *chatexport.Verification
}

// Export runs job and writes user-facing diagnostics to out. The returned
// Result is non-nil whenever the input was loaded, even on error.
func (e *Exporter) Export(ctx context.Context, job Job, out io.Writer) (*Result, error) {
	p := &printer{catalog: e.Catalog, w: out}

	html, err := e.Loader.Load(ctx, job.Input)
	if err != nil {
		if chatexport.ErrorCode(err) == chatexport.ENOTFOUND {
			p.println(chatexport.MsgHTMLNotFound, job.Input)
		} else {
			p.println(chatexport.MsgErrorReadingHTML, chatexport.ErrorMessage(err))
		}
		return nil, err
	}

	result := &Result{Input: job.Input, Output: job.Output}

	extraction, err := e.Extractor.Extract(html)
	if err != nil {
		if chatexport.ErrorCode(err) == chatexport.ENOTFOUND {
			p.fallbackNotice()
			p.println(chatexport.MsgNoDirectContainersFound)
		} else {
			p.println(chatexport.MsgErrorReadingHTML, chatexport.ErrorMessage(err))
		}
		return result, err
	}

	result.Strategy = extraction.Strategy
	result.Found = extraction.Found
	result.Messages = len(extraction.Messages)
	result.Skipped = len(extraction.Skipped)

	if extraction.Strategy == chatexport.StrategyContainers {
		p.fallbackNotice()
		p.println(chatexport.MsgFoundDirectContainers, extraction.Found)
	}
	for _, skip := range extraction.Skipped {
		p.skip(extraction.Strategy, skip)
	}

	if len(extraction.Messages) == 0 {
		p.println(chatexport.MsgNoHistoryExtracted)
		return result, chatexport.Errorf(chatexport.ENOTFOUND, "no chat history extracted from %s", job.Input)
	}

	if err := e.Writer.WriteHistory(ctx, job.Output, extraction.Messages); err != nil {
		p.println(chatexport.MsgErrorWritingJSON, chatexport.ErrorMessage(err))
		return result, err
	}
	result.Written = true
	p.println(chatexport.MsgHistoryExtracted, job.Output)

	if e.Verifier != nil {
		result.Verification = e.verify(ctx, p, job.Output)
	}

	return result, nil
}

// verify reads back the written file and prints a summary. Verification
// failures are reported but never fail the export.
func (e *Exporter) verify(ctx context.Context, p *printer, path string) *chatexport.Verification {
	v, err := e.Verifier.Verify(ctx, path)
	switch {
	case err == nil:
	case chatexport.ErrorCode(err) == chatexport.EINVALID:
		p.println(chatexport.MsgErrorDecodeJSON, path)
		return nil
	default:
		p.println(chatexport.MsgErrorVerification, chatexport.ErrorMessage(err))
		return nil
	}

	if v.Count == 0 {
		p.println(chatexport.MsgVerificationJSONEmpty, path)
		return v
	}
	p.println(chatexport.MsgVerificationHeader)
	p.println(chatexport.MsgVerificationCount, v.Count)
	p.println(chatexport.MsgVerificationFirst)
	fmt.Fprintln(p.w, v.First)
	if v.Count > 1 {
		p.println(chatexport.MsgVerificationLast)
		fmt.Fprintln(p.w, v.Last)
	}
	return v
}

// printer writes localized lines.
type printer struct {
	catalog chatexport.Catalog
	w       io.Writer
}

func (p *printer) println(key chatexport.MessageKey, args ...any) {
	fmt.Fprintln(p.w, p.catalog.Sprintf(key, args...))
}

// fallbackNotice explains that no conversation turns were found and the
// container scan is running instead.
func (p *printer) fallbackNotice() {
	p.println(chatexport.MsgNoTurnsFound)
	p.println(chatexport.MsgCheckHTMLStructure)
	p.println(chatexport.MsgAttemptingDirectFind)
}

func (p *printer) skip(strategy chatexport.Strategy, skip chatexport.Skip) {
	if strategy == chatexport.StrategyContainers {
		p.println(chatexport.MsgCouldNotFindTextForRole, skip.Speaker)
		return
	}
	p.println(chatexport.MsgWarningNoTextContent, skip.Speaker, skip.Position)
}
