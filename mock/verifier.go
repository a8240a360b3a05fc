package mock

import (
	"context"

	"github.com/fwojciec/chatexport"
)

var _ chatexport.Verifier = (*Verifier)(nil)

// Verifier is a mock implementation of chatexport.Verifier.
type Verifier struct {
	VerifyFn func(ctx context.Context, path string) (*chatexport.Verification, error)
}

func (v *Verifier) Verify(ctx context.Context, path string) (*chatexport.Verification, error) {
	return v.VerifyFn(ctx, path)
}
