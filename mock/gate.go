package mock

import (
	"context"

	"github.com/tkondo/wikitoc"
)

var _ wikitoc.Gate = (*Gate)(nil)

// Gate is a mock implementation of wikitoc.Gate. A zero Gate never waits.
type Gate struct {
	WaitFn func(ctx context.Context) error
}

func (g *Gate) Wait(ctx context.Context) error {
	if g.WaitFn == nil {
		return nil
	}
	return g.WaitFn(ctx)
}
