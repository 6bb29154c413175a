package wikitoc

import "context"

// Gate serializes outbound fetches so that no two fetches issued by the
// same process begin less than MinRequestInterval apart, even under
// concurrent invocation. The wait is cancellable through the context.
type Gate interface {
	Wait(ctx context.Context) error
}
