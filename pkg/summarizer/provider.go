package summarizer

import "context"

// Summarizer is the external AI collaborator invoked per note on listing.
// Implementations may be slow or fail; callers decide how to degrade.
type Summarizer interface {
	Summarize(ctx context.Context, content string) (string, error)
}
