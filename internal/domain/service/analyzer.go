package service

import "context"

// Analyzer is the opaque batch analysis boundary: free text in, raw
// response text out. The core never sees the transport; response
// tolerance (fences, truncation) is handled by the batch package.
type Analyzer interface {
	Analyze(ctx context.Context, prompt string) (string, error)
}
