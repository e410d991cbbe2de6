// Package resource limits what dataset loading may consume.
//
// A Controller governs three resources:
//
//   - Memory: a fail-fast budget for decoded records
//   - Concurrency: the number of loads that may run at the same time
//   - IO: a token-bucket rate limit on bytes read from a blob store
//
// Memory is tracked with a weighted semaphore and an atomic counter and is
// never waited for. A load reserves what it knows up front and grows the
// reservation once a header reveals the decoded size:
//
//	res, err := rc.Reserve(blob.Size())
//	if err != nil {
//	    // ErrMemoryLimitExceeded
//	}
//	defer res.Release()
//	...
//	err = res.Grow(decodedBytes)
//
// Reads are throttled by wrapping the source:
//
//	r := resource.NewRateLimitedReader(ctx, src, rc)
//
// All methods handle a nil Controller gracefully - they become no-ops.
package resource
