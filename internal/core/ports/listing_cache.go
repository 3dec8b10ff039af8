package ports

import "context"

// ListingCache caches serialized public listing payloads. Implementations are
// best-effort: a cache failure must never fail the request, so Get reports a
// plain miss and Set/Invalidate swallow (but may log) their errors.
type ListingCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, payload []byte)
	Invalidate(ctx context.Context, keys ...string)
}
