package api

import (
	"context"
	"time"

	"cv-builder/internal/ai"
	"cv-builder/internal/cv"
	"cv-builder/internal/posting"
	"cv-builder/internal/ratelimit"
	"cv-builder/internal/storage"
)

// Store is the record store gateway: read and create-or-update by opaque
// user identifier.
type Store interface {
	Get(ctx context.Context, identifier string) (*storage.StoredRecord, error)
	Exists(ctx context.Context, identifier string) (bool, error)
	Upsert(ctx context.Context, identifier string, rec cv.Record) (*storage.StoredRecord, error)
}

// Enhancer is the AI enhancement gateway.
type Enhancer interface {
	ImproveSummary(ctx context.Context, text string) (string, error)
	CompareWithPosting(ctx context.Context, rec cv.Record, posting string) (*ai.Analysis, error)
}

// API bundles the request handlers and their collaborators. The two rate
// limiters are the only shared mutable state; each endpoint owns its own
// keyspace.
type API struct {
	store     Store
	enhancer  Enhancer // nil when no AI credential is configured
	extractor *posting.Extractor
	fetcher   *posting.Fetcher

	improveLimiter *ratelimit.Limiter
	compareLimiter *ratelimit.Limiter
}

func NewAPI(store Store, enhancer Enhancer, extractor *posting.Extractor) *API {
	return &API{
		store:          store,
		enhancer:       enhancer,
		extractor:      extractor,
		fetcher:        posting.NewFetcher(),
		improveLimiter: ratelimit.New(5, 10*time.Minute),
		compareLimiter: ratelimit.New(3, 15*time.Minute),
	}
}
