package ports

import "context"

// LoginThrottle limits repeated failed login attempts per account key.
// Allow reports whether another attempt may proceed; RecordFailure counts
// a failed attempt inside the current window; Reset clears the counter
// after a successful login.
type LoginThrottle interface {
	Allow(ctx context.Context, key string) (bool, error)
	RecordFailure(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}
