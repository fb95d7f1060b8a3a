package ports

import "context"

// LoginLimiter throttles repeated failed logins per username. Implementations
// should fail open: a limiter backend outage must not block logins.
type LoginLimiter interface {
	// TooMany reports whether the username has exceeded the failure threshold.
	TooMany(ctx context.Context, username string) (bool, error)
	// Fail records one failed attempt.
	Fail(ctx context.Context, username string) error
	// Reset clears the failure counter after a successful login.
	Reset(ctx context.Context, username string) error
}
