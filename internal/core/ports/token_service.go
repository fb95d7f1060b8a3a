package ports

import (
	"time"

	"github.com/taskhub/todo-api/internal/core/domain"
)

// TokenService issues and verifies signed bearer tokens. Both operations are
// pure functions of (input, secret, current time) and safe for concurrent use.
type TokenService interface {
	Issue(username string, userID int64, role string, ttl time.Duration) (string, error)
	Verify(token string) (domain.Identity, error)
}
