package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskhub/todo-api/internal/core/domain"
)

// DefaultTokenTTL is the issuance window used when the caller does not
// specify one. Short-lived on purpose: there is no refresh mechanism and
// expiry is the only invalidation.
const DefaultTokenTTL = 20 * time.Minute

// accessClaims is the wire shape of the token payload: {sub, id, role, exp}.
type accessClaims struct {
	UserID int64  `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 access tokens with an injected
// process-wide secret. It holds no mutable state.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// TTL returns the default issuance window.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue builds and signs a token carrying the identity snapshot. The claims
// are fixed at issuance: later role changes do not propagate to live tokens.
func (s *TokenService) Issue(username string, userID int64, role string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.ttl
	}
	claims := accessClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm and expiry, then extracts the identity.
// A structurally valid token missing the sub or id claim is rejected even
// though its signature checks out. All failures collapse into
// domain.ErrTokenInvalid; the cause is wrapped for server-side diagnostics.
func (s *TokenService) Verify(token string) (domain.Identity, error) {
	claims := &accessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}

	if claims.Subject == "" || claims.UserID == 0 {
		return domain.Identity{}, fmt.Errorf("%w: missing required claims", domain.ErrTokenInvalid)
	}

	return domain.Identity{
		Username: claims.Subject,
		UserID:   claims.UserID,
		Role:     claims.Role,
	}, nil
}
