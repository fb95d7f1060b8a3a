package domain

// Identity is the request-scoped caller resolved from a verified token.
// It is a point-in-time snapshot of the claims at issuance: a role change
// after issuance is not reflected until the token expires.
type Identity struct {
	Username string
	UserID   int64
	Role     string
}

// IsZero reports whether no identity was resolved. Operations receiving a
// zero identity must refuse to run rather than proceed anonymously.
func (i Identity) IsZero() bool {
	return i.Username == "" && i.UserID == 0
}

// IsAdmin reports whether the caller holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
