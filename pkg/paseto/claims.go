package pasetotoken

import (
	"time"

	"github.com/google/uuid"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Platform roles carried in access tokens. Issued by the auth-service;
// this service only verifies them.
const (
	RoleAdmin         = "ADMIN"
	RoleBranchManager = "BRANCH_MANAGER"
	RoleDoctor        = "DOCTOR"
)

// Claims is the app-facing token payload.
type Claims struct {
	Type TokenType

	UserID    uuid.UUID
	SessionID *uuid.UUID

	// Platform roles, e.g. ADMIN, BRANCH_MANAGER.
	Roles []string

	// Branches the principal is a member of, plus their primary branch.
	BranchIDs       []uuid.UUID
	PrimaryBranchID *uuid.UUID

	Issuer   string
	Audience string

	IssuedAt    time.Time
	NotBefore   time.Time
	ExpiresAt   time.Time
	TokenID     string // jti
	Subject     string
	RawFooter   []byte
	RawClaimsJS []byte
}

// HasRole reports whether the principal carries the given role.
func (c *Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether the principal carries at least one of the roles.
func (c *Claims) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if c.HasRole(r) {
			return true
		}
	}
	return false
}

// IsExpired reports whether the token has expired.
func (c *Claims) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}
