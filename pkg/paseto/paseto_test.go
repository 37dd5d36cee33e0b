package pasetotoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	keys := NewLocalKeys()
	mgr, err := New(Config{
		Mode:      ModeLocal,
		Issuer:    "auth-service",
		Audience:  "session-service",
		AccessTTL: 15 * time.Minute,
	}, keys)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return mgr
}

func TestIssueAndVerifyAccess(t *testing.T) {
	mgr := newTestManager(t)

	userID := uuid.New()
	sessionID := uuid.New()
	primary := uuid.New()
	branches := []uuid.UUID{primary, uuid.New()}

	token, err := mgr.IssueAccess(userID, &sessionID, []string{RoleBranchManager}, branches, &primary)
	if err != nil {
		t.Fatalf("IssueAccess() error = %v", err)
	}

	claims, err := mgr.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	if claims.Type != TokenTypeAccess {
		t.Errorf("Type = %s, want %s", claims.Type, TokenTypeAccess)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.SessionID == nil || *claims.SessionID != sessionID {
		t.Errorf("SessionID = %v, want %s", claims.SessionID, sessionID)
	}
	if len(claims.BranchIDs) != 2 {
		t.Errorf("BranchIDs = %v, want 2 entries", claims.BranchIDs)
	}
	if claims.PrimaryBranchID == nil || *claims.PrimaryBranchID != primary {
		t.Errorf("PrimaryBranchID = %v, want %s", claims.PrimaryBranchID, primary)
	}
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	mgr := newTestManager(t)
	other := newTestManager(t)

	token, err := other.IssueAccess(uuid.New(), nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("IssueAccess() error = %v", err)
	}

	if _, err := mgr.Verify(token); err == nil {
		t.Error("Verify() accepted a token encrypted with a different key")
	}
}

func TestRoleChecks(t *testing.T) {
	claims := &Claims{Roles: []string{RoleBranchManager, RoleDoctor}}

	tests := []struct {
		name  string
		check func() bool
		want  bool
	}{
		{"has branch manager", func() bool { return claims.HasRole(RoleBranchManager) }, true},
		{"does not have admin", func() bool { return claims.HasRole(RoleAdmin) }, false},
		{"any of admin or doctor", func() bool { return claims.HasAnyRole(RoleAdmin, RoleDoctor) }, true},
		{"any of admin only", func() bool { return claims.HasAnyRole(RoleAdmin) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
