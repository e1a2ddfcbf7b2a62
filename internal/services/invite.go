package services

import (
	"crypto/subtle"
	"strings"

	"ipe/internal/domain"
)

type inviteGate struct {
	code             []byte
	requireForSignUp bool
}

// NewInviteGate returns an InviteGate that accepts exactly code (surrounding whitespace ignored).
// A blank code accepts nothing.
func NewInviteGate(code string, requireForSignUp bool) domain.InviteGate {
	return &inviteGate{
		code:             []byte(strings.TrimSpace(code)),
		requireForSignUp: requireForSignUp,
	}
}

func (g *inviteGate) Verify(code string) error {
	if len(g.code) == 0 || subtle.ConstantTimeCompare([]byte(strings.TrimSpace(code)), g.code) != 1 {
		return domain.ErrInvalidInviteCode
	}
	return nil
}

func (g *inviteGate) RequiredForSignUp() bool {
	return g.requireForSignUp
}
