package domain

import (
	"context"
	"errors"
)

// ErrCredentialRejected is returned when a CredentialVerifier refuses a
// sign-in. The default verifier never produces it.
var ErrCredentialRejected = errors.New("credential rejected")

// Session is the single logged-in identity.
type Session struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AuthState is the state of the session store.
type AuthState int

const (
	Anonymous AuthState = iota
	Authenticated
)

func (s AuthState) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// CredentialVerifier is the port for an external identity check.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, credential string) error
}

// AcceptAll is a CredentialVerifier that accepts every credential.
type AcceptAll struct{}

// Verify always succeeds.
func (AcceptAll) Verify(context.Context, string, string) error { return nil }
