package app

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"printcraft/internal/domain"
	"printcraft/internal/persist"
)

// SessionSlot is the persistence key of the session snapshot.
const SessionSlot = "session_v1"

// SessionStore holds at most one signed-in identity. It is a mock identity
// holder: with the default verifier every sign-in succeeds.
type SessionStore struct {
	mu       sync.Mutex
	slot     *persist.Slot[domain.Session]
	current  *domain.Session
	newID    func() string
	verifier domain.CredentialVerifier
	log      *zap.Logger
}

// NewSessionStore creates a SessionStore from the persisted snapshot. A
// missing or unreadable snapshot starts anonymous.
func NewSessionStore(ctx context.Context, a *persist.Adapter, opts ...StoreOption) *SessionStore {
	o := applyOptions(opts)
	s := &SessionStore{
		slot:     persist.NewSlot[domain.Session](a, SessionSlot),
		newID:    o.newID,
		verifier: o.verifier,
		log:      o.log,
	}
	if sess, ok := s.slot.Load(ctx); ok && sess.ID != "" {
		s.current = &sess
	}
	return s
}

// SignIn replaces the current identity with a new one for email.
func (s *SessionStore) SignIn(ctx context.Context, email, credential string) (domain.Session, error) {
	return s.authenticate(ctx, "sign-in", email, credential)
}

// SignUp behaves exactly like SignIn; account creation is not modelled.
func (s *SessionStore) SignUp(ctx context.Context, email, credential string) (domain.Session, error) {
	return s.authenticate(ctx, "sign-up", email, credential)
}

func (s *SessionStore) authenticate(ctx context.Context, op, email, credential string) (domain.Session, error) {
	if err := s.verifier.Verify(ctx, email, credential); err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := domain.Session{ID: s.newID(), Email: email}
	if err := s.slot.Save(ctx, sess); err != nil {
		return domain.Session{}, err
	}
	s.current = &sess
	s.log.Info("session started", zap.String("op", op), zap.String("session_id", sess.ID))
	return sess, nil
}

// SignOut forgets the current identity and clears the persisted key.
func (s *SessionStore) SignOut(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.slot.Remove(ctx); err != nil {
		return err
	}
	s.current = nil
	return nil
}

// Current returns the signed-in identity, if any.
func (s *SessionStore) Current() (domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return domain.Session{}, false
	}
	return *s.current, true
}

// State reports whether someone is signed in.
func (s *SessionStore) State() domain.AuthState {
	if _, ok := s.Current(); ok {
		return domain.Authenticated
	}
	return domain.Anonymous
}
