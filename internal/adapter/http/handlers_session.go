package adapthttp

import (
	"context"
	"net/http"

	"printcraft/internal/domain"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) writeSession(w http.ResponseWriter) {
	sess, ok := s.session.Current()
	body := map[string]any{"state": s.session.State().String()}
	if ok {
		body["session"] = sess
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	s.writeSession(w)
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	s.authenticate(w, r, s.session.SignIn)
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	s.authenticate(w, r, s.session.SignUp)
}

func (s *Server) authenticate(w http.ResponseWriter, r *http.Request, op func(context.Context, string, string) (domain.Session, error)) {
	var body credentialsRequest
	if err := parseJSON(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if _, err := op(r.Context(), body.Email, body.Password); err != nil {
		writeDomainError(w, err)
		return
	}
	s.writeSession(w)
}

func (s *Server) handleSignOut(w http.ResponseWriter, r *http.Request) {
	if err := s.session.SignOut(r.Context()); err != nil {
		writeDomainError(w, err)
		return
	}
	s.writeSession(w)
}
