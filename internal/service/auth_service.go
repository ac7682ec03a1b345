package service

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"fsanano/shop-client/internal/model"
	"fsanano/shop-client/internal/service/shopapi"
	"fsanano/shop-client/internal/state"
	"fsanano/shop-client/internal/store"
)

// SessionStore persists the login across runs.
type SessionStore interface {
	SaveSession(passphrase string, s store.Session) error
	LoadSession(passphrase string) (store.Session, bool, error)
	ClearSession() error
}

type AuthService struct {
	api        *shopapi.Client
	st         *state.Store
	sessions   SessionStore
	passphrase string
	log        *log.Logger

	mu      sync.Mutex
	lastErr string
}

func NewAuthService(api *shopapi.Client, st *state.Store, sessions SessionStore, passphrase string, logger *log.Logger) *AuthService {
	return &AuthService{api: api, st: st, sessions: sessions, passphrase: passphrase, log: logger}
}

// LastError is the message of the most recent failed login or sign-up.
func (s *AuthService) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *AuthService) setError(msg string) {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
}

func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (shopapi.Session, error) {
	return s.authenticate(ctx, "Login failed", func() (shopapi.Session, error) {
		return s.api.Login(ctx, req)
	})
}

func (s *AuthService) SignUp(ctx context.Context, req model.SignUpRequest) (shopapi.Session, error) {
	return s.authenticate(ctx, "Sign up failed", func() (shopapi.Session, error) {
		return s.api.SignUp(ctx, req)
	})
}

func (s *AuthService) authenticate(ctx context.Context, fallback string, fn func() (shopapi.Session, error)) (shopapi.Session, error) {
	s.setError("")
	s.st.SetAuthLoading(true)
	defer s.st.SetAuthLoading(false)

	sess, err := fn()
	if err != nil {
		err = fail(s.log, fallback, err)
		s.setError(Message(err))
		return shopapi.Session{}, err
	}

	s.api.SetToken(sess.Token)
	s.st.SetAuth(sess.User, sess.Token)
	s.persist(sess)
	return sess, nil
}

func (s *AuthService) persist(sess shopapi.Session) {
	if s.sessions == nil || s.passphrase == "" {
		return
	}
	err := s.sessions.SaveSession(s.passphrase, store.Session{Username: sess.User.Username, Token: sess.Token})
	if err != nil {
		s.log.Printf("Failed to persist session: %v", err)
	}
}

// Logout always clears local auth state, whatever the remote call returns.
func (s *AuthService) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		s.log.Printf("Logout error: %v", err)
	}
	s.st.Logout()
	s.api.ClearToken()
	if s.sessions != nil {
		if err := s.sessions.ClearSession(); err != nil {
			s.log.Printf("Failed to clear session: %v", err)
		}
	}
}

func (s *AuthService) UpdateUserInfo(patch model.UserPatch) {
	s.st.UpdateUser(patch)
}

// Restore reloads a saved session. It returns false, with no error, when
// there is nothing usable to restore.
func (s *AuthService) Restore(ctx context.Context) (bool, error) {
	if s.sessions == nil || s.passphrase == "" {
		return false, nil
	}
	saved, ok, err := s.sessions.LoadSession(s.passphrase)
	if err != nil {
		if errors.Is(err, store.ErrBadPassphrase) {
			return false, &Error{Message: "Saved session could not be unlocked", Err: err}
		}
		return false, err
	}
	if !ok {
		return false, nil
	}
	if store.TokenExpired(saved.Token, time.Now()) {
		s.log.Printf("Saved session for %s has expired", saved.Username)
		_ = s.sessions.ClearSession()
		return false, nil
	}

	s.api.SetToken(saved.Token)
	user, err := s.api.GetProfile(ctx)
	if err != nil {
		s.api.ClearToken()
		if shopapi.IsStatus(err, http.StatusUnauthorized) || shopapi.IsStatus(err, http.StatusForbidden) {
			_ = s.sessions.ClearSession()
			return false, nil
		}
		return false, fail(s.log, "Failed to restore session", err)
	}
	s.st.SetAuth(user, saved.Token)
	return true, nil
}
