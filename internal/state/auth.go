package state

import "fsanano/shop-client/internal/model"

func (s *Store) SetAuthLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth.IsLoading = loading
}

func (s *Store) SetAuth(user model.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth.User = &user
	s.auth.Token = token
	s.auth.IsAuthenticated = true
	s.auth.IsLoading = false
}

func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = AuthState{}
}

// UpdateUser merges patch into the current user; it is a no-op when logged out.
func (s *Store) UpdateUser(patch model.UserPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.auth.User == nil {
		return
	}
	u := *s.auth.User
	patch.Apply(&u)
	s.auth.User = &u
}
