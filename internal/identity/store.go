// Package identity owns the current session: who is acting, anonymous or
// signed in. It is the source of truth every namespace-scoped store rebinds
// against.
package identity

import (
	"errors"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/gitsish/aaishop-ibm-project/internal/domain"
	"github.com/gitsish/aaishop-ibm-project/internal/storage"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	// UsersKey holds the credential table.
	UsersKey = "auth.users"
	// SessionKey holds the current public identity, when present.
	SessionKey = "auth.session"
)

// Listener observes identity changes. A nil identity means logged out.
// Listeners run synchronously inside the transition that changed the
// session, before the triggering Register/Login/Logout returns, so no
// later mutation can observe a half-switched namespace.
type Listener func(*domain.Identity)

// Store keeps the in-memory session and the persisted credential table in
// step. The persisted session record is trusted as-is at load time; purely
// local storage has nothing to validate it against.
type Store struct {
	store  storage.Store
	logger *log.Logger

	mu        sync.Mutex
	current   *domain.Identity
	listeners []Listener
}

// New loads the persisted session, if any, and returns the store. The
// backing store is required.
func New(store storage.Store, logger *log.Logger) (*Store, error) {
	if store == nil {
		return nil, errors.New("identity: storage is required")
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Store{store: store, logger: logger}
	var session domain.Identity
	if storage.Load(store, SessionKey, &session) && session.ID != "" {
		s.current = &session
	}
	return s, nil
}

// Subscribe registers a listener for identity changes. It is not called for
// the session restored at construction; bind initial state directly.
func (s *Store) Subscribe(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Current returns the active identity, or false when anonymous.
func (s *Store) Current() (domain.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return domain.Identity{}, false
	}
	return *s.current, true
}

// Register creates a credential record and signs the new identity in.
// Returns domain.ErrDuplicateEmail when the email is already taken.
func (s *Store) Register(name, email, password string) (domain.Identity, error) {
	email = normalizeEmail(email)
	if email == "" {
		return domain.Identity{}, errors.New("email required")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(password)), bcrypt.DefaultCost)
	if err != nil {
		return domain.Identity{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.loadUsers()
	for _, u := range users {
		if u.Email == email {
			return domain.Identity{}, domain.ErrDuplicateEmail
		}
	}
	cred := domain.Credential{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hashed),
	}
	users = append(users, cred)
	storage.Save(s.store, UsersKey, users)

	id := cred.Public()
	s.commitLocked(&id)
	s.logger.Printf("registered %s", email)
	return id, nil
}

// Login matches email and password against the credential table and signs
// the matched identity in. Any mismatch is domain.ErrInvalidCredentials.
func (s *Store) Login(email, password string) (domain.Identity, error) {
	email = normalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.loadUsers() {
		if u.Email != email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(strings.TrimSpace(password))); err != nil {
			break
		}
		id := u.Public()
		s.commitLocked(&id)
		s.logger.Printf("logged in %s", email)
		return id, nil
	}
	return domain.Identity{}, domain.ErrInvalidCredentials
}

// Logout clears the session. Safe to call while already anonymous.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	s.logger.Printf("logged out %s", s.current.Email)
	s.commitLocked(nil)
}

// commitLocked swaps the session, persists it and notifies listeners while
// still holding the lock, so rebinds complete before the transition returns.
func (s *Store) commitLocked(id *domain.Identity) {
	s.current = id
	if id == nil {
		s.store.Delete(SessionKey)
	} else {
		storage.Save(s.store, SessionKey, *id)
	}
	for _, fn := range s.listeners {
		fn(id)
	}
}

func (s *Store) loadUsers() []domain.Credential {
	var users []domain.Credential
	storage.Load(s.store, UsersKey, &users)
	return users
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
