// Package session holds the signed-in state of the client. A Store is
// created once per process, initialised from the persisted session vault
// and disposed on shutdown. It is also the API client's token source and
// listens for 401 responses, so every layer sees the same session.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/uniswap/internal/client/apiclient"
	"github.com/dmitrijs2005/uniswap/internal/client/models"
	"github.com/dmitrijs2005/uniswap/internal/client/normalize"
	"github.com/dmitrijs2005/uniswap/internal/client/repositories/sessions"
	"github.com/dmitrijs2005/uniswap/internal/client/repositories/viewcache"
	"github.com/dmitrijs2005/uniswap/internal/common"
	"github.com/dmitrijs2005/uniswap/internal/logging"
)

type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Authenticator is the part of services.AuthService the store needs.
type Authenticator interface {
	Register(ctx context.Context, req models.SignUpRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
}

type Store struct {
	vault  sessions.Repository
	caches viewcache.Cache
	log    logging.Logger
	now    func() time.Time

	mu      sync.RWMutex
	auth    Authenticator
	state   State
	current *models.Session
}

var (
	_ apiclient.TokenStore = (*Store)(nil)
	_ apiclient.Observer   = (*Store)(nil)
)

type Option func(*Store)

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore builds an uninitialised store. caches may be nil, in which case
// there is nothing to purge at session boundaries.
func NewStore(vault sessions.Repository, caches viewcache.Cache, opts ...Option) *Store {
	s := &Store{
		vault:  vault,
		caches: caches,
		log:    logging.Discard(),
		now:    time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// UseAuthenticator sets the backend used by SignUp and SignIn. It is
// separate from NewStore because the authenticator's API client reads its
// token from the store.
func (s *Store) UseAuthenticator(a Authenticator) {
	s.mu.Lock()
	s.auth = a
	s.mu.Unlock()
}

// Init reads the persisted session. A stored token that is already expired
// is purged and the store becomes anonymous. Calling Init on an
// initialised store does nothing.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateUninitialized {
		s.mu.Unlock()
		return nil
	}
	s.state = StateLoading
	s.mu.Unlock()

	sess, err := s.vault.Load(ctx)
	if err != nil {
		s.setAnonymous()
		return fmt.Errorf("failed to load session: %w", err)
	}

	if sess != nil && !apiclient.TokenValid(sess.Token, s.now()) {
		s.log.Info(ctx, "persisted session expired, signing out", "user_id", sess.User.UserID)
		if err := s.vault.Purge(ctx); err != nil {
			s.setAnonymous()
			return fmt.Errorf("failed to purge expired session: %w", err)
		}
		sess = nil
	}

	if sess == nil {
		s.setAnonymous()
		return nil
	}

	s.mu.Lock()
	s.current = sess
	s.state = StateAuthenticated
	s.mu.Unlock()
	s.log.Debug(ctx, "session restored", "user_id", sess.User.UserID)
	return nil
}

// Dispose drops the in-memory session. The persisted one is kept for the
// next Init.
func (s *Store) Dispose(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateUninitialized
	s.current = nil
	return nil
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Session returns a copy of the current session.
func (s *Store) Session() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return models.Session{}, false
	}
	return *s.current, true
}

// User returns the signed-in user or common.ErrNotAuthenticated.
func (s *Store) User() (models.UserSummary, error) {
	sess, ok := s.Session()
	if !ok {
		return models.UserSummary{}, common.ErrNotAuthenticated
	}
	return sess.User, nil
}

// Token implements apiclient.TokenStore.
func (s *Store) Token(context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return "", nil
	}
	return s.current.Token, nil
}

// Purge implements apiclient.TokenStore: the token and user snapshot are
// removed and the store becomes anonymous. View caches are left alone.
func (s *Store) Purge(ctx context.Context) error {
	s.setAnonymous()
	if err := s.vault.Purge(ctx); err != nil {
		return fmt.Errorf("failed to purge session: %w", err)
	}
	return nil
}

// OnUnauthenticated implements apiclient.Observer.
func (s *Store) OnUnauthenticated(ctx context.Context) {
	if s.State() == StateAuthenticated {
		s.log.Info(ctx, "session rejected by backend")
	}
	s.setAnonymous()
}

func (s *Store) SignUp(ctx context.Context, req models.SignUpRequest) (models.Session, error) {
	auth, err := s.authenticator()
	if err != nil {
		return models.Session{}, err
	}
	if err := s.purgeCaches(ctx); err != nil {
		return models.Session{}, err
	}
	resp, err := auth.Register(ctx, req)
	if err != nil {
		return models.Session{}, err
	}
	return s.adopt(ctx, resp)
}

func (s *Store) SignIn(ctx context.Context, email, password string) (models.Session, error) {
	auth, err := s.authenticator()
	if err != nil {
		return models.Session{}, err
	}
	if err := s.purgeCaches(ctx); err != nil {
		return models.Session{}, err
	}
	resp, err := auth.Login(ctx, email, password)
	if err != nil {
		return models.Session{}, err
	}
	return s.adopt(ctx, resp)
}

// SignOut removes the persisted session and every user's view caches. The
// store ends up anonymous even when a purge fails.
func (s *Store) SignOut(ctx context.Context) error {
	if s.State() == StateUninitialized {
		return common.ErrNotInitialized
	}
	s.setAnonymous()

	var errs []error
	if err := s.vault.Purge(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to purge session: %w", err))
	}
	if err := s.purgeCaches(ctx); err != nil {
		errs = append(errs, err)
	}
	s.log.Info(ctx, "signed out")
	return errors.Join(errs...)
}

// UpdateProfile merges p into the current user snapshot and persists it.
// The backend is not contacted.
func (s *Store) UpdateProfile(ctx context.Context, p models.ProfileUpdate) (models.UserSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return models.UserSummary{}, common.ErrNotAuthenticated
	}

	merged := p.Apply(s.current.User)
	if err := s.vault.SaveUser(ctx, merged); err != nil {
		return models.UserSummary{}, fmt.Errorf("failed to save profile: %w", err)
	}
	s.current.User = merged
	return merged, nil
}

func (s *Store) authenticator() (Authenticator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == StateUninitialized || s.state == StateLoading {
		return nil, common.ErrNotInitialized
	}
	if s.auth == nil {
		return nil, fmt.Errorf("no authenticator: %w", common.ErrNotInitialized)
	}
	return s.auth, nil
}

func (s *Store) adopt(ctx context.Context, resp *models.AuthResponse) (models.Session, error) {
	sess := models.Session{Token: resp.Token, User: normalize.AuthUser(*resp)}
	if err := s.vault.Save(ctx, sess); err != nil {
		return models.Session{}, fmt.Errorf("failed to save session: %w", err)
	}

	s.mu.Lock()
	s.current = &sess
	s.state = StateAuthenticated
	s.mu.Unlock()

	s.log.Info(ctx, "signed in", "user_id", sess.User.UserID)
	return sess, nil
}

// purgeCaches drops the view caches of every user that has any.
func (s *Store) purgeCaches(ctx context.Context) error {
	if s.caches == nil {
		return nil
	}
	users, err := s.caches.Users(ctx)
	if err != nil {
		return fmt.Errorf("failed to list cached users: %w", err)
	}
	for _, id := range users {
		if err := s.caches.PurgeForUser(ctx, id); err != nil {
			return fmt.Errorf("failed to purge caches of user %d: %w", id, err)
		}
	}
	return nil
}

func (s *Store) setAnonymous() {
	s.mu.Lock()
	s.current = nil
	s.state = StateAnonymous
	s.mu.Unlock()
}
