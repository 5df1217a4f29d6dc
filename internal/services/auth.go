package services

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sbilibin2017/syllabus-builder/internal/docstore"
	"github.com/sbilibin2017/syllabus-builder/internal/logger"
	"github.com/sbilibin2017/syllabus-builder/internal/models"
	"github.com/sbilibin2017/syllabus-builder/internal/repositories"
)

// DefaultSessionTTL is the advisory session lifetime written to expires_at.
const DefaultSessionTTL = 30 * 24 * time.Hour

// Error variables
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")

	ErrMissingAuthorization = fmt.Errorf("%w: missing authorization header", ErrUnauthorized)
	ErrInvalidSession       = fmt.Errorf("%w: invalid session token", ErrUnauthorized)
	ErrUserGone             = fmt.Errorf("%w: user not found", ErrUnauthorized)
)

// UserStore reads and writes users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Save(ctx context.Context, user *models.User) (string, error)
}

// SessionStore reads and writes sessions.
type SessionStore interface {
	Save(ctx context.Context, session *models.Session) (string, error)
	GetByToken(ctx context.Context, token string) (*models.Session, error)
	GetByID(ctx context.Context, id string) (*models.Session, error)
	DeleteByToken(ctx context.Context, token string) (int64, error)
}

// SessionCache caches token to session lookups. Entries are hints only:
// every hit is confirmed against the SessionStore.
type SessionCache interface {
	Get(ctx context.Context, token string) (*models.CachedSession, error)
	Set(ctx context.Context, token string, entry models.CachedSession) error
	Delete(ctx context.Context, token string) error
}

// AuthService handles registration, login, logout and bearer authentication.
// Sessions never expire: expires_at is written for clients but not checked.
type AuthService struct {
	users      UserStore
	sessions   SessionStore
	cache      SessionCache // optional
	events     KafkaWriter  // optional
	sessionTTL time.Duration
	now        func() time.Time
}

// NewAuthService creates a new AuthService. cache and events may be nil.
func NewAuthService(users UserStore, sessions SessionStore, cache SessionCache, events KafkaWriter, sessionTTL time.Duration) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	return &AuthService{
		users:      users,
		sessions:   sessions,
		cache:      cache,
		events:     events,
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
}

// Register creates a user and a first session for it.
func (svc *AuthService) Register(ctx context.Context, name, email, password string) (string, models.UserSummary, error) {
	email = strings.ToLower(email)

	existing, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "error", err)
		return "", models.UserSummary{}, err
	}
	if existing != nil {
		logger.Log.Infow("email already registered", "user_id", existing.ID)
		return "", models.UserSummary{}, ErrEmailTaken
	}

	salt, err := newSalt()
	if err != nil {
		return "", models.UserSummary{}, err
	}

	ts := models.Timestamp(svc.now())
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordSalt: salt,
		PasswordHash: hashPassword(salt, password),
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	id, err := svc.users.Save(ctx, user)
	if err != nil {
		if errors.Is(err, docstore.ErrDuplicate) {
			// Lost a race with a concurrent registration.
			return "", models.UserSummary{}, ErrEmailTaken
		}
		logger.Log.Errorw("failed to save user", "error", err)
		return "", models.UserSummary{}, err
	}
	user.ID = id
	publishEvent(ctx, svc.events, models.EventUserRegistered, user.ID, user.ID)

	token, err := svc.openSession(ctx, user.ID)
	if err != nil {
		return "", models.UserSummary{}, err
	}
	return token, user.Summary(), nil
}

// Login checks credentials and opens a new session. Existing sessions stay valid.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, models.UserSummary, error) {
	user, err := svc.users.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		logger.Log.Errorw("failed to get user", "error", err)
		return "", models.UserSummary{}, err
	}
	if user == nil {
		return "", models.UserSummary{}, ErrInvalidCredentials
	}
	if !verifyPassword(user.PasswordSalt, password, user.PasswordHash) {
		logger.Log.Infow("invalid credentials", "user_id", user.ID)
		return "", models.UserSummary{}, ErrInvalidCredentials
	}

	token, err := svc.openSession(ctx, user.ID)
	if err != nil {
		return "", models.UserSummary{}, err
	}
	return token, user.Summary(), nil
}

// Logout deletes every session holding the bearer token in authorization.
// A missing header or an unknown token is not an error.
func (svc *AuthService) Logout(ctx context.Context, authorization string) error {
	token := bearerToken(authorization)
	if token == "" {
		return nil
	}

	session, err := svc.sessions.GetByToken(ctx, token)
	if err != nil {
		logger.Log.Errorw("failed to get session", "error", err)
		return err
	}

	n, err := svc.sessions.DeleteByToken(ctx, token)
	if err != nil {
		logger.Log.Errorw("failed to delete sessions", "error", err)
		return err
	}
	svc.evict(ctx, token)

	if n > 0 && session != nil {
		publishEvent(ctx, svc.events, models.EventSessionRevoked, session.UserID, session.ID)
	}
	return nil
}

// Authenticate resolves the bearer token in authorization to its user.
// Every failure wraps ErrUnauthorized except store errors.
func (svc *AuthService) Authenticate(ctx context.Context, authorization string) (*models.User, error) {
	if strings.TrimSpace(authorization) == "" {
		return nil, ErrMissingAuthorization
	}
	token := bearerToken(authorization)

	session, err := svc.resolveSession(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := svc.users.GetByID(ctx, session.UserID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", session.UserID, "error", err)
		return nil, err
	}
	if user == nil {
		svc.evict(ctx, token)
		return nil, ErrUserGone
	}
	return user, nil
}

// resolveSession returns the stored session for token. A cached entry only
// saves the token lookup: the session it names must still exist and hold
// token, otherwise the entry is dropped and the store is asked by token.
func (svc *AuthService) resolveSession(ctx context.Context, token string) (*models.Session, error) {
	if cached := svc.cachedSession(ctx, token); cached != nil {
		session, err := svc.sessions.GetByID(ctx, cached.SessionID)
		if err != nil {
			logger.Log.Errorw("failed to get session", "session_id", cached.SessionID, "error", err)
			return nil, err
		}
		if session != nil && session.Token == token {
			return session, nil
		}
		svc.evict(ctx, token)
	}

	session, err := svc.sessions.GetByToken(ctx, token)
	if err != nil {
		logger.Log.Errorw("failed to get session", "error", err)
		return nil, err
	}
	if session == nil {
		return nil, ErrInvalidSession
	}

	if svc.cache != nil {
		entry := models.CachedSession{SessionID: session.ID, UserID: session.UserID}
		if err := svc.cache.Set(ctx, token, entry); err != nil {
			logger.Log.Warnw("failed to cache session", "session_id", session.ID, "error", err)
		}
	}
	return session, nil
}

func (svc *AuthService) openSession(ctx context.Context, userID string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}

	now := svc.now()
	session := &models.Session{
		UserID:    userID,
		Token:     token,
		CreatedAt: models.Timestamp(now),
		ExpiresAt: models.Timestamp(now.Add(svc.sessionTTL)),
	}
	id, err := svc.sessions.Save(ctx, session)
	if err != nil {
		logger.Log.Errorw("failed to save session", "user_id", userID, "error", err)
		return "", err
	}
	session.ID = id
	publishEvent(ctx, svc.events, models.EventSessionCreated, userID, session.ID)
	return token, nil
}

// cachedSession returns nil on a miss or when no cache is configured.
func (svc *AuthService) cachedSession(ctx context.Context, token string) *models.CachedSession {
	if svc.cache == nil {
		return nil
	}
	entry, err := svc.cache.Get(ctx, token)
	if err != nil {
		if !errors.Is(err, repositories.ErrCacheMiss) {
			logger.Log.Warnw("session cache unavailable", "error", err)
		}
		return nil
	}
	return entry
}

func (svc *AuthService) evict(ctx context.Context, token string) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Delete(ctx, token); err != nil {
		logger.Log.Warnw("failed to evict cached session", "error", err)
	}
}

// bearerToken strips an optional "Bearer " prefix from an Authorization value.
func bearerToken(authorization string) string {
	token := strings.TrimSpace(authorization)
	token = strings.TrimPrefix(token, "Bearer ")
	return strings.TrimSpace(token)
}
