package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/syllabus-builder/internal/docstore"
	"github.com/sbilibin2017/syllabus-builder/internal/models"
	"github.com/sbilibin2017/syllabus-builder/internal/repositories"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dbErr := errors.New("db error")

	tests := []struct {
		name      string
		email     string
		mockSetup func(users *MockUserStore, sessions *MockSessionStore, events *MockKafkaWriter)
		wantErr   error
	}{
		{
			name:  "successful registration",
			email: "Ada@Example.com",
			mockSetup: func(users *MockUserStore, sessions *MockSessionStore, events *MockKafkaWriter) {
				users.EXPECT().GetByEmail(gomock.Any(), "ada@example.com").Return(nil, nil)
				users.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *models.User) (string, error) {
						assert.Equal(t, "ada@example.com", u.Email)
						assert.NotEmpty(t, u.PasswordSalt)
						assert.NotEqual(t, "secret", u.PasswordHash)
						assert.Equal(t, "2025-03-01T12:00:00.000000Z", u.CreatedAt)
						u.ID = "u1"
						return "u1", nil
					})
				sessions.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s *models.Session) (string, error) {
						assert.Equal(t, "u1", s.UserID)
						assert.NotEmpty(t, s.Token)
						assert.Nil(t, s.UserAgent)
						assert.Equal(t, "2025-03-31T12:00:00.000000Z", s.ExpiresAt)
						s.ID = "s1"
						return "s1", nil
					})
				events.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil).Times(2)
			},
		},
		{
			name:  "email already registered",
			email: "ada@example.com",
			mockSetup: func(users *MockUserStore, _ *MockSessionStore, _ *MockKafkaWriter) {
				users.EXPECT().GetByEmail(gomock.Any(), "ada@example.com").
					Return(&models.User{ID: "u0"}, nil)
			},
			wantErr: ErrEmailTaken,
		},
		{
			name:  "concurrent registration wins",
			email: "ada@example.com",
			mockSetup: func(users *MockUserStore, _ *MockSessionStore, _ *MockKafkaWriter) {
				users.EXPECT().GetByEmail(gomock.Any(), "ada@example.com").Return(nil, nil)
				users.EXPECT().Save(gomock.Any(), gomock.Any()).Return("", docstore.ErrDuplicate)
			},
			wantErr: ErrEmailTaken,
		},
		{
			name:  "reader error",
			email: "ada@example.com",
			mockSetup: func(users *MockUserStore, _ *MockSessionStore, _ *MockKafkaWriter) {
				users.EXPECT().GetByEmail(gomock.Any(), "ada@example.com").Return(nil, dbErr)
			},
			wantErr: dbErr,
		},
		{
			name:  "session save error",
			email: "ada@example.com",
			mockSetup: func(users *MockUserStore, sessions *MockSessionStore, events *MockKafkaWriter) {
				users.EXPECT().GetByEmail(gomock.Any(), "ada@example.com").Return(nil, nil)
				users.EXPECT().Save(gomock.Any(), gomock.Any()).Return("u1", nil)
				events.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
				sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return("", dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := NewMockUserStore(ctrl)
			sessions := NewMockSessionStore(ctrl)
			events := NewMockKafkaWriter(ctrl)
			tt.mockSetup(users, sessions, events)

			svc := NewAuthService(users, sessions, nil, events, 0)
			svc.now = func() time.Time { return fixedNow }

			token, user, err := svc.Register(context.Background(), "Ada", tt.email, "secret")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.Equal(t, models.UserSummary{ID: "u1", Name: "Ada", Email: "ada@example.com"}, user)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	salt := "0123456789abcdef"
	stored := &models.User{
		ID:           "u1",
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordSalt: salt,
		PasswordHash: hashPassword(salt, "secret"),
	}

	tests := []struct {
		name      string
		email     string
		password  string
		mockSetup func(users *MockUserStore, sessions *MockSessionStore)
		wantErr   error
	}{
		{
			name:     "success",
			email:    "ADA@example.com",
			password: "secret",
			mockSetup: func(users *MockUserStore, sessions *MockSessionStore) {
				users.EXPECT().GetByEmail(gomock.Any(), "ada@example.com").Return(stored, nil)
				sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return("s1", nil)
			},
		},
		{
			name:     "wrong password",
			email:    "ada@example.com",
			password: "nope",
			mockSetup: func(users *MockUserStore, _ *MockSessionStore) {
				users.EXPECT().GetByEmail(gomock.Any(), "ada@example.com").Return(stored, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "bob@example.com",
			password: "secret",
			mockSetup: func(users *MockUserStore, _ *MockSessionStore) {
				users.EXPECT().GetByEmail(gomock.Any(), "bob@example.com").Return(nil, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := NewMockUserStore(ctrl)
			sessions := NewMockSessionStore(ctrl)
			tt.mockSetup(users, sessions)

			svc := NewAuthService(users, sessions, nil, nil, time.Hour)

			token, user, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.Equal(t, stored.Summary(), user)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := &models.Session{ID: "s1", UserID: "u1", Token: "tok"}

	tests := []struct {
		name          string
		authorization string
		mockSetup     func(sessions *MockSessionStore, cache *MockSessionCache, events *MockKafkaWriter)
		wantErr       bool
	}{
		{
			name:          "no header",
			authorization: "",
			mockSetup:     func(*MockSessionStore, *MockSessionCache, *MockKafkaWriter) {},
		},
		{
			name:          "bearer only",
			authorization: "Bearer ",
			mockSetup:     func(*MockSessionStore, *MockSessionCache, *MockKafkaWriter) {},
		},
		{
			name:          "known token",
			authorization: "Bearer tok",
			mockSetup: func(sessions *MockSessionStore, cache *MockSessionCache, events *MockKafkaWriter) {
				sessions.EXPECT().GetByToken(gomock.Any(), "tok").Return(session, nil)
				sessions.EXPECT().DeleteByToken(gomock.Any(), "tok").Return(int64(1), nil)
				cache.EXPECT().Delete(gomock.Any(), "tok").Return(nil)
				events.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
						var evt models.Event
						require.NoError(t, json.Unmarshal(msgs[0].Value, &evt))
						assert.Equal(t, models.EventSessionRevoked, evt.Type)
						assert.Equal(t, "u1", evt.UserID)
						assert.Equal(t, "s1", evt.ResourceID)
						return nil
					})
			},
		},
		{
			name:          "unknown token",
			authorization: "tok",
			mockSetup: func(sessions *MockSessionStore, cache *MockSessionCache, _ *MockKafkaWriter) {
				sessions.EXPECT().GetByToken(gomock.Any(), "tok").Return(nil, nil)
				sessions.EXPECT().DeleteByToken(gomock.Any(), "tok").Return(int64(0), nil)
				cache.EXPECT().Delete(gomock.Any(), "tok").Return(errors.New("redis down"))
			},
		},
		{
			name:          "lookup error",
			authorization: "Bearer tok",
			mockSetup: func(sessions *MockSessionStore, _ *MockSessionCache, _ *MockKafkaWriter) {
				sessions.EXPECT().GetByToken(gomock.Any(), "tok").Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
		{
			name:          "delete error",
			authorization: "Bearer tok",
			mockSetup: func(sessions *MockSessionStore, _ *MockSessionCache, _ *MockKafkaWriter) {
				sessions.EXPECT().GetByToken(gomock.Any(), "tok").Return(session, nil)
				sessions.EXPECT().DeleteByToken(gomock.Any(), "tok").Return(int64(0), errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := NewMockSessionStore(ctrl)
			cache := NewMockSessionCache(ctrl)
			events := NewMockKafkaWriter(ctrl)
			tt.mockSetup(sessions, cache, events)

			svc := NewAuthService(NewMockUserStore(ctrl), sessions, cache, events, 0)

			err := svc.Logout(context.Background(), tt.authorization)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.User{ID: "u1", Name: "Ada", Email: "ada@example.com"}
	session := &models.Session{ID: "s1", UserID: "u1", Token: "tok"}
	cached := &models.CachedSession{SessionID: "s1", UserID: "u1"}
	entry := models.CachedSession{SessionID: "s1", UserID: "u1"}
	dbErr := errors.New("db error")

	tests := []struct {
		name          string
		authorization string
		mockSetup     func(users *MockUserStore, sessions *MockSessionStore, cache *MockSessionCache)
		wantErr       error
	}{
		{
			name:          "missing header",
			authorization: "  ",
			mockSetup:     func(*MockUserStore, *MockSessionStore, *MockSessionCache) {},
			wantErr:       ErrMissingAuthorization,
		},
		{
			name:          "cache hit confirmed by id",
			authorization: "Bearer tok",
			mockSetup: func(users *MockUserStore, sessions *MockSessionStore, cache *MockSessionCache) {
				cache.EXPECT().Get(gomock.Any(), "tok").Return(cached, nil)
				sessions.EXPECT().GetByID(gomock.Any(), "s1").Return(session, nil)
				users.EXPECT().GetByID(gomock.Any(), "u1").Return(user, nil)
			},
		},
		{
			name:          "cache hit for revoked session",
			authorization: "Bearer tok",
			mockSetup: func(_ *MockUserStore, sessions *MockSessionStore, cache *MockSessionCache) {
				cache.EXPECT().Get(gomock.Any(), "tok").Return(cached, nil)
				sessions.EXPECT().GetByID(gomock.Any(), "s1").Return(nil, nil)
				cache.EXPECT().Delete(gomock.Any(), "tok").Return(errors.New("redis down"))
				sessions.EXPECT().GetByToken(gomock.Any(), "tok").Return(nil, nil)
			},
			wantErr: ErrInvalidSession,
		},
		{
			name:          "cache hit naming another token's session",
			authorization: "Bearer other",
			mockSetup: func(_ *MockUserStore, sessions *MockSessionStore, cache *MockSessionCache) {
				cache.EXPECT().Get(gomock.Any(), "other").Return(cached, nil)
				sessions.EXPECT().GetByID(gomock.Any(), "s1").Return(session, nil)
				cache.EXPECT().Delete(gomock.Any(), "other").Return(nil)
				sessions.EXPECT().GetByToken(gomock.Any(), "other").Return(nil, nil)
			},
			wantErr: ErrInvalidSession,
		},
		{
			name:          "cache hit store error",
			authorization: "Bearer tok",
			mockSetup: func(_ *MockUserStore, sessions *MockSessionStore, cache *MockSessionCache) {
				cache.EXPECT().Get(gomock.Any(), "tok").Return(cached, nil)
				sessions.EXPECT().GetByID(gomock.Any(), "s1").Return(nil, dbErr)
			},
			wantErr: dbErr,
		},
		{
			name:          "cache miss without prefix",
			authorization: " tok ",
			mockSetup: func(users *MockUserStore, sessions *MockSessionStore, cache *MockSessionCache) {
				cache.EXPECT().Get(gomock.Any(), "tok").Return(nil, repositories.ErrCacheMiss)
				sessions.EXPECT().GetByToken(gomock.Any(), "tok").Return(session, nil)
				cache.EXPECT().Set(gomock.Any(), "tok", entry).Return(nil)
				users.EXPECT().GetByID(gomock.Any(), "u1").Return(user, nil)
			},
		},
		{
			name:          "cache unavailable",
			authorization: "Bearer tok",
			mockSetup: func(users *MockUserStore, sessions *MockSessionStore, cache *MockSessionCache) {
				cache.EXPECT().Get(gomock.Any(), "tok").Return(nil, errors.New("redis down"))
				sessions.EXPECT().GetByToken(gomock.Any(), "tok").Return(session, nil)
				cache.EXPECT().Set(gomock.Any(), "tok", entry).Return(errors.New("redis down"))
				users.EXPECT().GetByID(gomock.Any(), "u1").Return(user, nil)
			},
		},
		{
			name:          "unknown token",
			authorization: "Bearer nope",
			mockSetup: func(_ *MockUserStore, sessions *MockSessionStore, cache *MockSessionCache) {
				cache.EXPECT().Get(gomock.Any(), "nope").Return(nil, repositories.ErrCacheMiss)
				sessions.EXPECT().GetByToken(gomock.Any(), "nope").Return(nil, nil)
			},
			wantErr: ErrInvalidSession,
		},
		{
			name:          "user deleted",
			authorization: "Bearer tok",
			mockSetup: func(users *MockUserStore, sessions *MockSessionStore, cache *MockSessionCache) {
				cache.EXPECT().Get(gomock.Any(), "tok").Return(cached, nil)
				sessions.EXPECT().GetByID(gomock.Any(), "s1").Return(session, nil)
				users.EXPECT().GetByID(gomock.Any(), "u1").Return(nil, nil)
				cache.EXPECT().Delete(gomock.Any(), "tok").Return(nil)
			},
			wantErr: ErrUserGone,
		},
		{
			name:          "session store error",
			authorization: "Bearer tok",
			mockSetup: func(_ *MockUserStore, sessions *MockSessionStore, cache *MockSessionCache) {
				cache.EXPECT().Get(gomock.Any(), "tok").Return(nil, repositories.ErrCacheMiss)
				sessions.EXPECT().GetByToken(gomock.Any(), "tok").Return(nil, dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := NewMockUserStore(ctrl)
			sessions := NewMockSessionStore(ctrl)
			cache := NewMockSessionCache(ctrl)
			tt.mockSetup(users, sessions, cache)

			svc := NewAuthService(users, sessions, cache, nil, 0)

			got, err := svc.Authenticate(context.Background(), tt.authorization)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user, got)
		})
	}
}

func TestAuthErrorsAreUnauthorized(t *testing.T) {
	for _, err := range []error{ErrMissingAuthorization, ErrInvalidSession, ErrUserGone} {
		assert.ErrorIs(t, err, ErrUnauthorized)
	}
	assert.NotErrorIs(t, ErrInvalidCredentials, ErrUnauthorized)
}

func TestAuthService_MemoryStore(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()
	svc := NewAuthService(
		repositories.NewUserRepository(store),
		repositories.NewSessionRepository(store),
		nil, nil, 0,
	)

	token, user, err := svc.Register(ctx, "Ada", "Ada@Example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)

	t.Run("DuplicateEmailIgnoresCase", func(t *testing.T) {
		_, _, err := svc.Register(ctx, "Other", "ADA@example.COM", "x")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("LoginIssuesNewSession", func(t *testing.T) {
		second, got, err := svc.Login(ctx, "ada@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, user, got)
		assert.NotEqual(t, token, second)

		// Both sessions stay valid.
		for _, tok := range []string{token, second} {
			u, err := svc.Authenticate(ctx, "Bearer "+tok)
			require.NoError(t, err)
			assert.Equal(t, user.ID, u.ID)
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "ada@example.com", "Secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("LogoutRevokesToken", func(t *testing.T) {
		require.NoError(t, svc.Logout(ctx, "Bearer "+token))
		_, err := svc.Authenticate(ctx, "Bearer "+token)
		assert.ErrorIs(t, err, ErrInvalidSession)

		assert.NoError(t, svc.Logout(ctx, "Bearer "+token))
		assert.NoError(t, svc.Logout(ctx, ""))
	})
}

// stickyCache is an in-process SessionCache whose Delete always fails,
// like a Redis that accepts writes but times out on DEL.
type stickyCache struct {
	mu      sync.Mutex
	entries map[string]models.CachedSession
}

func newStickyCache() *stickyCache {
	return &stickyCache{entries: map[string]models.CachedSession{}}
}

func (c *stickyCache) Get(_ context.Context, token string) (*models.CachedSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[token]
	if !ok {
		return nil, repositories.ErrCacheMiss
	}
	return &entry, nil
}

func (c *stickyCache) Set(_ context.Context, token string, entry models.CachedSession) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[token] = entry
	return nil
}

func (c *stickyCache) Delete(context.Context, string) error {
	return errors.New("redis: i/o timeout")
}

func TestAuthService_LoggedOutTokenWithStaleCache(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()
	cache := newStickyCache()
	svc := NewAuthService(
		repositories.NewUserRepository(store),
		repositories.NewSessionRepository(store),
		cache, nil, 0,
	)

	token, _, err := svc.Register(ctx, "Ada", "ada@example.com", "secret")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "Bearer "+token)
	require.NoError(t, err)
	entry, err := cache.Get(ctx, token)
	require.NoError(t, err)

	t.Run("eviction fails on logout", func(t *testing.T) {
		require.NoError(t, svc.Logout(ctx, "Bearer "+token))

		got, err := svc.Authenticate(ctx, "Bearer "+token)
		assert.ErrorIs(t, err, ErrInvalidSession)
		assert.Nil(t, got)
	})

	t.Run("entry written back after logout", func(t *testing.T) {
		// An Authenticate that read the session before Logout deleted it
		// may still write the cache entry afterwards.
		require.NoError(t, cache.Set(ctx, token, *entry))

		got, err := svc.Authenticate(ctx, "Bearer "+token)
		assert.ErrorIs(t, err, ErrInvalidSession)
		assert.Nil(t, got)
	})

	t.Run("other sessions unaffected", func(t *testing.T) {
		second, _, err := svc.Login(ctx, "ada@example.com", "secret")
		require.NoError(t, err)
		for i := 0; i < 2; i++ {
			_, err := svc.Authenticate(ctx, "Bearer "+second)
			require.NoError(t, err)
		}
	})
}
