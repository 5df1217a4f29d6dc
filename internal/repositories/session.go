package repositories

import (
	"context"
	"errors"

	"github.com/sbilibin2017/syllabus-builder/internal/docstore"
	"github.com/sbilibin2017/syllabus-builder/internal/logger"
	"github.com/sbilibin2017/syllabus-builder/internal/models"
)

// SessionRepository persists sessions in the "session" collection.
type SessionRepository struct {
	store DocumentStore
}

func NewSessionRepository(store DocumentStore) *SessionRepository {
	return &SessionRepository{store: store}
}

// Save inserts session and sets its generated id.
func (r *SessionRepository) Save(ctx context.Context, session *models.Session) (string, error) {
	id, err := r.store.Insert(ctx, docstore.CollectionSession, session)
	logger.Log.Debugw("save session", "id", id, "user_id", session.UserID, "error", err)
	if err != nil {
		return "", err
	}
	session.ID = id
	return id, nil
}

// GetByToken returns the session holding token, or nil if there is none.
func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	return r.findOne(ctx, docstore.Filter{"token": token})
}

// GetByID returns the session with the given id, or nil if there is none.
func (r *SessionRepository) GetByID(ctx context.Context, id string) (*models.Session, error) {
	return r.findOne(ctx, docstore.Filter{docstore.IDField: id})
}

func (r *SessionRepository) findOne(ctx context.Context, filter docstore.Filter) (*models.Session, error) {
	var session models.Session
	err := r.store.FindOne(ctx, docstore.CollectionSession, filter, &session)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteByToken removes every session holding token.
func (r *SessionRepository) DeleteByToken(ctx context.Context, token string) (int64, error) {
	n, err := r.store.DeleteMany(ctx, docstore.CollectionSession, docstore.Filter{"token": token})
	logger.Log.Debugw("delete sessions", "deleted", n, "error", err)
	return n, err
}
