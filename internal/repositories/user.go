package repositories

import (
	"context"
	"errors"

	"github.com/sbilibin2017/syllabus-builder/internal/docstore"
	"github.com/sbilibin2017/syllabus-builder/internal/logger"
	"github.com/sbilibin2017/syllabus-builder/internal/models"
)

// UserRepository persists users in the "user" collection.
type UserRepository struct {
	store DocumentStore
}

func NewUserRepository(store DocumentStore) *UserRepository {
	return &UserRepository{store: store}
}

// GetByEmail returns the user with the given email, or nil if there is none.
// The email is expected to be lowercased by the caller.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, docstore.Filter{"email": email})
}

// GetByID returns the user with the given id, or nil if there is none.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, docstore.Filter{docstore.IDField: id})
}

// Save inserts user and sets its generated id.
func (r *UserRepository) Save(ctx context.Context, user *models.User) (string, error) {
	id, err := r.store.Insert(ctx, docstore.CollectionUser, user)
	logger.Log.Debugw("save user", "id", id, "error", err)
	if err != nil {
		return "", err
	}
	user.ID = id
	return id, nil
}

func (r *UserRepository) findOne(ctx context.Context, filter docstore.Filter) (*models.User, error) {
	var user models.User
	err := r.store.FindOne(ctx, docstore.CollectionUser, filter, &user)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
