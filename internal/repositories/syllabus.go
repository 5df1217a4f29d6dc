package repositories

import (
	"context"
	"errors"

	"github.com/sbilibin2017/syllabus-builder/internal/docstore"
	"github.com/sbilibin2017/syllabus-builder/internal/logger"
	"github.com/sbilibin2017/syllabus-builder/internal/models"
)

var newestFirst = &docstore.Sort{Field: "created_at", Order: docstore.Descending}

// SyllabusRepository persists syllabi in the "syllabus" collection.
type SyllabusRepository struct {
	store DocumentStore
}

func NewSyllabusRepository(store DocumentStore) *SyllabusRepository {
	return &SyllabusRepository{store: store}
}

// Save inserts syllabus and sets its generated id.
func (r *SyllabusRepository) Save(ctx context.Context, syllabus *models.Syllabus) (string, error) {
	id, err := r.store.Insert(ctx, docstore.CollectionSyllabus, syllabus)
	logger.Log.Debugw("save syllabus", "id", id, "owner_id", syllabus.OwnerID, "error", err)
	if err != nil {
		return "", err
	}
	syllabus.ID = id
	return id, nil
}

// ListByOwner returns the syllabi of ownerID, newest first.
func (r *SyllabusRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Syllabus, error) {
	syllabi := []models.Syllabus{}
	err := r.store.FindMany(ctx, docstore.CollectionSyllabus, docstore.Filter{"owner_id": ownerID}, newestFirst, &syllabi)
	logger.Log.Debugw("list syllabi", "owner_id", ownerID, "result", len(syllabi), "error", err)
	if err != nil {
		return nil, err
	}
	return syllabi, nil
}

// GetByIDAndOwner returns the syllabus with id if it belongs to ownerID, or nil otherwise.
func (r *SyllabusRepository) GetByIDAndOwner(ctx context.Context, id, ownerID string) (*models.Syllabus, error) {
	var syllabus models.Syllabus
	filter := docstore.Filter{docstore.IDField: id, "owner_id": ownerID}
	err := r.store.FindOne(ctx, docstore.CollectionSyllabus, filter, &syllabus)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &syllabus, nil
}
