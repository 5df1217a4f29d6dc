package services

//go:generate mockgen -source=syllabus.go -destination=mock_syllabus.go -package=services

import (
	"context"
	"errors"
	"time"

	"github.com/sbilibin2017/syllabus-builder/internal/logger"
	"github.com/sbilibin2017/syllabus-builder/internal/models"
)

// ErrNotFound is returned for syllabi that do not exist or belong to someone else.
var ErrNotFound = errors.New("not found")

// SyllabusStore reads and writes syllabi.
type SyllabusStore interface {
	Save(ctx context.Context, syllabus *models.Syllabus) (string, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Syllabus, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID string) (*models.Syllabus, error)
}

// SyllabusService manages syllabi scoped to their owner.
type SyllabusService struct {
	store  SyllabusStore
	events KafkaWriter // optional
	now    func() time.Time
}

// NewSyllabusService creates a new SyllabusService. events may be nil.
func NewSyllabusService(store SyllabusStore, events KafkaWriter) *SyllabusService {
	return &SyllabusService{
		store:  store,
		events: events,
		now:    time.Now,
	}
}

// Create stores a syllabus owned by ownerID.
func (svc *SyllabusService) Create(ctx context.Context, ownerID string, req models.SyllabusCreateRequest) (*models.Syllabus, error) {
	ts := models.Timestamp(svc.now())
	syllabus := &models.Syllabus{
		OwnerID:       ownerID,
		Title:         req.Title,
		CourseCode:    req.CourseCode,
		Description:   req.Description,
		Objectives:    nonNil(req.Objectives),
		Level:         req.Level,
		Subject:       req.Subject,
		DurationWeeks: req.DurationWeeks,
		Weeks:         make([]models.WeekPlan, 0, len(req.Weeks)),
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}
	for _, w := range req.Weeks {
		syllabus.Weeks = append(syllabus.Weeks, models.WeekPlan{
			Week:        w.Week,
			Topics:      nonNil(w.Topics),
			Readings:    nonNil(w.Readings),
			Assignments: nonNil(w.Assignments),
		})
	}

	id, err := svc.store.Save(ctx, syllabus)
	if err != nil {
		logger.Log.Errorw("failed to save syllabus", "owner_id", ownerID, "error", err)
		return nil, err
	}
	syllabus.ID = id
	publishEvent(ctx, svc.events, models.EventSyllabusCreated, ownerID, syllabus.ID)
	return syllabus, nil
}

// List returns the syllabi of ownerID, newest first. It never returns nil on success.
func (svc *SyllabusService) List(ctx context.Context, ownerID string) ([]models.Syllabus, error) {
	syllabi, err := svc.store.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to list syllabi", "owner_id", ownerID, "error", err)
		return nil, err
	}
	if syllabi == nil {
		syllabi = []models.Syllabus{}
	}
	return syllabi, nil
}

// Get returns syllabus id if ownerID owns it, and ErrNotFound otherwise.
func (svc *SyllabusService) Get(ctx context.Context, ownerID, id string) (*models.Syllabus, error) {
	syllabus, err := svc.store.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to get syllabus", "owner_id", ownerID, "id", id, "error", err)
		return nil, err
	}
	if syllabus == nil {
		return nil, ErrNotFound
	}
	return syllabus, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
