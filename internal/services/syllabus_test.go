package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/syllabus-builder/internal/docstore"
	"github.com/sbilibin2017/syllabus-builder/internal/models"
	"github.com/sbilibin2017/syllabus-builder/internal/repositories"
)

func ptr[T any](v T) *T { return &v }

func TestSyllabusService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Defaults", func(t *testing.T) {
		store := NewMockSyllabusStore(ctrl)
		events := NewMockKafkaWriter(ctrl)

		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return("s1", nil)
		events.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		svc := NewSyllabusService(store, events)
		svc.now = func() time.Time { return fixedNow }

		got, err := svc.Create(context.Background(), "u1", models.SyllabusCreateRequest{
			Title: "Intro to Biology",
			Weeks: []models.WeekPlan{{Week: 1, Topics: []string{"Cells"}}},
		})
		require.NoError(t, err)

		assert.Equal(t, "s1", got.ID)
		assert.Equal(t, "u1", got.OwnerID)
		assert.Equal(t, "Intro to Biology", got.Title)
		assert.Nil(t, got.CourseCode)
		assert.Nil(t, got.DurationWeeks)
		assert.Equal(t, []string{}, got.Objectives)
		assert.Equal(t, []models.WeekPlan{{
			Week:        1,
			Topics:      []string{"Cells"},
			Readings:    []string{},
			Assignments: []string{},
		}}, got.Weeks)
		assert.Equal(t, "2025-03-01T12:00:00.000000Z", got.CreatedAt)
		assert.Equal(t, got.CreatedAt, got.UpdatedAt)
	})

	t.Run("SaveError", func(t *testing.T) {
		store := NewMockSyllabusStore(ctrl)
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return("", errors.New("db error"))

		svc := NewSyllabusService(store, nil)

		got, err := svc.Create(context.Background(), "u1", models.SyllabusCreateRequest{Title: "x"})
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestSyllabusService_ListAndGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		mockSetup func(store *MockSyllabusStore)
		run       func(t *testing.T, svc *SyllabusService)
	}{
		{
			name: "list empty is not nil",
			mockSetup: func(store *MockSyllabusStore) {
				store.EXPECT().ListByOwner(gomock.Any(), "u1").Return(nil, nil)
			},
			run: func(t *testing.T, svc *SyllabusService) {
				got, err := svc.List(context.Background(), "u1")
				require.NoError(t, err)
				assert.NotNil(t, got)
				assert.Empty(t, got)
			},
		},
		{
			name: "list error",
			mockSetup: func(store *MockSyllabusStore) {
				store.EXPECT().ListByOwner(gomock.Any(), "u1").Return(nil, errors.New("db error"))
			},
			run: func(t *testing.T, svc *SyllabusService) {
				_, err := svc.List(context.Background(), "u1")
				assert.Error(t, err)
			},
		},
		{
			name: "get missing",
			mockSetup: func(store *MockSyllabusStore) {
				store.EXPECT().GetByIDAndOwner(gomock.Any(), "s1", "u1").Return(nil, nil)
			},
			run: func(t *testing.T, svc *SyllabusService) {
				_, err := svc.Get(context.Background(), "u1", "s1")
				assert.ErrorIs(t, err, ErrNotFound)
			},
		},
		{
			name: "get found",
			mockSetup: func(store *MockSyllabusStore) {
				store.EXPECT().GetByIDAndOwner(gomock.Any(), "s1", "u1").
					Return(&models.Syllabus{ID: "s1", OwnerID: "u1"}, nil)
			},
			run: func(t *testing.T, svc *SyllabusService) {
				got, err := svc.Get(context.Background(), "u1", "s1")
				require.NoError(t, err)
				assert.Equal(t, "s1", got.ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMockSyllabusStore(ctrl)
			tt.mockSetup(store)
			tt.run(t, NewSyllabusService(store, nil))
		})
	}
}

func TestSyllabusService_OwnerScoping(t *testing.T) {
	ctx := context.Background()
	svc := NewSyllabusService(repositories.NewSyllabusRepository(docstore.NewMemoryStore()), nil)

	clock := fixedNow
	svc.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	first, err := svc.Create(ctx, "alice", models.SyllabusCreateRequest{Title: "First", DurationWeeks: ptr(10)})
	require.NoError(t, err)
	second, err := svc.Create(ctx, "alice", models.SyllabusCreateRequest{Title: "Second"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "bob", models.SyllabusCreateRequest{Title: "Bob's"})
	require.NoError(t, err)

	list, err := svc.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	assert.Equal(t, 10, *list[1].DurationWeeks)

	got, err := svc.Get(ctx, "alice", first.ID)
	require.NoError(t, err)
	assert.Equal(t, *first, *got)

	_, err = svc.Get(ctx, "bob", first.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Get(ctx, "alice", "not-an-id")
	assert.ErrorIs(t, err, ErrNotFound)

	empty, err := svc.List(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, []models.Syllabus{}, empty)
}
