package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/syllabus-builder/internal/models"
)

func TestPublishEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("NilWriter", func(t *testing.T) {
		assert.NotPanics(t, func() {
			publishEvent(context.Background(), nil, models.EventUserRegistered, "u1", "u1")
		})
	})

	t.Run("Payload", func(t *testing.T) {
		w := NewMockKafkaWriter(ctrl)
		var got kafka.Message
		w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				require.Len(t, msgs, 1)
				got = msgs[0]
				return nil
			})

		publishEvent(context.Background(), w, models.EventSyllabusCreated, "u1", "s1")

		var evt models.Event
		require.NoError(t, json.Unmarshal(got.Value, &evt))
		assert.Equal(t, models.EventSyllabusCreated, evt.Type)
		assert.Equal(t, "u1", evt.UserID)
		assert.Equal(t, "s1", evt.ResourceID)
		assert.Equal(t, evt.EventID, string(got.Key))
		assert.NotZero(t, evt.Timestamp)
	})

	t.Run("WriteErrorSwallowed", func(t *testing.T) {
		w := NewMockKafkaWriter(ctrl)
		w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		assert.NotPanics(t, func() {
			publishEvent(context.Background(), w, models.EventSessionRevoked, "", "")
		})
	})
}
