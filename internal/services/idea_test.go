package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/idea-board/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestIdeaService_Create(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockIdeaWriter(ctrl)
	kafkaWriter := NewMockKafkaWriter(ctrl)

	var saved *models.IdeaDB
	writer.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, idea *models.IdeaDB) error {
		saved = idea
		return nil
	})
	kafkaWriter.EXPECT().WriteMessages(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
		assert.Len(t, msgs, 1)
		var event models.IdeaCreatedEvent
		assert.NoError(t, json.Unmarshal(msgs[0].Value, &event))
		assert.Equal(t, saved.ID.String(), string(msgs[0].Key))
		assert.Equal(t, saved.ID.String(), event.IdeaID)
		assert.Equal(t, "alice", event.Owner)
		assert.Equal(t, "X", event.Title)
		assert.NotEmpty(t, event.EventID)
		return nil
	})

	svc := NewIdeaService(writer, nil, kafkaWriter)
	id, err := svc.Create(ctx, "alice", "X", "desc", []string{"go"})

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	if assert.NotNil(t, saved) {
		assert.Equal(t, id, saved.ID)
		assert.Equal(t, "alice", saved.Owner)
		assert.Equal(t, "X", saved.Title)
		assert.Equal(t, "desc", saved.Description)
		assert.Equal(t, models.Tags{"go"}, saved.Tags)
		assert.Equal(t, 0, saved.Votes)
		assert.NotNil(t, saved.Comments)
		assert.Empty(t, saved.Comments)
		assert.WithinDuration(t, time.Now(), saved.CreatedAt, 5*time.Second)
	}
}

func TestIdeaService_Create_GeneratesDistinctIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockIdeaWriter(ctrl)
	writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	svc := NewIdeaService(writer, nil, nil)
	id1, err := svc.Create(context.Background(), "alice", "same", "same", nil)
	assert.NoError(t, err)
	id2, err := svc.Create(context.Background(), "alice", "same", "same", nil)
	assert.NoError(t, err)

	assert.NotEqual(t, id1, id2)
}

func TestIdeaService_Create_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("save error is returned and nothing is published", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		writer := NewMockIdeaWriter(ctrl)
		kafkaWriter := NewMockKafkaWriter(ctrl)

		writer.EXPECT().Save(ctx, gomock.Any()).Return(errors.New("db error"))

		svc := NewIdeaService(writer, nil, kafkaWriter)
		id, err := svc.Create(ctx, "alice", "X", "", nil)

		assert.EqualError(t, err, "db error")
		assert.Equal(t, uuid.Nil, id)
	})

	t.Run("publish error is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		writer := NewMockIdeaWriter(ctrl)
		kafkaWriter := NewMockKafkaWriter(ctrl)

		writer.EXPECT().Save(ctx, gomock.Any()).Return(nil)
		kafkaWriter.EXPECT().WriteMessages(ctx, gomock.Any()).Return(errors.New("broker down"))

		svc := NewIdeaService(writer, nil, kafkaWriter)
		id, err := svc.Create(ctx, "alice", "X", "", nil)

		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})
}

func TestIdeaService_ListByOwner(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockIdeaReader(ctrl)
	aliceIdeas := []models.IdeaDB{{ID: uuid.New(), Owner: "alice", Title: "a1"}, {ID: uuid.New(), Owner: "alice", Title: "a2"}}

	reader.EXPECT().ListByOwner(ctx, "alice").Return(aliceIdeas, nil)
	reader.EXPECT().ListByOwner(ctx, "bob").Return(nil, errors.New("db error"))

	svc := NewIdeaService(nil, reader, nil)

	ideas, err := svc.ListByOwner(ctx, "alice")
	assert.NoError(t, err)
	assert.Equal(t, aliceIdeas, ideas)

	ideas, err = svc.ListByOwner(ctx, "bob")
	assert.EqualError(t, err, "db error")
	assert.Nil(t, ideas)
}

func TestIdeaService_GetByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	tests := []struct {
		name    string
		idea    *models.IdeaDB
		repoErr error
		wantErr error
	}{
		{name: "found", idea: &models.IdeaDB{ID: id, Owner: "alice"}},
		{name: "not found", wantErr: ErrIdeaNotFound},
		{name: "repository error", repoErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reader := NewMockIdeaReader(ctrl)
			reader.EXPECT().GetByID(ctx, "alice", id).Return(tt.idea, tt.repoErr)

			svc := NewIdeaService(nil, reader, nil)
			idea, err := svc.GetByID(ctx, "alice", id)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, idea)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.idea, idea)
			}
		})
	}
}
