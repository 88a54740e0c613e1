package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/idea-board/internal/logger"
	"github.com/sbilibin2017/idea-board/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=idea.go -destination=mock_idea.go -package=services

// ErrIdeaNotFound is returned when an idea does not exist or belongs to another user.
var ErrIdeaNotFound = errors.New("idea not found")

// IdeaWriter stores ideas.
type IdeaWriter interface {
	Save(ctx context.Context, idea *models.IdeaDB) error
}

// IdeaReader reads ideas scoped to their owner.
type IdeaReader interface {
	ListByOwner(ctx context.Context, owner string) ([]models.IdeaDB, error)
	GetByID(ctx context.Context, owner string, id uuid.UUID) (*models.IdeaDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// IdeaService handles idea operations and event publishing.
type IdeaService struct {
	writer      IdeaWriter
	reader      IdeaReader
	kafkaWriter KafkaWriter
}

// NewIdeaService creates a new IdeaService. kafkaWriter may be nil.
func NewIdeaService(writer IdeaWriter, reader IdeaReader, kafkaWriter KafkaWriter) *IdeaService {
	return &IdeaService{
		writer:      writer,
		reader:      reader,
		kafkaWriter: kafkaWriter,
	}
}

// Create stores a new idea owned by owner and returns its identifier.
func (s *IdeaService) Create(ctx context.Context, owner, title, description string, tags []string) (uuid.UUID, error) {
	idea := &models.IdeaDB{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Owner:       owner,
		Tags:        models.Tags(tags),
		Votes:       0,
		Comments:    models.Comments{},
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.writer.Save(ctx, idea); err != nil {
		logger.Log.Errorw("failed to save idea", "owner", owner, "error", err)
		return uuid.Nil, err
	}

	s.publishIdeaCreated(ctx, idea)

	return idea.ID, nil
}

// ListByOwner returns every idea owned by owner.
func (s *IdeaService) ListByOwner(ctx context.Context, owner string) ([]models.IdeaDB, error) {
	ideas, err := s.reader.ListByOwner(ctx, owner)
	if err != nil {
		logger.Log.Errorw("failed to list ideas", "owner", owner, "error", err)
		return nil, err
	}
	return ideas, nil
}

// GetByID returns a single idea of owner.
func (s *IdeaService) GetByID(ctx context.Context, owner string, id uuid.UUID) (*models.IdeaDB, error) {
	idea, err := s.reader.GetByID(ctx, owner, id)
	if err != nil {
		logger.Log.Errorw("failed to get idea", "owner", owner, "id", id, "error", err)
		return nil, err
	}
	if idea == nil {
		return nil, ErrIdeaNotFound
	}
	return idea, nil
}

// publishIdeaCreated is best effort: failures are logged, never returned.
func (s *IdeaService) publishIdeaCreated(ctx context.Context, idea *models.IdeaDB) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "idea_id", idea.ID)
		return
	}

	event := models.IdeaCreatedEvent{
		EventID:   uuid.NewString(),
		IdeaID:    idea.ID.String(),
		Owner:     idea.Owner,
		Title:     idea.Title,
		Timestamp: idea.CreatedAt.Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal idea event", "idea_id", event.IdeaID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.IdeaID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish idea event", "idea_id", event.IdeaID, "error", err)
		return
	}
	logger.Log.Infow("idea event queued", "idea_id", event.IdeaID, "owner", event.Owner)
}
