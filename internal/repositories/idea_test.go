package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/idea-board/internal/models"
	"github.com/stretchr/testify/assert"
)

var ideaColumns = []string{"id", "title", "description", "owner", "tags", "votes", "comments", "created_at"}

func TestIdeaWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)

	idea := &models.IdeaDB{
		ID:          uuid.New(),
		Title:       "X",
		Description: "desc",
		Owner:       "alice",
		CreatedAt:   time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ideas (id, title, description, owner, tags, votes, comments, created_at)")).
		WithArgs(idea.ID, "X", "desc", "alice", []byte("[]"), 0, []byte("[]"), idea.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewIdeaWriteRepository(db, nil)
	assert.NoError(t, repo.Save(context.Background(), idea))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdeaWriteRepository_Save_Error(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("INSERT INTO ideas").WillReturnError(errors.New("fk violation"))

	repo := NewIdeaWriteRepository(db, nil)
	err := repo.Save(context.Background(), &models.IdeaDB{ID: uuid.New(), Owner: "ghost"})
	assert.EqualError(t, err, "fk violation")
}

func TestIdeaReadRepository_ListByOwner(t *testing.T) {
	listQuery := regexp.QuoteMeta("FROM ideas WHERE owner = $1 ORDER BY seq")
	id1, id2 := uuid.New(), uuid.New()
	now := time.Now().UTC()

	t.Run("returns rows in order", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(listQuery).
			WithArgs("alice").
			WillReturnRows(sqlmock.NewRows(ideaColumns).
				AddRow(id1.String(), "first", "d1", "alice", []byte(`["go"]`), 2, []byte(`[]`), now).
				AddRow(id2.String(), "second", "d2", "alice", []byte(`[]`), 0, []byte(`[{"author":"bob","text":"hi"}]`), now))

		repo := NewIdeaReadRepository(db, nil)
		ideas, err := repo.ListByOwner(context.Background(), "alice")

		assert.NoError(t, err)
		if assert.Len(t, ideas, 2) {
			assert.Equal(t, id1, ideas[0].ID)
			assert.Equal(t, models.Tags{"go"}, ideas[0].Tags)
			assert.Equal(t, 2, ideas[0].Votes)
			assert.Equal(t, id2, ideas[1].ID)
			assert.Equal(t, "bob", ideas[1].Comments[0].Author)
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(listQuery).
			WithArgs("bob").
			WillReturnRows(sqlmock.NewRows(ideaColumns))

		repo := NewIdeaReadRepository(db, nil)
		ideas, err := repo.ListByOwner(context.Background(), "bob")

		assert.NoError(t, err)
		assert.NotNil(t, ideas)
		assert.Empty(t, ideas)
	})

	t.Run("db error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(listQuery).WillReturnError(errors.New("timeout"))

		repo := NewIdeaReadRepository(db, nil)
		ideas, err := repo.ListByOwner(context.Background(), "alice")

		assert.Error(t, err)
		assert.Nil(t, ideas)
	})
}

func TestIdeaReadRepository_GetByID(t *testing.T) {
	getQuery := regexp.QuoteMeta("FROM ideas WHERE id = $1 AND owner = $2")
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(getQuery).
			WithArgs(id, "alice").
			WillReturnRows(sqlmock.NewRows(ideaColumns).
				AddRow(id.String(), "X", "d", "alice", []byte(`[]`), 0, []byte(`[]`), time.Now()))

		repo := NewIdeaReadRepository(db, nil)
		idea, err := repo.GetByID(context.Background(), "alice", id)

		assert.NoError(t, err)
		if assert.NotNil(t, idea) {
			assert.Equal(t, id, idea.ID)
			assert.Equal(t, "alice", idea.Owner)
		}
	})

	t.Run("missing or foreign", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(getQuery).
			WithArgs(id, "bob").
			WillReturnRows(sqlmock.NewRows(ideaColumns))

		repo := NewIdeaReadRepository(db, nil)
		idea, err := repo.GetByID(context.Background(), "bob", id)

		assert.NoError(t, err)
		assert.Nil(t, idea)
	})
}
