package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/idea-board/internal/models"
)

// IdeaWriteRepository stores idea documents.
type IdeaWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewIdeaWriteRepository(db *sqlx.DB, txGetter TxGetter) *IdeaWriteRepository {
	return &IdeaWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts the idea as given. No duplicate detection is performed.
func (r *IdeaWriteRepository) Save(ctx context.Context, idea *models.IdeaDB) error {
	const query = `
		INSERT INTO ideas (id, title, description, owner, tags, votes, comments, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	args := []any{idea.ID, idea.Title, idea.Description, idea.Owner, idea.Tags, idea.Votes, idea.Comments, idea.CreatedAt}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{idea.ID, idea.Title, idea.Owner}, rowsAffected, err)

	return err
}

// IdeaReadRepository reads idea documents, always scoped to an owner.
type IdeaReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewIdeaReadRepository(db *sqlx.DB, txGetter TxGetter) *IdeaReadRepository {
	return &IdeaReadRepository{db: db, txGetter: txGetter}
}

// ListByOwner returns the owner's ideas in insertion order.
func (r *IdeaReadRepository) ListByOwner(ctx context.Context, owner string) ([]models.IdeaDB, error) {
	const query = `
		SELECT id, title, description, owner, tags, votes, comments, created_at
		FROM ideas
		WHERE owner = $1
		ORDER BY seq
	`

	ideas := []models.IdeaDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &ideas, query, owner)

	logQuery(query, []any{owner}, len(ideas), err)

	if err != nil {
		return nil, err
	}

	return ideas, nil
}

// GetByID returns the idea when it exists and belongs to owner, nil otherwise.
func (r *IdeaReadRepository) GetByID(ctx context.Context, owner string, id uuid.UUID) (*models.IdeaDB, error) {
	const query = `
		SELECT id, title, description, owner, tags, votes, comments, created_at
		FROM ideas
		WHERE id = $1 AND owner = $2
	`

	var idea models.IdeaDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &idea, query, id, owner)

	logQuery(query, []any{id, owner}, idea.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &idea, nil
}
