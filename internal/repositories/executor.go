package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/idea-board/internal/logger"
)

// TxGetter returns the transaction bound to the request context, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor prefers the request transaction over the pool.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// oneLine collapses a multi-line query for logging.
func oneLine(query string) string {
	return strings.Join(strings.Fields(query), " ")
}

func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("db query",
		"query", oneLine(query),
		"args", args,
		"result", result,
		"error", err,
	)
}

func logRedis(op, key string, result any, err error) {
	logger.Log.Infow("redis "+op,
		"key", key,
		"result", result,
		"error", err,
	)
}
