// Package migrations holds the SQL schema and applies it at startup.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/idea-board/internal/logger"
)

//go:embed *.up.sql
var files embed.FS

// Up executes every *.up.sql file in lexical order.
// All statements are idempotent, so Up is safe to run on every start.
func Up(ctx context.Context, db *sqlx.DB) error {
	names, err := fs.Glob(files, "*.up.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)

	for _, name := range names {
		script, err := files.ReadFile(name)
		if err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, string(script)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		logger.Log.Infow("migration applied", "file", name)
	}

	return nil
}
