package dbtest

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Prepare накатывает миграции из файлов и очищает перечисленные таблицы,
// чтобы каждый тест стартовал с пустой базы.
func Prepare(ctx context.Context, db *sqlx.DB, migrations []string, tables ...string) error {
	if err := MigrateFromFile(ctx, db, migrations...); err != nil {
		return err
	}

	return Truncate(ctx, db, tables...)
}

// MigrateFromFile executes all SQL queries from the files over a database
// connection.
func MigrateFromFile(ctx context.Context, db *sqlx.DB, fileNames ...string) error {
	for _, fileName := range fileNames {
		query, err := os.ReadFile(fileName)
		if err != nil {
			return fmt.Errorf("os.ReadFile: %w", err)
		}

		if _, err = db.ExecContext(ctx, string(query)); err != nil {
			return fmt.Errorf("db.ExecContext %s: %w", fileName, err)
		}
	}

	return nil
}

func Truncate(ctx context.Context, db *sqlx.DB, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}

	if _, err := db.ExecContext(ctx, "TRUNCATE "+strings.Join(tables, ", ")); err != nil {
		return fmt.Errorf("db.ExecContext: %w", err)
	}

	return nil
}
