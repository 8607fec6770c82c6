package persistence

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"namegen/internal/domain"
	"namegen/internal/domain/entity"
	"namegen/internal/domain/value"
	"namegen/pkg/errcodes"
	"namegen/pkg/lox"
)

const saveBatchSize = 1000

type NameRepository struct {
	db *sqlx.DB
}

func NewNameRepository(db *sqlx.DB) *NameRepository {
	return &NameRepository{db: db}
}

func (r *NameRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}
	return nil
}

// ListByKind возвращает имена одного списка в стабильном порядке.
func (r *NameRepository) ListByKind(ctx context.Context, kind value.NameKind) ([]string, error) {
	query := `SELECT value FROM names WHERE kind = $1 ORDER BY value`

	var names []string
	if err := r.db.SelectContext(ctx, &names, query, kind.String()); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list names")
	}
	return names, nil
}

// Load собирает пул имён из таблицы names.
func (r *NameRepository) Load(ctx context.Context) (entity.NamePool, error) {
	var pool entity.NamePool

	lists := map[value.NameKind]*[]string{
		value.NameKindFemale:  &pool.Female,
		value.NameKindMale:    &pool.Male,
		value.NameKindSurname: &pool.Surname,
	}

	for kind, dest := range lists {
		names, err := r.ListByKind(ctx, kind)
		if err != nil {
			return entity.NamePool{}, err
		}

		*dest = names
	}

	logger(ctx).Debug("name pool loaded from postgres")

	return pool, nil
}

// Save добавляет имена в список. Повторы игнорируются.
func (r *NameRepository) Save(ctx context.Context, kind value.NameKind, names ...string) error {
	if len(names) == 0 {
		return nil
	}

	now := time.Now()
	rows := lox.Map(names, func(name string) nameSchema {
		return newNameSchema(kind, name, now)
	})

	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO names (kind, value, created_at)
			VALUES (:kind, :value, :created_at)
			ON CONFLICT (kind, value) DO NOTHING`

		for start := 0; start < len(rows); start += saveBatchSize {
			end := min(start+saveBatchSize, len(rows))

			if _, err := tx.NamedExecContext(ctx, query, rows[start:end]); err != nil {
				return domain.WrapError(err, errcodes.InternalServerError, "failed to save names")
			}
		}
		return nil
	})
}
