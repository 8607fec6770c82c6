package persistence

import (
	"time"

	"namegen/internal/domain/value"
)

// nameSchema описывает строку таблицы names.
type nameSchema struct {
	Kind      string    `db:"kind"`
	Value     string    `db:"value"`
	CreatedAt time.Time `db:"created_at"`
}

func newNameSchema(kind value.NameKind, name string, now time.Time) nameSchema {
	return nameSchema{
		Kind:      kind.String(),
		Value:     name,
		CreatedAt: now,
	}
}
