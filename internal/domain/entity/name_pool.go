package entity

import (
	"fmt"

	"namegen/internal/domain"
	"namegen/internal/domain/value"
	"namegen/pkg/errcodes"
)

// NamePool списки имён без повторов, из которых собирается персона.
type NamePool struct {
	Female  []string
	Male    []string
	Surname []string
}

func (p NamePool) Names(kind value.NameKind) []string {
	switch kind {
	case value.NameKindFemale:
		return p.Female
	case value.NameKindMale:
		return p.Male
	case value.NameKindSurname:
		return p.Surname
	default:
		return nil
	}
}

// Validate проверяет, что из пула можно выбрать каждую часть персоны.
func (p NamePool) Validate() error {
	for _, kind := range []value.NameKind{value.NameKindFemale, value.NameKindMale, value.NameKindSurname} {
		if len(p.Names(kind)) == 0 {
			return domain.NewError(errcodes.EmptyNamePool, fmt.Sprintf("name pool: no %s names", kind))
		}
	}

	return nil
}
