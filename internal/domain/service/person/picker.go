package person

import (
	"math/rand/v2"

	"github.com/samber/lo"

	"namegen/internal/domain/value"
)

// Picker источник случайности для генерации персоны.
type Picker interface {
	Gender() value.Gender
	Pick(names []string) string
}

type randomPicker struct{}

// NewRandomPicker возвращает Picker на глобальном генераторе, безопасный для
// параллельного использования.
func NewRandomPicker() Picker {
	return randomPicker{}
}

func (randomPicker) Gender() value.Gender {
	if rand.N(2) == 0 { //nolint:gosec,mnd // not for crypto
		return value.GenderMale
	}

	return value.GenderFemale
}

func (randomPicker) Pick(names []string) string {
	return lo.Sample(names)
}
