package tests

import (
	"math/rand/v2"

	"namegen/internal/domain/value"
)

// Randomizer детерминированный источник случайности для тестов. Не
// предназначен для параллельного использования.
type Randomizer struct {
	random *rand.Rand
}

func NewRandomizer(seed uint64) Randomizer {
	return Randomizer{
		random: rand.New(rand.NewPCG(seed, seed)), //nolint:gosec // for tests
	}
}

func (r Randomizer) Gender() value.Gender {
	if r.random.IntN(2) == 0 { //nolint:mnd // skip
		return value.GenderMale
	}

	return value.GenderFemale
}

func (r Randomizer) Pick(names []string) string {
	return names[r.random.IntN(len(names))]
}
