package patronymic_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"namegen/internal/domain/service/patronymic"
	"namegen/internal/domain/value"
)

func TestDerive(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name       string
		father     string
		gender     value.Gender
		patronymic string
		ending     patronymic.Ending
	}{
		{name: "Hard consonant male", father: "Александр", gender: value.GenderMale, patronymic: "Александрович", ending: patronymic.EndingHardConsonant},
		{name: "Hard consonant female", father: "Александр", gender: value.GenderFemale, patronymic: "Александровна", ending: patronymic.EndingHardConsonant},
		{name: "Hard consonant н", father: "Иван", gender: value.GenderMale, patronymic: "Иванович", ending: patronymic.EndingHardConsonant},
		{name: "Soft iota", father: "Андрей", gender: value.GenderMale, patronymic: "Андреевич", ending: patronymic.EndingSoftIota},
		{name: "Soft iota female", father: "Андрей", gender: value.GenderFemale, patronymic: "Андреевна", ending: patronymic.EndingSoftIota},
		{name: "Sibilant", father: "Франц", gender: value.GenderMale, patronymic: "Францевич", ending: patronymic.EndingSibilant},
		{name: "Sibilant female", father: "Франц", gender: value.GenderFemale, patronymic: "Францевна", ending: patronymic.EndingSibilant},
		{name: "Weak vowel exception", father: "Никита", gender: value.GenderMale, patronymic: "Никитич", ending: patronymic.EndingWeakVowelException},
		{name: "Weak vowel exception female", father: "Никита", gender: value.GenderFemale, patronymic: "Никитична", ending: patronymic.EndingWeakVowelException},
		{name: "Weak vowel exception Савва", father: "Савва", gender: value.GenderMale, patronymic: "Саввич", ending: patronymic.EndingWeakVowelException},
		{name: "Weak vowel exception Фока", father: "Фока", gender: value.GenderFemale, patronymic: "Фокична", ending: patronymic.EndingWeakVowelException},
		{name: "Weak vowel regular", father: "Антипа", gender: value.GenderMale, patronymic: "Антипович", ending: patronymic.EndingWeakVowelRegular},
		{name: "Weak vowel regular о", father: "Данило", gender: value.GenderFemale, patronymic: "Даниловна", ending: patronymic.EndingWeakVowelRegular},
		{name: "Double vowel", father: "Бобоо", gender: value.GenderMale, patronymic: "Бобооевич", ending: patronymic.EndingDoubleVowel},
		{name: "Double vowel female", father: "Бобоо", gender: value.GenderFemale, patronymic: "Бобооевна", ending: patronymic.EndingDoubleVowel},
		{name: "Weak vowel after consonant", father: "Лука", gender: value.GenderMale, patronymic: "Лукович", ending: patronymic.EndingWeakVowelRegular},
		{name: "Double vowel ия", father: "Илия", gender: value.GenderMale, patronymic: "Илияевич", ending: patronymic.EndingDoubleVowel},
		{name: "Exception is case sensitive", father: "никита", gender: value.GenderMale, patronymic: "никитович", ending: patronymic.EndingWeakVowelRegular},
		{name: "Single letter hard consonant", father: "б", gender: value.GenderMale, patronymic: "бович", ending: patronymic.EndingHardConsonant},
		{name: "Single letter trimmed", father: "а", gender: value.GenderFemale, patronymic: "овна", ending: patronymic.EndingWeakVowelRegular},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			result, err := patronymic.Derive(tc.father, tc.gender)
			rq.NoError(err)

			rq.Equal(tc.patronymic, result.Patronymic)
			rq.Equal(tc.ending, result.Ending)
			rq.Nil(result.Warning)
		})
	}
}

func TestDeriveUnclassified(t *testing.T) {
	rq := require.New(t)

	for _, name := range []string{"Гете", "Игорь", "Жюли", "Илья", "Ефим", "John"} {
		t.Run(name, func(*testing.T) {
			for _, g := range []value.Gender{value.GenderMale, value.GenderFemale} {
				result, err := patronymic.Derive(name, g)
				rq.NoError(err)

				rq.Equal(name, result.Patronymic)
				rq.Equal(patronymic.EndingUnclassified, result.Ending)
				rq.NotNil(result.Warning)
				rq.Equal(name, result.Warning.Name)
				rq.ErrorContains(result.Warning, name)
			}
		})
	}
}

func TestDeriveInvalidInput(t *testing.T) {
	rq := require.New(t)

	_, err := patronymic.Derive("", value.GenderMale)
	rq.ErrorIs(err, patronymic.ErrInvalidInput)
	rq.ErrorContains(err, "empty name")

	_, err = patronymic.Derive("Иван", value.Gender(0))
	rq.ErrorIs(err, patronymic.ErrInvalidInput)
}

func TestDeriveGendersShareEnding(t *testing.T) {
	rq := require.New(t)

	names := []string{"Александр", "Андрей", "Франц", "Никита", "Антипа", "Бобоо", "Гете", "Мина", "Сила"}

	for _, name := range names {
		male, err := patronymic.Derive(name, value.GenderMale)
		rq.NoError(err)

		female, err := patronymic.Derive(name, value.GenderFemale)
		rq.NoError(err)

		rq.Equal(male.Ending, female.Ending, name)

		if male.Warning != nil {
			rq.Equal(male.Patronymic, female.Patronymic)
			continue
		}

		// Оба отчества строятся от одной основы.
		maleRunes, femaleRunes := []rune(male.Patronymic), []rune(female.Patronymic)
		common := 0

		for common < len(maleRunes) && common < len(femaleRunes) && maleRunes[common] == femaleRunes[common] {
			common++
		}

		rq.GreaterOrEqual(common, len([]rune(name))-1, name)
	}
}

func TestDeriveIsSinglePass(t *testing.T) {
	rq := require.New(t)

	// Основа "Андре" сама по себе неклассифицируема, но это не влияет на результат.
	rq.Equal(patronymic.EndingUnclassified, patronymic.Classify("Андре"))

	result, err := patronymic.Derive("Андрей", value.GenderMale)
	rq.NoError(err)
	rq.Equal("Андреевич", result.Patronymic)
}

func TestDeriveConcurrent(t *testing.T) {
	rq := require.New(t)

	const workers = 32

	var wg sync.WaitGroup

	results := make([]string, workers)

	for i := range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			result, err := patronymic.Derive("Никита", value.GenderFemale)
			if err == nil {
				results[i] = result.Patronymic
			}
		}()
	}

	wg.Wait()

	for _, r := range results {
		rq.Equal("Никитична", r)
	}
}
