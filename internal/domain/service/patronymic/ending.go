package patronymic

import "fmt"

// Ending задаёт категорию окончания имени.
type Ending int

const (
	EndingUnclassified Ending = iota
	EndingDoubleVowel
	EndingHardConsonant
	EndingSoftIota
	EndingSibilant
	EndingWeakVowelException
	EndingWeakVowelRegular
)

func (e Ending) String() string {
	switch e {
	case EndingUnclassified:
		return "unclassified"
	case EndingDoubleVowel:
		return "double-vowel"
	case EndingHardConsonant:
		return "hard-consonant"
	case EndingSoftIota:
		return "soft-iota"
	case EndingSibilant:
		return "sibilant"
	case EndingWeakVowelException:
		return "weak-vowel-exception"
	case EndingWeakVowelRegular:
		return "weak-vowel-regular"
	default:
		return fmt.Sprintf("Ending(%d)", int(e))
	}
}

// Classify относит имя к категории окончания. Правила проверяются по
// порядку, срабатывает первое: две гласные в конце, затем последняя буква.
func Classify(name string) Ending {
	letters := []rune(name)
	n := len(letters)

	if n == 0 {
		return EndingUnclassified
	}

	if n >= 2 && isVowel(letters[n-1]) && isVowel(letters[n-2]) {
		return EndingDoubleVowel
	}

	last := letters[n-1]

	switch {
	case in(hardConsonants, last):
		return EndingHardConsonant
	case last == softIota:
		return EndingSoftIota
	case in(sibilants, last):
		return EndingSibilant
	case in(weakVowels, last):
		if isException(name) {
			return EndingWeakVowelException
		}

		return EndingWeakVowelRegular
	default:
		return EndingUnclassified
	}
}
