package patronymic

//nolint:gochecknoglobals
var (
	vowels = map[rune]struct{}{
		'а': {}, 'е': {}, 'ё': {}, 'и': {}, 'о': {},
		'у': {}, 'ы': {}, 'э': {}, 'ю': {}, 'я': {},
	}

	hardConsonants = map[rune]struct{}{
		'б': {}, 'в': {}, 'г': {}, 'д': {}, 'р': {}, 'н': {}, 'т': {},
	}

	sibilants = map[rune]struct{}{
		'ж': {}, 'ш': {}, 'ч': {}, 'щ': {}, 'ц': {},
	}

	weakVowels = map[rune]struct{}{
		'а': {}, 'у': {}, 'ы': {}, 'о': {},
	}

	// Имена на -а/-у/-ы/-о, которые получают краткий суффикс -ич/-ична.
	// Сравнение точное, с учётом регистра.
	exceptions = map[string]struct{}{
		"Аникита": {},
		"Никита":  {},
		"Мина":    {},
		"Савва":   {},
		"Сила":    {},
		"Фока":    {},
	}
)

const softIota = 'й'

func isVowel(r rune) bool {
	_, ok := vowels[r]
	return ok
}

func isException(name string) bool {
	_, ok := exceptions[name]
	return ok
}

func in(set map[rune]struct{}, r rune) bool {
	_, ok := set[r]
	return ok
}
