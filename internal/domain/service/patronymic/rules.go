package patronymic

import "namegen/internal/domain/value"

type trimPolicy int

const (
	trimNone trimPolicy = iota
	trimOne
)

type suffixPair struct {
	male   string
	female string
}

func (p suffixPair) forGender(g value.Gender) string {
	if g == value.GenderFemale {
		return p.female
	}

	return p.male
}

type rule struct {
	trim   trimPolicy
	suffix suffixPair
}

// ruleFor returns the suffix rule of an ending. Unclassified has an explicit
// empty rule and ok=false.
func ruleFor(e Ending) (r rule, ok bool) {
	switch e {
	case EndingDoubleVowel:
		return rule{trim: trimNone, suffix: suffixPair{male: "евич", female: "евна"}}, true
	case EndingHardConsonant:
		return rule{trim: trimNone, suffix: suffixPair{male: "ович", female: "овна"}}, true
	case EndingSoftIota:
		return rule{trim: trimOne, suffix: suffixPair{male: "евич", female: "евна"}}, true
	case EndingSibilant:
		return rule{trim: trimNone, suffix: suffixPair{male: "евич", female: "евна"}}, true
	case EndingWeakVowelException:
		return rule{trim: trimOne, suffix: suffixPair{male: "ич", female: "ична"}}, true
	case EndingWeakVowelRegular:
		return rule{trim: trimOne, suffix: suffixPair{male: "ович", female: "овна"}}, true
	case EndingUnclassified:
		return rule{trim: trimNone}, false
	default:
		return rule{trim: trimNone}, false
	}
}

// stem applies the trim policy. trimOne drops exactly the final letter.
func (r rule) stem(name string) string {
	if r.trim != trimOne {
		return name
	}

	letters := []rune(name)
	if len(letters) == 0 {
		return name
	}

	return string(letters[:len(letters)-1])
}
