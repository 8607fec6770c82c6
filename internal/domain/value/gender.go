package value

import (
	"errors"
	"fmt"
	"strings"
)

// Gender выбирает мужскую или женскую половину пары суффиксов.
type Gender int

const (
	GenderMale Gender = iota + 1
	GenderFemale
)

var ErrUnknownGender = errors.New("unknown gender")

func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return GenderMale, nil
	case "female":
		return GenderFemale, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownGender, s)
	}
}

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	default:
		return fmt.Sprintf("Gender(%d)", int(g))
	}
}
