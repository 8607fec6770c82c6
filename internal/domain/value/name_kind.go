package value

// NameKind задаёт тип списка в пуле имён.
type NameKind string

const (
	NameKindFemale  NameKind = "female"
	NameKindMale    NameKind = "male"
	NameKindSurname NameKind = "surname"
)

func (k NameKind) String() string {
	return string(k)
}

// FirstNameKind возвращает список, из которого берётся имя для пола.
func FirstNameKind(g Gender) NameKind {
	if g == GenderFemale {
		return NameKindFemale
	}

	return NameKindMale
}
