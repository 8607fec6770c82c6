package entity

import (
	"fmt"

	"namegen/internal/domain/value"
)

// Person вымышленная персона. Patronymic образовано от случайного мужского
// имени (имя отца).
type Person struct {
	Gender     value.Gender
	FirstName  string
	Patronymic string
	Surname    string
}

func (p Person) String() string {
	return fmt.Sprintf("(%s, %s %s %s)", p.Gender, p.FirstName, p.Patronymic, p.Surname)
}
