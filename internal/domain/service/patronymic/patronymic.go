package patronymic

import (
	"errors"
	"fmt"

	"namegen/internal/domain/value"
)

var ErrInvalidInput = errors.New("patronymic: invalid input")

// UnclassifiedEndingWarning сообщает, что для окончания имени нет правила и
// имя возвращено без суффикса. Это не ошибка вызова.
type UnclassifiedEndingWarning struct {
	Name string
}

func (w *UnclassifiedEndingWarning) Error() string {
	return fmt.Sprintf("patronymic: no rule for the ending of %q", w.Name)
}

type Result struct {
	Patronymic string
	Ending     Ending

	// Warning is non-nil only for EndingUnclassified.
	Warning *UnclassifiedEndingWarning
}

// Derive образует отчество от имени отца для носителя с полом gender.
// Пустое имя и неизвестный пол дают ErrInvalidInput.
func Derive(name string, gender value.Gender) (Result, error) {
	if name == "" {
		return Result{}, fmt.Errorf("%w: empty name", ErrInvalidInput)
	}

	if !gender.Valid() {
		return Result{}, fmt.Errorf("%w: %s", ErrInvalidInput, gender)
	}

	ending := Classify(name)

	r, ok := ruleFor(ending)
	if !ok {
		return Result{
			Patronymic: name,
			Ending:     ending,
			Warning:    &UnclassifiedEndingWarning{Name: name},
		}, nil
	}

	return Result{
		Patronymic: r.stem(name) + r.suffix.forGender(gender),
		Ending:     ending,
	}, nil
}
