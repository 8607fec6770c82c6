package server

import (
	"namegen/internal/domain/entity"
	"namegen/internal/domain/service/patronymic"
	"namegen/pkg/rest"
)

func newRESTPerson(person entity.Person) rest.Person {
	return rest.Person{
		Gender:     person.Gender.String(),
		FirstName:  person.FirstName,
		Patronymic: person.Patronymic,
		Surname:    person.Surname,
	}
}

func newRESTPatronymic(result patronymic.Result) rest.PatronymicResponse {
	response := rest.PatronymicResponse{
		Patronymic: result.Patronymic,
		Ending:     result.Ending.String(),
	}

	if result.Warning != nil {
		response.Warning = result.Warning.Error()
	}

	return response
}
