package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"git.appkode.ru/pub/go/failure"

	"namegen/internal/domain"
	"namegen/internal/domain/entity"
	"namegen/internal/domain/service/patronymic"
	"namegen/internal/domain/service/person"
	"namegen/internal/domain/value"
	"namegen/pkg/errcodes"
	"namegen/pkg/httpx/reply"
	"namegen/pkg/httpx/req"
	"namegen/pkg/lox"
	"namegen/pkg/rest"
)

type personService interface {
	Generate(context.Context) (entity.Person, error)
	GenerateMany(context.Context, int) ([]entity.Person, error)
	Patronymic(context.Context, string, value.Gender) (patronymic.Result, error)
}

type PersonServer struct {
	personService personService
}

func NewPersonServer(personService personService) PersonServer {
	return PersonServer{
		personService: personService,
	}
}

func (s PersonServer) getPerson(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	p, err := s.personService.Generate(ctx)
	if err != nil {
		return fmt.Errorf("personService.Generate: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTPerson(p))

	return nil
}

func (s PersonServer) getPersons(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	count, err := req.QueryInt(r, "count", 1, 1, person.MaxBatch, errcodes.InvalidCount)
	if err != nil {
		return fmt.Errorf("req.QueryInt: %w", err)
	}

	persons, err := s.personService.GenerateMany(ctx, count)
	if err != nil {
		if code, ok := domain.GetCode(err); ok && code == errcodes.InvalidCount {
			return failure.NewInvalidArgumentErrorFromError(err, failure.WithCode(errcodes.InvalidCount))
		}

		return fmt.Errorf("personService.GenerateMany: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, lox.Map(persons, newRESTPerson))

	return nil
}

func (s PersonServer) postPatronymic(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.PatronymicRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	gender, err := value.ParseGender(request.Gender)
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParseGender: %w", err),
			failure.WithCode(errcodes.InvalidGender),
		)
	}

	result, err := s.personService.Patronymic(ctx, strings.TrimSpace(request.Name), gender)
	if err != nil {
		if errors.Is(err, patronymic.ErrInvalidInput) {
			return failure.NewInvalidArgumentErrorFromError(
				fmt.Errorf("personService.Patronymic: %w", err),
				failure.WithCode(errcodes.InvalidName),
				failure.WithDescription("name must contain at least one letter"),
			)
		}

		return fmt.Errorf("personService.Patronymic: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTPatronymic(result))

	return nil
}
