package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"namegen/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Get("/", handler(s.getPerson))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/person", handler(s.getPerson))
		r.Get("/persons", handler(s.getPersons))
		r.Post("/patronymic", handler(s.postPatronymic))
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
