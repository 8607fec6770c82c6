package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"namegen/pkg/logx"
	"namegen/pkg/middlewarex"
)

// Данный сервер объединяет специфичные HTTP сервера, отвечающие за обработку
// конкретных сущностей. Сейчас это только PersonServer.
type Server struct {
	PersonServer
}

func NewServer(
	personServer PersonServer,
) Server {
	return Server{
		PersonServer: personServer,
	}
}

// Handler собирает роутер со стандартной цепочкой middleware.
func (s Server) Handler(logFieldMaxLen int) http.Handler {
	masker := logx.NewSensitiveDataMasker()

	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, logFieldMaxLen),
		middlewarex.ResponseLogging(masker, logFieldMaxLen),
	)

	s.RegisterRoutes(r)

	return r
}
