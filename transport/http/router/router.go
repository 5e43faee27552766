package router

import (
	"rooming/internal/handlers/auth"
	"rooming/internal/handlers/booking"
	"rooming/internal/handlers/data"
	"rooming/internal/handlers/event"
	"rooming/internal/handlers/roominglist"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth        auth.Handler
	Event       event.Handler
	Booking     booking.Handler
	RoomingList roominglist.Handler
	Data        data.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes registers every domain under the given router, which is mounted at /api.
func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Auth.Router(router)
	r.DomainHandlers.Event.Router(router)
	r.DomainHandlers.Booking.Router(router)
	r.DomainHandlers.RoomingList.Router(router)
	r.DomainHandlers.Data.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
