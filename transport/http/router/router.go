package router

import (
	"viasol/internal/handlers/auth"
	"viasol/internal/handlers/inquiry"
	"viasol/internal/handlers/media"
	"viasol/internal/handlers/packages"
	"viasol/internal/handlers/user"
	"viasol/internal/handlers/wizard"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth     auth.Handler
	User     user.Handler
	Packages packages.Handler
	Wizard   wizard.Handler
	Inquiry  inquiry.Handler
	Media    media.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Packages.Router(routerGroup)
		r.DomainHandlers.Wizard.Router(routerGroup)
		r.DomainHandlers.Inquiry.Router(routerGroup)
		r.DomainHandlers.Media.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
