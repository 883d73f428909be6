// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"emporia/internal/delivery/http/middleware"
	"emporia/internal/delivery/http/router/handler"
	"emporia/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// authKind names the guard a route runs behind.
type authKind int

const (
	authNone authKind = iota
	authAccess
	authRefresh
)

// routeDef declares one route: its handler plus the guards it needs. Routes
// are data; RegisterRoutes assembles the middleware chain from the flags so
// no route wires its guards by hand.
type routeDef struct {
	method  string
	path    string
	handler echo.HandlerFunc
	auth    authKind
	roles   entity.Roles // non-empty implies the role guard after auth
	ipGuard bool         // admin mutations additionally pass the IP allow-list
}

// elevatedRoles may mutate catalog collections. The set is flat; super-admin
// is enumerated, not implied.
var elevatedRoles = entity.Roles{entity.RoleSuperAdmin, entity.RoleAdmin}

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	BannerHandler       *handler.CrudHandler[entity.Banner]
	CategoryHandler     *handler.CrudHandler[entity.Category]
	CountryHandler      *handler.CrudHandler[entity.Country]
	NotificationHandler *handler.CrudHandler[entity.Notification]
	AuthMiddleware      *middleware.AuthMiddleware
	IPAllowMiddleware   *middleware.IPAllowMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// routes is the full route table.
func (r *router) routes() []routeDef {
	p := r.params

	defs := []routeDef{
		{method: http.MethodGet, path: "/health", handler: handler.HealthCheck},

		{method: http.MethodPost, path: "/auth/login", handler: p.AuthHandler.Login},
		{method: http.MethodPost, path: "/auth/refresh", handler: p.AuthHandler.Refresh, auth: authRefresh},
		{method: http.MethodPost, path: "/auth/logout", handler: p.AuthHandler.Logout, auth: authRefresh},
		{method: http.MethodPost, path: "/auth/logout-all", handler: p.AuthHandler.LogoutAll, auth: authAccess},
		{method: http.MethodGet, path: "/auth/me", handler: p.AuthHandler.Me, auth: authAccess},

		{method: http.MethodGet, path: "/notifications", handler: p.NotificationHandler.List, auth: authAccess},
		{method: http.MethodGet, path: "/notifications/:id", handler: p.NotificationHandler.Get, auth: authAccess},
		{method: http.MethodPost, path: "/notifications", handler: p.NotificationHandler.Create, auth: authAccess, roles: elevatedRoles, ipGuard: true},
	}

	defs = append(defs, crudRoutes("/banners", p.BannerHandler)...)
	defs = append(defs, crudRoutes("/categories", p.CategoryHandler)...)
	defs = append(defs, crudRoutes("/countries", p.CountryHandler)...)

	return defs
}

// crudRoutes declares the shared catalog surface: public reads, elevated
// writes behind the IP guard.
func crudRoutes[E any](prefix string, h *handler.CrudHandler[E]) []routeDef {
	return []routeDef{
		{method: http.MethodGet, path: prefix, handler: h.List},
		{method: http.MethodGet, path: prefix + "/:id", handler: h.Get},
		{method: http.MethodPost, path: prefix, handler: h.Create, auth: authAccess, roles: elevatedRoles, ipGuard: true},
		{method: http.MethodPut, path: prefix + "/:id", handler: h.Update, auth: authAccess, roles: elevatedRoles, ipGuard: true},
		{method: http.MethodDelete, path: prefix + "/:id", handler: h.Delete, auth: authAccess, roles: elevatedRoles, ipGuard: true},
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	for _, def := range r.routes() {
		chain := make([]echo.MiddlewareFunc, 0, 3)

		switch def.auth {
		case authAccess:
			chain = append(chain, r.params.AuthMiddleware.Authenticate)
		case authRefresh:
			chain = append(chain, r.params.AuthMiddleware.AuthenticateRefresh)
		case authNone:
		}

		if len(def.roles) > 0 {
			chain = append(chain, r.params.AuthMiddleware.RequireRoles(def.roles...))
		}

		if def.ipGuard {
			chain = append(chain, r.params.IPAllowMiddleware.Allow)
		}

		e.Add(def.method, def.path, def.handler, chain...)
	}
}
