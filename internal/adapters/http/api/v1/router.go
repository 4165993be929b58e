package v1

import (
	"github.com/labstack/echo/v4"

	"github.com/legal-connect/backend/internal/adapters/http/api/v1/handlers"
	authmw "github.com/legal-connect/backend/internal/adapters/http/middleware"
	"github.com/legal-connect/backend/internal/domain"
)

type Router struct {
	auth      *handlers.AuthHandler
	users     *handlers.UserHandler
	advocates *handlers.AdvocateHandler
	interns   *handlers.InternHandler
	clients   *handlers.ClientHandler
	authMW    echo.MiddlewareFunc
}

func NewRouter(auth *handlers.AuthHandler, users *handlers.UserHandler, advocates *handlers.AdvocateHandler, interns *handlers.InternHandler, clients *handlers.ClientHandler, authMW echo.MiddlewareFunc) *Router {
	return &Router{auth: auth, users: users, advocates: advocates, interns: interns, clients: clients, authMW: authMW}
}

func (r *Router) Register(g *echo.Group) {
	auth := g.Group("/auth")
	auth.POST("/register", r.auth.Register)
	auth.POST("/login", r.auth.Login)
	auth.GET("/me", r.auth.Me, r.authMW)

	users := g.Group("/users", r.authMW)
	users.GET("/profile", r.users.GetProfile)
	users.PUT("/profile", r.users.UpdateProfile)

	advocates := g.Group("/advocates")
	advocates.GET("", r.advocates.List)
	advocates.PUT("/profile", r.advocates.UpdateProfile, r.authMW, authmw.RequireRole(string(domain.UserTypeAdvocate)))
	advocates.GET("/:id", r.advocates.Get)
	advocates.POST("/:id/reviews", r.advocates.AddReview, r.authMW)

	interns := g.Group("/interns")
	interns.GET("", r.interns.List)
	interns.PUT("/profile", r.interns.UpdateProfile, r.authMW, authmw.RequireRole(string(domain.UserTypeIntern)))
	interns.POST("/achievements", r.interns.AddAchievement, r.authMW, authmw.RequireRole(string(domain.UserTypeIntern)))
	interns.POST("/certifications", r.interns.AddCertification, r.authMW, authmw.RequireRole(string(domain.UserTypeIntern)))
	interns.GET("/:id", r.interns.Get)

	clients := g.Group("/clients", r.authMW)
	clients.GET("", r.clients.List)
	clients.GET("/:id", r.clients.Get)
	clients.PUT("/:id", r.clients.Update)
}
