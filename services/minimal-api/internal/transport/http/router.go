package httpx

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/cagncvs/minimal-api/services/minimal-api/internal/domain"
	"github.com/cagncvs/minimal-api/services/minimal-api/internal/transport/http/handlers"
	"github.com/cagncvs/minimal-api/services/minimal-api/internal/transport/http/middlewares"
)

type Sessions interface {
	handlers.SessionRegistry
	middlewares.SessionChecker
}

type Deps struct {
	Admins   handlers.AdminService
	Vehicles handlers.VehicleService
	Tokens   interface {
		handlers.TokenIssuer
		middlewares.TokenParser
	}
	// Sessions may be nil.
	Sessions     Sessions
	LoginLimiter *middlewares.IPLimiter
	Logger       *slog.Logger
	ServiceName  string
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(d.ServiceName))
	r.Use(middlewares.AccessLog(d.Logger))

	var sessions handlers.SessionRegistry
	var checker middlewares.SessionChecker
	if d.Sessions != nil {
		sessions, checker = d.Sessions, d.Sessions
	}

	adm := string(domain.RoleAdm)
	editor := string(domain.RoleEditor)
	authn := middlewares.JWTAuth(d.Tokens, checker)

	ah := handlers.NewAdminHandler(d.Admins, d.Tokens, sessions, d.Logger)
	vh := handlers.NewVehicleHandler(d.Vehicles, d.Logger)

	r.GET("/", handlers.Home)

	admins := r.Group("/administradores")
	{
		login := []gin.HandlerFunc{}
		if d.LoginLimiter != nil {
			login = append(login, middlewares.RateLimit(d.LoginLimiter))
		}
		admins.POST("/login", append(login, ah.Login)...)
		admins.POST("/logout", authn, ah.Logout)

		guarded := admins.Group("")
		guarded.Use(authn, middlewares.RequireRole(adm))
		guarded.POST("", ah.Create)
		guarded.GET("", ah.List)
		guarded.GET("/:id", ah.GetByID)
	}

	vehicles := r.Group("/veiculos")
	vehicles.Use(authn)
	{
		vehicles.GET("", vh.List)
		vehicles.GET("/:id", middlewares.RequireRole(adm, editor), vh.GetByID)
		vehicles.POST("", middlewares.RequireRole(adm, editor), vh.Create)
		vehicles.PUT("/:id", middlewares.RequireRole(adm), vh.Update)
		vehicles.DELETE("/:id", middlewares.RequireRole(adm), vh.Delete)
	}

	return r
}
