// File: internal/router/router.go
package router

import (
	"contacts-api/internal/cache"
	"contacts-api/internal/database"
	"contacts-api/internal/handler"
	"contacts-api/internal/handler/auth"
	"contacts-api/internal/handler/contacts"
	"contacts-api/internal/middleware"
	"contacts-api/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const bodyLimit = "1M"

// Options tunes the interceptor chain.
type Options struct {
	RateLimitRPS       float64
	RateLimitBurst     int
	CORSAllowedOrigins []string
	// TrustProxyHeaders takes the client IP from X-Forwarded-For. Only enable
	// it behind a proxy that overwrites the header.
	TrustProxyHeaders bool
}

func ipExtractor(trustProxy bool) echo.IPExtractor {
	if trustProxy {
		return echo.ExtractIPFromXFFHeader()
	}
	return echo.ExtractIPDirect()
}

// Interceptors is the server-wide chain, outermost first.
func Interceptors(opts Options) []echo.MiddlewareFunc {
	origins := opts.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return []echo.MiddlewareFunc{
		echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}),
		middleware.RequestLogger(),
		echomw.Recover(),
		echomw.Secure(),
		echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: origins,
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		}),
		echomw.BodyLimit(bodyLimit),
	}
}

// Setup installs the interceptor chain and registers every route.
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, tokens *service.TokenService, opts Options) {
	// rate limiting and request logs key on c.RealIP()
	e.IPExtractor = ipExtractor(opts.TrustProxyHeaders)
	e.Use(Interceptors(opts)...)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	var apiMW []echo.MiddlewareFunc
	if opts.RateLimitRPS > 0 && opts.RateLimitBurst > 0 {
		apiMW = append(apiMW, middleware.RateLimit(opts.RateLimitRPS, opts.RateLimitBurst))
	}
	api := e.Group("/api", apiMW...)

	// health check, no auth
	api.GET("/ping", handler.PingHandler(db, cch))

	api.POST("/register", auth.RegisterHandler(db))
	api.POST("/login", auth.LoginHandler(db, tokens))
	api.GET("/current", middleware.RequireAuth(tokens, auth.CurrentHandler))

	apiContacts := api.Group("/contacts")
	apiContacts.GET("", middleware.RequireAuth(tokens, contacts.ListHandler(db)))
	apiContacts.POST("", middleware.RequireAuth(tokens, contacts.CreateHandler(db)))
	apiContacts.GET("/:id", middleware.RequireAuth(tokens, contacts.GetHandler(db)))
	apiContacts.PUT("/:id", middleware.RequireAuth(tokens, contacts.UpdateHandler(db)))
	apiContacts.DELETE("/:id", middleware.RequireAuth(tokens, contacts.DeleteHandler(db)))
}
