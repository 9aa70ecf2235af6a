package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/potluckhq/potluck/internal/infrastructure/cache"
	"github.com/potluckhq/potluck/internal/infrastructure/config"
	"github.com/potluckhq/potluck/internal/infrastructure/ratelimit"
	"github.com/potluckhq/potluck/internal/interfaces/http/middleware"
	"github.com/potluckhq/potluck/internal/interfaces/http/routes"
	"github.com/potluckhq/potluck/internal/shared/logger"

	_ "github.com/potluckhq/potluck/docs"
)

const loginRateLimitScope = "admin_login"

// Router wires storage, use cases, middleware and handlers into one gin engine.
type Router struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	adminAuth    *middleware.AdminAuthMiddleware
	rateLimiter  ratelimit.RateLimiter
	sessionStore cache.SessionStore
}

// NewRouter creates the router. redisClient may be nil, in which case session
// revocation and login throttling are kept in process memory.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	r := &Router{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	if redisClient != nil {
		r.sessionStore = cache.NewRedisSessionStore(redisClient)
		r.rateLimiter = ratelimit.NewRedisRateLimiter(redisClient)
	} else {
		r.sessionStore = cache.NewMemorySessionStore()
		r.rateLimiter = ratelimit.NewMemoryRateLimiter()
	}

	r.initRepositories()
	if err := r.initUseCases(); err != nil {
		return nil, err
	}
	if err := r.initHandlers(); err != nil {
		return nil, err
	}

	return r, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.RequestLogger(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.hdlrs.healthHandler.Health)
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		AuthHandler:    r.hdlrs.authHandler,
		AdminHandler:   r.hdlrs.adminHandler,
		AuthMiddleware: r.adminAuth,
		LoginLimiter: middleware.RateLimit(
			r.rateLimiter,
			loginRateLimitScope,
			r.cfg.RateLimit.LoginPerMinute,
			time.Minute,
			r.log,
		),
	})

	routes.SetupPublicRoutes(r.engine, &routes.PublicRouteConfig{
		PublicHandler:   r.hdlrs.publicHandler,
		AttendeeSession: middleware.AttendeeSession(r.cfg.Attendee, r.cfg.Auth.Cookie),
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
