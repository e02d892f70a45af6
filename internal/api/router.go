package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/smashcourt/smashcourt-backend/internal/auth"
	"github.com/smashcourt/smashcourt-backend/internal/booking"
	bookingHttp "github.com/smashcourt/smashcourt-backend/internal/booking/http"
	"github.com/smashcourt/smashcourt-backend/internal/coach"
	coachHttp "github.com/smashcourt/smashcourt-backend/internal/coach/http"
	"github.com/smashcourt/smashcourt-backend/internal/court"
	courtHttp "github.com/smashcourt/smashcourt-backend/internal/court/http"
	"github.com/smashcourt/smashcourt-backend/internal/equipment"
	equipmentHttp "github.com/smashcourt/smashcourt-backend/internal/equipment/http"
	"github.com/smashcourt/smashcourt-backend/internal/pkg/logger"
	"github.com/smashcourt/smashcourt-backend/internal/pricing"
	pricingHttp "github.com/smashcourt/smashcourt-backend/internal/pricing/http"
	"github.com/smashcourt/smashcourt-backend/internal/user"
	userHttp "github.com/smashcourt/smashcourt-backend/internal/user/http"
)

// Config collects everything the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService      user.Service
	CourtService     court.Service
	EquipmentService equipment.Service
	CoachService     coach.Service
	RuleService      pricing.RuleService
	Evaluator        pricing.Evaluator
	BookingService   booking.Service
	JWTManager       *auth.JWTManager
}

// NewRouter assembles middleware and registers routes for every module.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(logger.RequestLogger(), logger.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.Required(cfg.JWTManager)
	adminMiddleware := auth.RequireRoles(string(user.RoleAdmin))
	ownerMiddleware := auth.RequireRoles(string(user.RoleOwner), string(user.RoleAdmin))

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	courtHandler := courtHttp.NewHandler(cfg.CourtService)
	equipmentHandler := equipmentHttp.NewHandler(cfg.EquipmentService)
	coachHandler := coachHttp.NewHandler(cfg.CoachService)
	pricingHandler := pricingHttp.NewHandler(cfg.Evaluator, cfg.RuleService, cfg.CourtService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware)
		courtHttp.RegisterRoutes(v1, courtHandler, authMiddleware, ownerMiddleware)
		equipmentHttp.RegisterRoutes(v1, equipmentHandler, authMiddleware, adminMiddleware)
		coachHttp.RegisterRoutes(v1, coachHandler, authMiddleware, adminMiddleware)
		pricingHttp.RegisterRoutes(v1, pricingHandler, authMiddleware, adminMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
	}

	return r
}
