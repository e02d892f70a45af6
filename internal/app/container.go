package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smashcourt/smashcourt-backend/internal/api"
	"github.com/smashcourt/smashcourt-backend/internal/auth"
	"github.com/smashcourt/smashcourt-backend/internal/booking"
	"github.com/smashcourt/smashcourt-backend/internal/coach"
	"github.com/smashcourt/smashcourt-backend/internal/court"
	"github.com/smashcourt/smashcourt-backend/internal/equipment"
	"github.com/smashcourt/smashcourt-backend/internal/pricing"
	"github.com/smashcourt/smashcourt-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction    bool
	ProdOrigins     string
	DBPool          *pgxpool.Pool
	JWTSecret       string
	JWTTTL          time.Duration
	BcryptCost      int
	PricingTimeZone *time.Location
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Catalog Modules
	courtRepo := court.NewPgxRepository(cfg.DBPool)
	courtService := court.NewService(courtRepo)

	equipmentRepo := equipment.NewPgxRepository(cfg.DBPool)
	equipmentService := equipment.NewService(equipmentRepo)

	coachRepo := coach.NewPgxRepository(cfg.DBPool)
	coachService := coach.NewService(coachRepo)

	// Pricing Module
	ruleRepo := pricing.NewPgxRepository(cfg.DBPool)
	ruleService := pricing.NewRuleService(ruleRepo)
	evaluator := pricing.NewEvaluator(ruleRepo, equipmentService, coachService, cfg.PricingTimeZone)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, courtService, evaluator)

	router := api.NewRouter(api.Config{
		IsProduction:     cfg.IsProduction,
		ProdOrigins:      cfg.ProdOrigins,
		UserService:      userService,
		CourtService:     courtService,
		EquipmentService: equipmentService,
		CoachService:     coachService,
		RuleService:      ruleService,
		Evaluator:        evaluator,
		BookingService:   bookingService,
		JWTManager:       jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}
}
