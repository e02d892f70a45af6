package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/smashcourt/smashcourt-backend/internal/auth"
	"github.com/smashcourt/smashcourt-backend/internal/coach"
	"github.com/smashcourt/smashcourt-backend/internal/config"
	"github.com/smashcourt/smashcourt-backend/internal/court"
	"github.com/smashcourt/smashcourt-backend/internal/db"
	"github.com/smashcourt/smashcourt-backend/internal/equipment"
	"github.com/smashcourt/smashcourt-backend/internal/pkg/logger"
	"github.com/smashcourt/smashcourt-backend/internal/pricing"
	"github.com/smashcourt/smashcourt-backend/internal/user"
)

// Seeds the catalog and rule stores with the demo dataset.
func main() {
	destroy := flag.Bool("destroy", false, "wipe seeded tables instead of seeding")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Setup(cfg.IsProduction)

	pool, err := db.NewPool(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to db")
	}
	defer pool.Close()

	tables := []string{"bookings", "pricing_rules", "coaches", "equipment", "courts", "users"}
	for _, t := range tables {
		if _, err := pool.Exec(ctx, "TRUNCATE TABLE public."+t+" CASCADE"); err != nil {
			log.Fatal().Err(err).Str("table", t).Msg("failed to truncate table")
		}
	}
	if *destroy {
		log.Info().Msg("data destroyed")
		os.Exit(0)
	}

	hasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	hash, err := hasher.Hash("password123")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash seed password")
	}

	userRepo := user.NewPgxRepository(pool)
	admin := &user.User{Name: "Admin User", Email: "admin@example.com", PasswordHash: hash, Role: user.RoleAdmin}
	player := &user.User{Name: "John Doe", Email: "user@example.com", PasswordHash: hash, Role: user.RoleUser}
	for _, u := range []*user.User{admin, player} {
		if err := userRepo.Create(ctx, u); err != nil {
			log.Fatal().Err(err).Str("email", u.Email).Msg("failed to create user")
		}
	}

	courtRepo := court.NewPgxRepository(pool)
	courts := []*court.Court{
		{Name: "Court A (Indoor)", Type: court.TypeIndoor, BasePrice: decimal.NewFromInt(150)},
		{Name: "Court B (Indoor)", Type: court.TypeIndoor, BasePrice: decimal.NewFromInt(150)},
		{Name: "Court C (Outdoor)", Type: court.TypeOutdoor, BasePrice: decimal.NewFromInt(100)},
	}
	for _, c := range courts {
		c.OwnerID = admin.ID
		c.Status = court.StatusActive
		if err := courtRepo.Create(ctx, c); err != nil {
			log.Fatal().Err(err).Str("court", c.Name).Msg("failed to create court")
		}
	}

	ruleRepo := pricing.NewPgxRepository(pool)
	rules := []*pricing.Rule{
		{
			Name:       "Peak Hours (6-9 PM)",
			Type:       pricing.RuleMultiplier,
			Value:      decimal.RequireFromString("1.2"),
			Conditions: pricing.ConditionSet{StartTime: "18:00", EndTime: "21:00"},
			Priority:   1,
			Enabled:    true,
		},
		{
			Name:       "Weekend Surcharge",
			Type:       pricing.RuleMultiplier,
			Value:      decimal.RequireFromString("1.1"),
			Conditions: pricing.ConditionSet{Days: []string{"Saturday", "Sunday"}},
			Priority:   2,
			Enabled:    true,
		},
	}
	for _, r := range rules {
		if err := ruleRepo.Create(ctx, r); err != nil {
			log.Fatal().Err(err).Str("rule", r.Name).Msg("failed to create rule")
		}
	}

	coachRepo := coach.NewPgxRepository(pool)
	coaches := []*coach.Coach{
		{
			Name:           "Mike Smith",
			HourlyRate:     decimal.NewFromInt(300),
			Specialization: "Singles Tactics",
			Availability: []coach.DayAvailability{
				{Day: "Monday", Windows: []coach.Window{{StartTime: "18:00", EndTime: "21:00"}}},
				{Day: "Wednesday", Windows: []coach.Window{{StartTime: "18:00", EndTime: "21:00"}}},
			},
		},
		{
			Name:           "Sarah Jones",
			HourlyRate:     decimal.NewFromInt(400),
			Specialization: "Doubles Strategy",
			Availability: []coach.DayAvailability{
				{Day: "Saturday", Windows: []coach.Window{{StartTime: "09:00", EndTime: "13:00"}}},
				{Day: "Sunday", Windows: []coach.Window{{StartTime: "09:00", EndTime: "13:00"}}},
			},
		},
	}
	for _, co := range coaches {
		if err := coachRepo.Create(ctx, co); err != nil {
			log.Fatal().Err(err).Str("coach", co.Name).Msg("failed to create coach")
		}
	}

	equipmentRepo := equipment.NewPgxRepository(pool)
	items := []*equipment.Equipment{
		{Name: "Yonex Astrox 99", Category: equipment.CategoryRacket, Quantity: 10, Price: decimal.NewFromInt(50), Status: equipment.StatusAvailable},
		{Name: "Li-Ning Court Shoes", Category: equipment.CategoryShoes, Quantity: 5, Price: decimal.NewFromInt(100), Status: equipment.StatusAvailable},
		{Name: "Mavis 350 Shuttlecock", Category: equipment.CategoryShuttlecock, Quantity: 50, Price: decimal.NewFromInt(200), Status: equipment.StatusAvailable},
	}
	for _, e := range items {
		if err := equipmentRepo.Create(ctx, e); err != nil {
			log.Fatal().Err(err).Str("equipment", e.Name).Msg("failed to create equipment")
		}
	}

	log.Info().Msg("data imported")
}
