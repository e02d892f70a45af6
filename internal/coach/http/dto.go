package http

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/smashcourt/smashcourt-backend/internal/coach"
)

type CreateCoachRequest struct {
	Name           string                  `json:"name" binding:"required"`
	HourlyRate     decimal.Decimal         `json:"hourly_rate" binding:"required"`
	Specialization string                  `json:"specialization"`
	Availability   []coach.DayAvailability `json:"availability"`
}

type CoachResponse struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	HourlyRate     decimal.Decimal         `json:"hourly_rate"`
	Specialization string                  `json:"specialization"`
	Availability   []coach.DayAvailability `json:"availability"`
	AverageRating  decimal.Decimal         `json:"average_rating"`
	RatingCount    int                     `json:"rating_count"`
	CreatedAt      time.Time               `json:"created_at"`
}

// CoachTag is the compact coach reference embedded in other responses.
type CoachTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewCoachResponse(co *coach.Coach) CoachResponse {
	return CoachResponse{
		ID:             co.ID,
		Name:           co.Name,
		HourlyRate:     co.HourlyRate,
		Specialization: co.Specialization,
		Availability:   co.Availability,
		AverageRating:  co.AverageRating,
		RatingCount:    co.RatingCount,
		CreatedAt:      co.CreatedAt,
	}
}
