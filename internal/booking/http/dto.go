package http

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/smashcourt/smashcourt-backend/internal/booking"
	coachHttp "github.com/smashcourt/smashcourt-backend/internal/coach/http"
	courtHttp "github.com/smashcourt/smashcourt-backend/internal/court/http"
	"github.com/smashcourt/smashcourt-backend/internal/pricing"
)

type CreateBookingRequest struct {
	CourtID   string                       `json:"court_id" binding:"required,uuid"`
	Equipment []pricing.EquipmentSelection `json:"equipment" binding:"omitempty,dive"`
	CoachID   string                       `json:"coach_id" binding:"omitempty,uuid"`
	StartTime time.Time                    `json:"start_time" binding:"required"`
	EndTime   time.Time                    `json:"end_time" binding:"required"`
}

type BookingResponse struct {
	ID         string                       `json:"id"`
	UserID     string                       `json:"user_id"`
	Court      courtHttp.CourtTag           `json:"court"`
	Equipment  []pricing.EquipmentSelection `json:"equipment"`
	Coach      *coachHttp.CoachTag          `json:"coach,omitempty"`
	StartTime  time.Time                    `json:"start_time"`
	EndTime    time.Time                    `json:"end_time"`
	TotalPrice decimal.Decimal              `json:"total_price"`
	Breakdown  []pricing.LineItem           `json:"breakdown"`
	Status     string                       `json:"status"`
	CreatedAt  time.Time                    `json:"created_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	resp := BookingResponse{
		ID:         b.ID,
		UserID:     b.UserID,
		Court:      courtHttp.CourtTag{ID: b.CourtID, Name: b.CourtName},
		Equipment:  b.Equipment,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		TotalPrice: b.TotalPrice,
		Breakdown:  b.Breakdown,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
	}
	if b.CoachID != "" {
		resp.Coach = &coachHttp.CoachTag{ID: b.CoachID, Name: b.CoachName}
	}
	return resp
}

type AvailabilityResponse struct {
	CourtID string             `json:"court_id"`
	Date    string             `json:"date"`
	Slots   []booking.TimeSlot `json:"slots"`
}
