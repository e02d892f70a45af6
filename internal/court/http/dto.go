package http

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/smashcourt/smashcourt-backend/internal/court"
)

type CreateCourtRequest struct {
	Name      string          `json:"name" binding:"required"`
	Type      string          `json:"type" binding:"required,oneof=indoor outdoor"`
	BasePrice decimal.Decimal `json:"base_price" binding:"required"`
}

type UpdateCourtRequest struct {
	Name      *string          `json:"name"`
	Type      *string          `json:"type" binding:"omitempty,oneof=indoor outdoor"`
	BasePrice *decimal.Decimal `json:"base_price"`
	Status    *string          `json:"status" binding:"omitempty,oneof=active maintenance disabled"`
}

type CourtResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	OwnerID       string          `json:"owner_id"`
	BasePrice     decimal.Decimal `json:"base_price"`
	Status        string          `json:"status"`
	AverageRating decimal.Decimal `json:"average_rating"`
	RatingCount   int             `json:"rating_count"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CourtTag is the compact court reference embedded in other responses.
type CourtTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewCourtResponse(c *court.Court) CourtResponse {
	return CourtResponse{
		ID:            c.ID,
		Name:          c.Name,
		Type:          string(c.Type),
		OwnerID:       c.OwnerID,
		BasePrice:     c.BasePrice,
		Status:        string(c.Status),
		AverageRating: c.AverageRating,
		RatingCount:   c.RatingCount,
		CreatedAt:     c.CreatedAt,
	}
}

func NewCourtResponses(courts []*court.Court) []CourtResponse {
	items := make([]CourtResponse, len(courts))
	for i, c := range courts {
		items[i] = NewCourtResponse(c)
	}
	return items
}
