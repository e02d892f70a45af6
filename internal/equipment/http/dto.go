package http

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/smashcourt/smashcourt-backend/internal/equipment"
)

type CreateEquipmentRequest struct {
	Name     string          `json:"name" binding:"required"`
	Category string          `json:"category" binding:"required,oneof=racket shoes shuttlecock"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	Quantity int             `json:"quantity" binding:"gte=0"`
}

type EquipmentResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

func NewEquipmentResponse(e *equipment.Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:        e.ID,
		Name:      e.Name,
		Category:  string(e.Category),
		Price:     e.Price,
		Quantity:  e.Quantity,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
	}
}
