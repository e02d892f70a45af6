package http

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/smashcourt/smashcourt-backend/internal/pricing"
)

type QuoteRequest struct {
	CourtID   string                       `json:"court_id" binding:"required,uuid"`
	Equipment []pricing.EquipmentSelection `json:"equipment" binding:"omitempty,dive"`
	CoachID   string                       `json:"coach_id" binding:"omitempty,uuid"`
	StartTime time.Time                    `json:"start_time" binding:"required"`
	EndTime   time.Time                    `json:"end_time" binding:"required"`
}

type QuoteResponse struct {
	TotalPrice decimal.Decimal    `json:"total_price"`
	Breakdown  []pricing.LineItem `json:"breakdown"`
}

type CreateRuleRequest struct {
	Name       string               `json:"name" binding:"required"`
	Type       string               `json:"type" binding:"required,oneof=multiplier fixed_addition"`
	Value      decimal.Decimal      `json:"value" binding:"required"`
	Conditions pricing.ConditionSet `json:"conditions"`
	Priority   int                  `json:"priority"`
	Enabled    *bool                `json:"enabled"`
}

type RuleResponse struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	Type       string               `json:"type"`
	Value      decimal.Decimal      `json:"value"`
	Conditions pricing.ConditionSet `json:"conditions"`
	Priority   int                  `json:"priority"`
	Enabled    bool                 `json:"enabled"`
	CreatedAt  time.Time            `json:"created_at"`
}

func NewRuleResponse(r *pricing.Rule) RuleResponse {
	return RuleResponse{
		ID:         r.ID,
		Name:       r.Name,
		Type:       string(r.Type),
		Value:      r.Value,
		Conditions: r.Conditions,
		Priority:   r.Priority,
		Enabled:    r.Enabled,
		CreatedAt:  r.CreatedAt,
	}
}
