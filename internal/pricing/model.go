package pricing

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smashcourt/smashcourt-backend/internal/pkg/apperror"
)

var (
	ErrInvalidDuration = apperror.New(http.StatusBadRequest, "end time must be after start time")
	ErrInvalidQuantity = apperror.New(http.StatusBadRequest, "equipment quantity must be positive")
	ErrInvalidRule     = apperror.New(http.StatusBadRequest, "invalid pricing rule")
)

type RuleType string

const (
	RuleMultiplier    RuleType = "multiplier"
	RuleFixedAddition RuleType = "fixed_addition"
)

func (t RuleType) Valid() bool {
	return t == RuleMultiplier || t == RuleFixedAddition
}

// ConditionSet holds the optional condition groups of a rule as stored.
// A rule with no groups set matches unconditionally; every group that is
// set must match for the rule to apply.
type ConditionSet struct {
	Days      []string `json:"days,omitempty"`
	StartTime string   `json:"start_time,omitempty"` // "18:00"
	EndTime   string   `json:"end_time,omitempty"`   // "21:00", window is [start, end)
	CourtType string   `json:"court_type,omitempty"`
}

// Rule adjusts the court price of a booking. Multiplier rules compound,
// fixed additions sum; rules evaluate in ascending priority order.
type Rule struct {
	ID         string
	Name       string
	Type       RuleType
	Value      decimal.Decimal
	Conditions ConditionSet
	Priority   int
	Enabled    bool
	CreatedAt  time.Time
}

// EquipmentSelection pairs an equipment id with a rental quantity.
type EquipmentSelection struct {
	EquipmentID string `json:"equipment_id"`
	Quantity    int    `json:"quantity"`
}

// LineItem is one entry of a price breakdown. Order matters: the breakdown
// reads top to bottom as the price was derived.
type LineItem struct {
	Label    string           `json:"label"`
	Cost     decimal.Decimal  `json:"cost"`
	Quantity *decimal.Decimal `json:"quantity,omitempty"`
	Note     string           `json:"note,omitempty"`
}

// Quote is the result of a price evaluation: the exact total and the
// ordered breakdown that explains it.
type Quote struct {
	TotalPrice decimal.Decimal
	Breakdown  []LineItem
}
