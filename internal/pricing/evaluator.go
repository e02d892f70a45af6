package pricing

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smashcourt/smashcourt-backend/internal/coach"
	"github.com/smashcourt/smashcourt-backend/internal/court"
	"github.com/smashcourt/smashcourt-backend/internal/equipment"
)

// QuoteInput describes one booking to price. Court is already resolved by
// the caller; equipment and coach ids are resolved here.
type QuoteInput struct {
	Court     *court.Court
	StartTime time.Time
	EndTime   time.Time
	Equipment []EquipmentSelection
	CoachID   string
}

// Evaluator computes the price of a booking from the current rule snapshot
// and the catalog. It is a pure reader: no writes, and identical inputs
// against an unchanged rule store yield identical quotes.
type Evaluator interface {
	Quote(ctx context.Context, input QuoteInput) (*Quote, error)
}

type evaluator struct {
	rules     Repository
	equipment equipment.Service
	coaches   coach.Service
	loc       *time.Location
}

// NewEvaluator creates an Evaluator. loc is the reference time zone used for
// day-of-week and clock-hour rule matching.
func NewEvaluator(rules Repository, equipSvc equipment.Service, coachSvc coach.Service, loc *time.Location) Evaluator {
	if loc == nil {
		loc = time.UTC
	}
	return &evaluator{
		rules:     rules,
		equipment: equipSvc,
		coaches:   coachSvc,
		loc:       loc,
	}
}

var secondsPerHour = decimal.NewFromInt(3600)

func (e *evaluator) Quote(ctx context.Context, input QuoteInput) (*Quote, error) {
	// 1. Duration in hours, as an exact decimal. Fractional hours are fine;
	// zero or negative duration is not.
	seconds := input.EndTime.Sub(input.StartTime) / time.Second
	if seconds <= 0 {
		return nil, ErrInvalidDuration
	}
	durationHours := decimal.NewFromInt(int64(seconds)).Div(secondsPerHour)

	total := decimal.Zero
	var breakdown []LineItem

	// 2. Raw court base cost. Recorded first; the adjusted figure below is
	// what actually feeds the total.
	baseCost := input.Court.BasePrice.Mul(durationHours)
	breakdown = append(breakdown, LineItem{
		Label:    "Court Base Price",
		Cost:     baseCost,
		Quantity: &durationHours,
	})

	// 3-5. Apply enabled rules in priority order: multipliers compound,
	// fixed additions sum. Each applied rule gets its own line.
	rules, err := e.rules.ListEnabledByPriority(ctx)
	if err != nil {
		return nil, err
	}

	bc := BookingContext{
		Start:     input.StartTime.In(e.loc),
		CourtType: input.Court.Type,
	}

	multiplier := decimal.NewFromInt(1)
	additions := decimal.Zero

	for _, rule := range rules {
		applies, err := rule.AppliesTo(bc)
		if err != nil {
			return nil, err
		}
		if !applies {
			continue
		}

		switch rule.Type {
		case RuleMultiplier:
			multiplier = multiplier.Mul(rule.Value)
			breakdown = append(breakdown, LineItem{
				Label: "Rule: " + rule.Name,
				Cost:  decimal.Zero,
				Note:  "x" + rule.Value.String(),
			})
		case RuleFixedAddition:
			additions = additions.Add(rule.Value)
			breakdown = append(breakdown, LineItem{
				Label: "Rule: " + rule.Name,
				Cost:  rule.Value,
			})
		}
	}

	// 6. Adjusted court cost replaces the raw base in the total.
	adjustedCourtCost := baseCost.Mul(multiplier).Add(additions)
	breakdown = append(breakdown, LineItem{
		Label: "Court Final Price (adjustments applied)",
		Cost:  adjustedCourtCost,
	})
	total = total.Add(adjustedCourtCost)

	// 7. Equipment, in the order the caller selected it.
	for _, sel := range input.Equipment {
		if sel.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		item, err := e.equipment.GetByID(ctx, sel.EquipmentID)
		if err != nil {
			return nil, err
		}
		qty := decimal.NewFromInt(int64(sel.Quantity))
		cost := item.Price.Mul(qty)
		total = total.Add(cost)
		breakdown = append(breakdown, LineItem{
			Label:    fmt.Sprintf("%s x%d", item.Name, sel.Quantity),
			Cost:     cost,
			Quantity: &qty,
		})
	}

	// 8. Coach, billed per hour of the booking.
	if input.CoachID != "" {
		co, err := e.coaches.GetByID(ctx, input.CoachID)
		if err != nil {
			return nil, err
		}
		cost := co.HourlyRate.Mul(durationHours)
		total = total.Add(cost)
		breakdown = append(breakdown, LineItem{
			Label: "Coach: " + co.Name,
			Cost:  cost,
		})
	}

	// 9. Total stays unrounded so recomputation from the same inputs
	// reproduces it exactly. Display rounding belongs to clients.
	return &Quote{
		TotalPrice: total,
		Breakdown:  breakdown,
	}, nil
}
