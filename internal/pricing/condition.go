package pricing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/smashcourt/smashcourt-backend/internal/court"
)

// BookingContext is the slice of a booking a rule condition can see.
// Start is already converted to the evaluation's reference time zone.
type BookingContext struct {
	Start     time.Time
	CourtType court.Type
}

// Condition is one matching capability of a rule. All conditions of a rule
// must hold for the rule to apply.
type Condition interface {
	Matches(bc BookingContext) bool
}

type dayCondition struct {
	days map[string]struct{}
}

func (c dayCondition) Matches(bc BookingContext) bool {
	_, ok := c.days[bc.Start.Weekday().String()]
	return ok
}

// hourWindowCondition matches when the booking's start hour falls in
// [startHour, endHour). Hour granularity, same as the stored "HH:MM" values.
type hourWindowCondition struct {
	startHour int
	endHour   int
}

func (c hourWindowCondition) Matches(bc BookingContext) bool {
	h := bc.Start.Hour()
	return h >= c.startHour && h < c.endHour
}

type courtTypeCondition struct {
	courtType court.Type
}

func (c courtTypeCondition) Matches(bc BookingContext) bool {
	return bc.CourtType == c.courtType
}

// conditions expands the stored condition set into its variant list.
// An empty list means the rule applies unconditionally.
func (cs ConditionSet) conditions() ([]Condition, error) {
	var out []Condition

	if len(cs.Days) > 0 {
		days := make(map[string]struct{}, len(cs.Days))
		for _, d := range cs.Days {
			days[d] = struct{}{}
		}
		out = append(out, dayCondition{days: days})
	}

	if cs.StartTime != "" && cs.EndTime != "" {
		startHour, err := parseClockHour(cs.StartTime)
		if err != nil {
			return nil, err
		}
		endHour, err := parseClockHour(cs.EndTime)
		if err != nil {
			return nil, err
		}
		out = append(out, hourWindowCondition{startHour: startHour, endHour: endHour})
	}

	if cs.CourtType != "" {
		out = append(out, courtTypeCondition{courtType: court.Type(cs.CourtType)})
	}

	return out, nil
}

// AppliesTo reports whether every present condition group of the rule
// matches the booking context (AND semantics, no partial application).
func (r *Rule) AppliesTo(bc BookingContext) (bool, error) {
	conds, err := r.Conditions.conditions()
	if err != nil {
		return false, fmt.Errorf("rule %q: %w", r.Name, err)
	}
	for _, cond := range conds {
		if !cond.Matches(bc) {
			return false, nil
		}
	}
	return true, nil
}

// parseClockHour extracts the hour from a "HH:MM" clock string.
func parseClockHour(s string) (int, error) {
	hourStr, _, _ := strings.Cut(s, ":")
	h, err := strconv.Atoi(hourStr)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	return h, nil
}
