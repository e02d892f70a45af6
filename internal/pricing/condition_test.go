package pricing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smashcourt/smashcourt-backend/internal/court"
	"github.com/smashcourt/smashcourt-backend/internal/pricing"
)

func TestRuleAppliesTo(t *testing.T) {
	// 2026-02-07 is a Saturday.
	saturdayEvening := time.Date(2026, 2, 7, 18, 0, 0, 0, time.UTC)
	mondayMorning := time.Date(2026, 2, 9, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		rule pricing.Rule
		ctx  pricing.BookingContext
		want bool
	}{
		{
			name: "no conditions always applies",
			rule: pricing.Rule{Name: "Flat"},
			ctx:  pricing.BookingContext{Start: mondayMorning, CourtType: court.TypeIndoor},
			want: true,
		},
		{
			name: "day condition matches",
			rule: pricing.Rule{
				Name:       "Weekend",
				Conditions: pricing.ConditionSet{Days: []string{"Saturday", "Sunday"}},
			},
			ctx:  pricing.BookingContext{Start: saturdayEvening},
			want: true,
		},
		{
			name: "day condition rejects weekday",
			rule: pricing.Rule{
				Name:       "Weekend",
				Conditions: pricing.ConditionSet{Days: []string{"Saturday", "Sunday"}},
			},
			ctx:  pricing.BookingContext{Start: mondayMorning},
			want: false,
		},
		{
			name: "hour window includes start boundary",
			rule: pricing.Rule{
				Name:       "Peak",
				Conditions: pricing.ConditionSet{StartTime: "18:00", EndTime: "21:00"},
			},
			ctx:  pricing.BookingContext{Start: saturdayEvening},
			want: true,
		},
		{
			name: "hour window excludes end boundary",
			rule: pricing.Rule{
				Name:       "Peak",
				Conditions: pricing.ConditionSet{StartTime: "18:00", EndTime: "21:00"},
			},
			ctx:  pricing.BookingContext{Start: time.Date(2026, 2, 7, 21, 0, 0, 0, time.UTC)},
			want: false,
		},
		{
			name: "hour window rejects earlier hour",
			rule: pricing.Rule{
				Name:       "Peak",
				Conditions: pricing.ConditionSet{StartTime: "18:00", EndTime: "21:00"},
			},
			ctx:  pricing.BookingContext{Start: time.Date(2026, 2, 7, 17, 59, 0, 0, time.UTC)},
			want: false,
		},
		{
			name: "court type matches",
			rule: pricing.Rule{
				Name:       "Indoor Premium",
				Conditions: pricing.ConditionSet{CourtType: "indoor"},
			},
			ctx:  pricing.BookingContext{Start: mondayMorning, CourtType: court.TypeIndoor},
			want: true,
		},
		{
			name: "court type rejects mismatch",
			rule: pricing.Rule{
				Name:       "Indoor Premium",
				Conditions: pricing.ConditionSet{CourtType: "indoor"},
			},
			ctx:  pricing.BookingContext{Start: mondayMorning, CourtType: court.TypeOutdoor},
			want: false,
		},
		{
			name: "all present groups must match",
			rule: pricing.Rule{
				Name: "Weekend Peak Indoor",
				Conditions: pricing.ConditionSet{
					Days:      []string{"Saturday"},
					StartTime: "18:00",
					EndTime:   "21:00",
					CourtType: "indoor",
				},
			},
			ctx:  pricing.BookingContext{Start: saturdayEvening, CourtType: court.TypeOutdoor},
			want: false,
		},
		{
			name: "all present groups matching applies",
			rule: pricing.Rule{
				Name: "Weekend Peak Indoor",
				Conditions: pricing.ConditionSet{
					Days:      []string{"Saturday"},
					StartTime: "18:00",
					EndTime:   "21:00",
					CourtType: "indoor",
				},
			},
			ctx:  pricing.BookingContext{Start: saturdayEvening, CourtType: court.TypeIndoor},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.rule.Type = pricing.RuleMultiplier
			tt.rule.Value = decimal.NewFromInt(2)

			got, err := tt.rule.AppliesTo(tt.ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRuleAppliesToBadClockString(t *testing.T) {
	rule := pricing.Rule{
		Name:       "Broken",
		Type:       pricing.RuleMultiplier,
		Value:      decimal.NewFromInt(2),
		Conditions: pricing.ConditionSet{StartTime: "late", EndTime: "later"},
	}

	_, err := rule.AppliesTo(pricing.BookingContext{Start: time.Now()})
	require.Error(t, err)
}
