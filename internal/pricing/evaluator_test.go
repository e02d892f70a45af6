package pricing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smashcourt/smashcourt-backend/internal/coach"
	"github.com/smashcourt/smashcourt-backend/internal/court"
	"github.com/smashcourt/smashcourt-backend/internal/equipment"
	"github.com/smashcourt/smashcourt-backend/internal/pricing"
)

type stubRuleStore struct {
	rules []*pricing.Rule
}

func (s *stubRuleStore) ListEnabledByPriority(ctx context.Context) ([]*pricing.Rule, error) {
	var out []*pricing.Rule
	for _, r := range s.rules {
		if r.Enabled {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubRuleStore) List(ctx context.Context) ([]*pricing.Rule, error) {
	return s.rules, nil
}

func (s *stubRuleStore) Create(ctx context.Context, r *pricing.Rule) error {
	s.rules = append(s.rules, r)
	return nil
}

type memEquipmentRepo struct {
	items map[string]*equipment.Equipment
}

func (m *memEquipmentRepo) Create(ctx context.Context, e *equipment.Equipment) error {
	m.items[e.ID] = e
	return nil
}

func (m *memEquipmentRepo) GetByID(ctx context.Context, id string) (*equipment.Equipment, error) {
	e, ok := m.items[id]
	if !ok {
		return nil, equipment.ErrNotFound
	}
	return e, nil
}

func (m *memEquipmentRepo) List(ctx context.Context) ([]*equipment.Equipment, error) {
	out := make([]*equipment.Equipment, 0, len(m.items))
	for _, e := range m.items {
		out = append(out, e)
	}
	return out, nil
}

type memCoachRepo struct {
	coaches map[string]*coach.Coach
}

func (m *memCoachRepo) Create(ctx context.Context, co *coach.Coach) error {
	m.coaches[co.ID] = co
	return nil
}

func (m *memCoachRepo) GetByID(ctx context.Context, id string) (*coach.Coach, error) {
	co, ok := m.coaches[id]
	if !ok {
		return nil, coach.ErrNotFound
	}
	return co, nil
}

func (m *memCoachRepo) List(ctx context.Context) ([]*coach.Coach, error) {
	out := make([]*coach.Coach, 0, len(m.coaches))
	for _, co := range m.coaches {
		out = append(out, co)
	}
	return out, nil
}

func peakRule() *pricing.Rule {
	return &pricing.Rule{
		ID:       "rule-peak",
		Name:     "Peak Hours (6-9 PM)",
		Type:     pricing.RuleMultiplier,
		Value:    decimal.RequireFromString("1.2"),
		Priority: 1,
		Enabled:  true,
		Conditions: pricing.ConditionSet{
			StartTime: "18:00",
			EndTime:   "21:00",
		},
	}
}

func weekendRule() *pricing.Rule {
	return &pricing.Rule{
		ID:       "rule-weekend",
		Name:     "Weekend Surcharge",
		Type:     pricing.RuleMultiplier,
		Value:    decimal.RequireFromString("1.1"),
		Priority: 2,
		Enabled:  true,
		Conditions: pricing.ConditionSet{
			Days: []string{"Saturday", "Sunday"},
		},
	}
}

func testEvaluator(rules ...*pricing.Rule) (pricing.Evaluator, *memEquipmentRepo, *memCoachRepo) {
	equipRepo := &memEquipmentRepo{items: map[string]*equipment.Equipment{
		"eq-racket": {
			ID:       "eq-racket",
			Name:     "Pro Racket",
			Category: equipment.CategoryRacket,
			Price:    decimal.NewFromInt(50),
			Quantity: 10,
			Status:   equipment.StatusAvailable,
		},
		"eq-shoes": {
			ID:       "eq-shoes",
			Name:     "Court Shoes",
			Category: equipment.CategoryShoes,
			Price:    decimal.NewFromInt(100),
			Quantity: 5,
			Status:   equipment.StatusAvailable,
		},
	}}
	coachRepo := &memCoachRepo{coaches: map[string]*coach.Coach{
		"coach-lin": {
			ID:         "coach-lin",
			Name:       "Coach Lin",
			HourlyRate: decimal.NewFromInt(300),
		},
	}}

	eval := pricing.NewEvaluator(
		&stubRuleStore{rules: rules},
		equipment.NewService(equipRepo),
		coach.NewService(coachRepo),
		time.UTC,
	)
	return eval, equipRepo, coachRepo
}

func testCourt() *court.Court {
	return &court.Court{
		ID:        "court-a",
		Name:      "Court A",
		Type:      court.TypeIndoor,
		BasePrice: decimal.NewFromInt(150),
	}
}

// 2026-02-09 is a Monday, 2026-02-07 a Saturday.
func mondayAt(hour int) time.Time {
	return time.Date(2026, 2, 9, hour, 0, 0, 0, time.UTC)
}

func saturdayAt(hour int) time.Time {
	return time.Date(2026, 2, 7, hour, 0, 0, 0, time.UTC)
}

func TestQuoteOffPeakWeekday(t *testing.T) {
	eval, _, _ := testEvaluator(peakRule(), weekendRule())

	quote, err := eval.Quote(context.Background(), pricing.QuoteInput{
		Court:     testCourt(),
		StartTime: mondayAt(10),
		EndTime:   mondayAt(12),
	})
	require.NoError(t, err)

	assert.True(t, quote.TotalPrice.Equal(decimal.NewFromInt(300)),
		"total = %s", quote.TotalPrice)

	require.Len(t, quote.Breakdown, 2)
	assert.Equal(t, "Court Base Price", quote.Breakdown[0].Label)
	assert.True(t, quote.Breakdown[0].Cost.Equal(decimal.NewFromInt(300)))
	require.NotNil(t, quote.Breakdown[0].Quantity)
	assert.True(t, quote.Breakdown[0].Quantity.Equal(decimal.NewFromInt(2)))
	assert.Equal(t, "Court Final Price (adjustments applied)", quote.Breakdown[1].Label)
	assert.True(t, quote.Breakdown[1].Cost.Equal(decimal.NewFromInt(300)))
}

func TestQuotePeakWeekday(t *testing.T) {
	eval, _, _ := testEvaluator(peakRule(), weekendRule())

	quote, err := eval.Quote(context.Background(), pricing.QuoteInput{
		Court:     testCourt(),
		StartTime: mondayAt(18),
		EndTime:   mondayAt(20),
	})
	require.NoError(t, err)

	assert.True(t, quote.TotalPrice.Equal(decimal.NewFromInt(360)),
		"total = %s", quote.TotalPrice)

	require.Len(t, quote.Breakdown, 3)
	assert.Equal(t, "Rule: Peak Hours (6-9 PM)", quote.Breakdown[1].Label)
	assert.True(t, quote.Breakdown[1].Cost.IsZero())
	assert.Equal(t, "x1.2", quote.Breakdown[1].Note)
	assert.True(t, quote.Breakdown[2].Cost.Equal(decimal.NewFromInt(360)))
}

func TestQuotePeakWeekendMultipliersStack(t *testing.T) {
	eval, _, _ := testEvaluator(peakRule(), weekendRule())

	quote, err := eval.Quote(context.Background(), pricing.QuoteInput{
		Court:     testCourt(),
		StartTime: saturdayAt(18),
		EndTime:   saturdayAt(20),
	})
	require.NoError(t, err)

	assert.True(t, quote.TotalPrice.Equal(decimal.NewFromInt(396)),
		"total = %s", quote.TotalPrice)

	// Rules appear between base and final line, in priority order.
	require.Len(t, quote.Breakdown, 4)
	assert.Equal(t, "Court Base Price", quote.Breakdown[0].Label)
	assert.Equal(t, "Rule: Peak Hours (6-9 PM)", quote.Breakdown[1].Label)
	assert.Equal(t, "Rule: Weekend Surcharge", quote.Breakdown[2].Label)
	assert.Equal(t, "Court Final Price (adjustments applied)", quote.Breakdown[3].Label)
}

func TestQuoteFixedAddition(t *testing.T) {
	cleaning := &pricing.Rule{
		ID:       "rule-cleaning",
		Name:     "Cleaning Fee",
		Type:     pricing.RuleFixedAddition,
		Value:    decimal.NewFromInt(50),
		Priority: 3,
		Enabled:  true,
	}
	eval, _, _ := testEvaluator(peakRule(), cleaning)

	// Peak multiplier applies first, then the addition: 300*1.2 + 50.
	quote, err := eval.Quote(context.Background(), pricing.QuoteInput{
		Court:     testCourt(),
		StartTime: mondayAt(18),
		EndTime:   mondayAt(20),
	})
	require.NoError(t, err)
	assert.True(t, quote.TotalPrice.Equal(decimal.NewFromInt(410)),
		"total = %s", quote.TotalPrice)

	var additionLine *pricing.LineItem
	for i := range quote.Breakdown {
		if quote.Breakdown[i].Label == "Rule: Cleaning Fee" {
			additionLine = &quote.Breakdown[i]
		}
	}
	require.NotNil(t, additionLine)
	assert.True(t, additionLine.Cost.Equal(decimal.NewFromInt(50)))
	assert.Empty(t, additionLine.Note)
}

func TestQuoteDisabledRuleIgnored(t *testing.T) {
	off := peakRule()
	off.Enabled = false
	eval, _, _ := testEvaluator(off)

	quote, err := eval.Quote(context.Background(), pricing.QuoteInput{
		Court:     testCourt(),
		StartTime: mondayAt(18),
		EndTime:   mondayAt(20),
	})
	require.NoError(t, err)
	assert.True(t, quote.TotalPrice.Equal(decimal.NewFromInt(300)))
}

func TestQuoteFractionalHours(t *testing.T) {
	eval, _, _ := testEvaluator()

	start := mondayAt(10)
	quote, err := eval.Quote(context.Background(), pricing.QuoteInput{
		Court:     testCourt(),
		StartTime: start,
		EndTime:   start.Add(90 * time.Minute),
	})
	require.NoError(t, err)
	assert.True(t, quote.TotalPrice.Equal(decimal.NewFromInt(225)),
		"total = %s", quote.TotalPrice)
	require.NotNil(t, quote.Breakdown[0].Quantity)
	assert.True(t, quote.Breakdown[0].Quantity.Equal(decimal.RequireFromString("1.5")))
}

func TestQuoteEquipmentAndCoach(t *testing.T) {
	eval, _, _ := testEvaluator()

	quote, err := eval.Quote(context.Background(), pricing.QuoteInput{
		Court:     testCourt(),
		StartTime: mondayAt(10),
		EndTime:   mondayAt(12),
		Equipment: []pricing.EquipmentSelection{
			{EquipmentID: "eq-racket", Quantity: 2},
			{EquipmentID: "eq-shoes", Quantity: 1},
		},
		CoachID: "coach-lin",
	})
	require.NoError(t, err)

	// 300 court + 100 rackets + 100 shoes + 600 coach.
	assert.True(t, quote.TotalPrice.Equal(decimal.NewFromInt(1100)),
		"total = %s", quote.TotalPrice)

	require.Len(t, quote.Breakdown, 5)
	assert.Equal(t, "Pro Racket x2", quote.Breakdown[2].Label)
	assert.True(t, quote.Breakdown[2].Cost.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "Court Shoes x1", quote.Breakdown[3].Label)
	assert.True(t, quote.Breakdown[3].Cost.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "Coach: Coach Lin", quote.Breakdown[4].Label)
	assert.True(t, quote.Breakdown[4].Cost.Equal(decimal.NewFromInt(600)))

	// The total is exactly the final court line plus the add-on lines.
	sum := decimal.Zero
	for _, item := range quote.Breakdown[1:] {
		sum = sum.Add(item.Cost)
	}
	assert.True(t, quote.TotalPrice.Equal(sum))
}

func TestQuoteDeterministic(t *testing.T) {
	eval, _, _ := testEvaluator(peakRule(), weekendRule())

	input := pricing.QuoteInput{
		Court:     testCourt(),
		StartTime: saturdayAt(18),
		EndTime:   saturdayAt(20),
		Equipment: []pricing.EquipmentSelection{{EquipmentID: "eq-racket", Quantity: 1}},
		CoachID:   "coach-lin",
	}

	first, err := eval.Quote(context.Background(), input)
	require.NoError(t, err)
	second, err := eval.Quote(context.Background(), input)
	require.NoError(t, err)

	assert.True(t, first.TotalPrice.Equal(second.TotalPrice))
	require.Equal(t, len(first.Breakdown), len(second.Breakdown))
	for i := range first.Breakdown {
		assert.Equal(t, first.Breakdown[i].Label, second.Breakdown[i].Label)
		assert.True(t, first.Breakdown[i].Cost.Equal(second.Breakdown[i].Cost))
	}
}

func TestQuoteErrors(t *testing.T) {
	eval, _, _ := testEvaluator()

	t.Run("zero duration", func(t *testing.T) {
		_, err := eval.Quote(context.Background(), pricing.QuoteInput{
			Court:     testCourt(),
			StartTime: mondayAt(10),
			EndTime:   mondayAt(10),
		})
		assert.ErrorIs(t, err, pricing.ErrInvalidDuration)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := eval.Quote(context.Background(), pricing.QuoteInput{
			Court:     testCourt(),
			StartTime: mondayAt(12),
			EndTime:   mondayAt(10),
		})
		assert.ErrorIs(t, err, pricing.ErrInvalidDuration)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		_, err := eval.Quote(context.Background(), pricing.QuoteInput{
			Court:     testCourt(),
			StartTime: mondayAt(10),
			EndTime:   mondayAt(12),
			Equipment: []pricing.EquipmentSelection{{EquipmentID: "eq-racket", Quantity: 0}},
		})
		assert.ErrorIs(t, err, pricing.ErrInvalidQuantity)
	})

	t.Run("unknown equipment", func(t *testing.T) {
		_, err := eval.Quote(context.Background(), pricing.QuoteInput{
			Court:     testCourt(),
			StartTime: mondayAt(10),
			EndTime:   mondayAt(12),
			Equipment: []pricing.EquipmentSelection{{EquipmentID: "eq-missing", Quantity: 1}},
		})
		assert.ErrorIs(t, err, equipment.ErrNotFound)
	})

	t.Run("unknown coach", func(t *testing.T) {
		_, err := eval.Quote(context.Background(), pricing.QuoteInput{
			Court:     testCourt(),
			StartTime: mondayAt(10),
			EndTime:   mondayAt(12),
			CoachID:   "coach-missing",
		})
		assert.ErrorIs(t, err, coach.ErrNotFound)
	})
}
