package pricing

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
)

type CreateRuleRequest struct {
	Name       string
	Type       string
	Value      decimal.Decimal
	Conditions ConditionSet
	Priority   int
	Enabled    bool
}

// RuleService manages the rule store contents. Evaluation itself goes
// through Evaluator; this surface exists for administration.
type RuleService interface {
	List(ctx context.Context) ([]*Rule, error)
	Create(ctx context.Context, req CreateRuleRequest) (*Rule, error)
}

type ruleService struct {
	repo Repository
}

func NewRuleService(repo Repository) RuleService {
	return &ruleService{repo: repo}
}

func (s *ruleService) List(ctx context.Context) ([]*Rule, error) {
	return s.repo.List(ctx)
}

func (s *ruleService) Create(ctx context.Context, req CreateRuleRequest) (*Rule, error) {
	t := RuleType(req.Type)
	if strings.TrimSpace(req.Name) == "" || !t.Valid() || req.Value.Sign() <= 0 {
		return nil, ErrInvalidRule
	}

	// Reject malformed clock strings up front rather than at evaluation time.
	if _, err := req.Conditions.conditions(); err != nil {
		return nil, ErrInvalidRule
	}

	rule := &Rule{
		Name:       strings.TrimSpace(req.Name),
		Type:       t,
		Value:      req.Value,
		Conditions: req.Conditions,
		Priority:   req.Priority,
		Enabled:    req.Enabled,
	}

	if err := s.repo.Create(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}
