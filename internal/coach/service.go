package coach

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
)

type CreateRequest struct {
	Name           string
	HourlyRate     decimal.Decimal
	Specialization string
	Availability   []DayAvailability
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Coach, error)
	GetByID(ctx context.Context, id string) (*Coach, error)
	List(ctx context.Context) ([]*Coach, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Coach, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.HourlyRate.Sign() <= 0 {
		return nil, ErrInvalidRate
	}

	specialization := strings.TrimSpace(req.Specialization)
	if specialization == "" {
		specialization = "General"
	}

	co := &Coach{
		Name:           strings.TrimSpace(req.Name),
		HourlyRate:     req.HourlyRate,
		Specialization: specialization,
		Availability:   req.Availability,
	}

	if err := s.repo.Create(ctx, co); err != nil {
		return nil, err
	}
	return co, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Coach, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Coach, error) {
	return s.repo.List(ctx)
}
