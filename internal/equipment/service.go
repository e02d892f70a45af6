package equipment

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
)

type CreateRequest struct {
	Name     string
	Category string
	Price    decimal.Decimal
	Quantity int
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Equipment, error)
	GetByID(ctx context.Context, id string) (*Equipment, error)
	List(ctx context.Context) ([]*Equipment, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Equipment, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	cat := Category(req.Category)
	if !cat.Valid() {
		return nil, ErrInvalidCategory
	}

	status := StatusAvailable
	if req.Quantity <= 0 {
		status = StatusOutOfStock
	}

	e := &Equipment{
		Name:     strings.TrimSpace(req.Name),
		Category: cat,
		Price:    req.Price,
		Quantity: req.Quantity,
		Status:   status,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Equipment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Equipment, error) {
	return s.repo.List(ctx)
}
