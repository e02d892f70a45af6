package court

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/smashcourt/smashcourt-backend/internal/user"
)

type CreateRequest struct {
	Name      string
	Type      string
	BasePrice decimal.Decimal
	OwnerID   string
}

type UpdateRequest struct {
	Name      *string
	Type      *string
	BasePrice *decimal.Decimal
	Status    *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Court, error)
	GetByID(ctx context.Context, id string) (*Court, error)
	List(ctx context.Context) ([]*Court, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Court, error)
	Update(ctx context.Context, id string, req UpdateRequest, actorID string, actorRole user.Role) (*Court, error)
	Delete(ctx context.Context, id string, actorID string, actorRole user.Role) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Court, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	t := Type(req.Type)
	if !t.Valid() {
		return nil, ErrInvalidType
	}
	if req.BasePrice.Sign() <= 0 {
		return nil, ErrInvalidBasePrice
	}

	c := &Court{
		Name:      strings.TrimSpace(req.Name),
		Type:      t,
		OwnerID:   req.OwnerID,
		BasePrice: req.BasePrice,
		Status:    StatusActive,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Court, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Court, error) {
	return s.repo.List(ctx)
}

func (s *service) ListByOwner(ctx context.Context, ownerID string) ([]*Court, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// canMutate enforces the ownership rule: only the listing owner or an admin
// may change or remove a court.
func canMutate(c *Court, actorID string, actorRole user.Role) bool {
	return c.OwnerID == actorID || actorRole == user.RoleAdmin
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, actorID string, actorRole user.Role) (*Court, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canMutate(c, actorID, actorRole) {
		return nil, ErrPermissionDenied
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		c.Name = strings.TrimSpace(*req.Name)
	}
	if req.Type != nil {
		t := Type(*req.Type)
		if !t.Valid() {
			return nil, ErrInvalidType
		}
		c.Type = t
	}
	if req.BasePrice != nil {
		if req.BasePrice.Sign() <= 0 {
			return nil, ErrInvalidBasePrice
		}
		c.BasePrice = *req.BasePrice
	}
	if req.Status != nil {
		st := Status(*req.Status)
		if !st.Valid() {
			return nil, ErrInvalidStatus
		}
		c.Status = st
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id string, actorID string, actorRole user.Role) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canMutate(c, actorID, actorRole) {
		return ErrPermissionDenied
	}
	return s.repo.Delete(ctx, id)
}
