package court

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smashcourt/smashcourt-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "court not found")
	ErrNameTaken        = apperror.New(http.StatusConflict, "court name already in use")
	ErrEmptyName        = apperror.New(http.StatusBadRequest, "court name cannot be empty")
	ErrInvalidType      = apperror.New(http.StatusBadRequest, "invalid court type")
	ErrInvalidStatus    = apperror.New(http.StatusBadRequest, "invalid court status")
	ErrInvalidBasePrice = apperror.New(http.StatusBadRequest, "base price must be positive")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "not authorized to modify this court")
)

type Type string

const (
	TypeIndoor  Type = "indoor"
	TypeOutdoor Type = "outdoor"
)

func (t Type) Valid() bool {
	return t == TypeIndoor || t == TypeOutdoor
}

type Status string

const (
	StatusActive      Status = "active"
	StatusMaintenance Status = "maintenance"
	StatusDisabled    Status = "disabled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusMaintenance, StatusDisabled:
		return true
	}
	return false
}

// Court is a bookable unit listed by an owner. BasePrice is per hour.
type Court struct {
	ID            string
	Name          string
	Type          Type
	OwnerID       string
	BasePrice     decimal.Decimal
	Status        Status
	AverageRating decimal.Decimal
	RatingCount   int
	CreatedAt     time.Time
}
