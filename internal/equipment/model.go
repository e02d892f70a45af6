package equipment

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smashcourt/smashcourt-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "equipment not found")
	ErrInvalidCategory = apperror.New(http.StatusBadRequest, "invalid equipment category")
	ErrEmptyName       = apperror.New(http.StatusBadRequest, "equipment name cannot be empty")
)

type Category string

const (
	CategoryRacket      Category = "racket"
	CategoryShoes       Category = "shoes"
	CategoryShuttlecock Category = "shuttlecock"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryRacket, CategoryShoes, CategoryShuttlecock:
		return true
	}
	return false
}

type Status string

const (
	StatusAvailable  Status = "available"
	StatusOutOfStock Status = "out_of_stock"
)

// Equipment is a rentable item priced per session.
type Equipment struct {
	ID        string
	Name      string
	Category  Category
	Price     decimal.Decimal
	Quantity  int
	Status    Status
	CreatedAt time.Time
}
