package coach

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smashcourt/smashcourt-backend/internal/pkg/apperror"
)

var (
	ErrNotFound    = apperror.New(http.StatusNotFound, "coach not found")
	ErrEmptyName   = apperror.New(http.StatusBadRequest, "coach name cannot be empty")
	ErrInvalidRate = apperror.New(http.StatusBadRequest, "hourly rate must be positive")
)

// Window is a clock-time interval within a day, e.g. {"18:00", "21:00"}.
type Window struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// DayAvailability lists a coach's open windows for one weekday.
type DayAvailability struct {
	Day     string   `json:"day"`
	Windows []Window `json:"windows"`
}

type Coach struct {
	ID             string
	Name           string
	HourlyRate     decimal.Decimal
	Specialization string
	Availability   []DayAvailability
	AverageRating  decimal.Decimal
	RatingCount    int
	CreatedAt      time.Time
}
