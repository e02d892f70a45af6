package booking

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smashcourt/smashcourt-backend/internal/pkg/apperror"
	"github.com/smashcourt/smashcourt-backend/internal/pricing"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrSlotUnavailable  = apperror.New(http.StatusBadRequest, "court already booked for this slot")
	ErrAlreadyCancelled = apperror.New(http.StatusBadRequest, "booking is already cancelled")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "not authorized to access this booking")
	ErrInvalidDate      = apperror.New(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
)

// Booking is a confirmed reservation of a court, with optional equipment
// and coaching add-ons. It is only ever created through the admission
// service, fully priced, with status confirmed.
type Booking struct {
	ID         string
	UserID     string
	CourtID    string
	CourtName  string // expanded on reads
	Equipment  []pricing.EquipmentSelection
	CoachID    string
	CoachName  string // expanded on reads
	StartTime  time.Time
	EndTime    time.Time
	TotalPrice decimal.Decimal
	Breakdown  []pricing.LineItem
	Status     Status
	CreatedAt  time.Time
}

// TimeSlot is a free interval of a court's day.
type TimeSlot struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}
