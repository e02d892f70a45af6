package booking

import (
	"context"
	"time"

	"github.com/smashcourt/smashcourt-backend/internal/court"
	"github.com/smashcourt/smashcourt-backend/internal/pricing"
	"github.com/smashcourt/smashcourt-backend/internal/user"
)

// Courts open at 06:00 and close at 23:00 for slot listings.
const (
	dayOpenClock  = "06:00"
	dayCloseClock = "23:00"
)

type SubmitRequest struct {
	UserID    string
	CourtID   string
	StartTime time.Time
	EndTime   time.Time
	Equipment []pricing.EquipmentSelection
	CoachID   string
}

type Service interface {
	// Submit runs the admission protocol: resolve court, check
	// availability, price, persist confirmed. Errors from each step
	// surface unchanged.
	Submit(ctx context.Context, req SubmitRequest) (*Booking, error)

	// IsAvailable reports whether [start, end) on the court is free of
	// confirmed bookings. No side effects.
	IsAvailable(ctx context.Context, courtID string, start, end time.Time) (bool, error)

	// DaySlots lists the free intervals of a court on the given day.
	DaySlots(ctx context.Context, courtID string, date time.Time) ([]TimeSlot, error)

	GetByID(ctx context.Context, id string, actorID string, actorRole user.Role) (*Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*Booking, error)

	// Cancel moves a confirmed booking to cancelled, removing it from the
	// overlap scan for future admissions.
	Cancel(ctx context.Context, id string, actorID string, actorRole user.Role) (*Booking, error)
}

type service struct {
	repo         Repository
	courtService court.Service
	evaluator    pricing.Evaluator
}

func NewService(repo Repository, courtService court.Service, evaluator pricing.Evaluator) Service {
	return &service{
		repo:         repo,
		courtService: courtService,
		evaluator:    evaluator,
	}
}

func (s *service) Submit(ctx context.Context, req SubmitRequest) (*Booking, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, pricing.ErrInvalidDuration
	}

	// 1. Resolve court.
	crt, err := s.courtService.GetByID(ctx, req.CourtID)
	if err != nil {
		return nil, err
	}

	// 2. Availability check.
	overlap, err := s.repo.HasOverlap(ctx, req.CourtID, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, ErrSlotUnavailable
	}

	// 3. Price.
	quote, err := s.evaluator.Quote(ctx, pricing.QuoteInput{
		Court:     crt,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Equipment: req.Equipment,
		CoachID:   req.CoachID,
	})
	if err != nil {
		return nil, err
	}

	// 4. Persist. CreateConfirmed re-checks the slot under a court lock,
	// so two racing submissions cannot both commit; the loser gets
	// ErrSlotUnavailable here.
	b := &Booking{
		UserID:     req.UserID,
		CourtID:    req.CourtID,
		CourtName:  crt.Name,
		Equipment:  req.Equipment,
		CoachID:    req.CoachID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		TotalPrice: quote.TotalPrice,
		Breakdown:  quote.Breakdown,
		Status:     StatusConfirmed,
	}
	if err := s.repo.CreateConfirmed(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) IsAvailable(ctx context.Context, courtID string, start, end time.Time) (bool, error) {
	if !end.After(start) {
		return false, pricing.ErrInvalidDuration
	}
	if _, err := s.courtService.GetByID(ctx, courtID); err != nil {
		return false, err
	}

	overlap, err := s.repo.HasOverlap(ctx, courtID, start, end)
	if err != nil {
		return false, err
	}
	return !overlap, nil
}

func (s *service) DaySlots(ctx context.Context, courtID string, date time.Time) ([]TimeSlot, error) {
	if _, err := s.courtService.GetByID(ctx, courtID); err != nil {
		return nil, err
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	bookings, err := s.repo.ListConfirmedForCourt(ctx, courtID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	return FreeSlots(dayStart, dayOpenClock, dayCloseClock, bookings)
}

func (s *service) GetByID(ctx context.Context, id string, actorID string, actorRole user.Role) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.UserID != actorID && actorRole != user.RoleAdmin {
		return nil, ErrPermissionDenied
	}
	return b, nil
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]*Booking, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Cancel(ctx context.Context, id string, actorID string, actorRole user.Role) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.UserID != actorID && actorRole != user.RoleAdmin {
		return nil, ErrPermissionDenied
	}
	if b.Status == StatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusCancelled); err != nil {
		return nil, err
	}
	b.Status = StatusCancelled
	return b, nil
}
