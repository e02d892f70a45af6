package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smashcourt/smashcourt-backend/internal/court"
)

type Repository interface {
	// HasOverlap reports whether any confirmed booking for the court
	// overlaps [start, end). Pure read, no locks taken.
	HasOverlap(ctx context.Context, courtID string, start, end time.Time) (bool, error)

	// CreateConfirmed persists a confirmed booking as one atomic unit of
	// work: it locks the court row, re-runs the overlap check inside the
	// transaction and inserts. Losing a race returns ErrSlotUnavailable,
	// never a double booking.
	CreateConfirmed(ctx context.Context, b *Booking) error

	GetByID(ctx context.Context, id string) (*Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*Booking, error)
	ListConfirmedForCourt(ctx context.Context, courtID string, from, to time.Time) ([]*Booking, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// overlapQuery builds the confirmed-overlap existence check:
// a candidate [s, e) conflicts with an existing [s', e') iff s < e' AND e > s'.
func overlapQuery(courtID string, start, end time.Time) (string, []any, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sub := psql.Select("1").
		From("public.bookings").
		Where(squirrel.Eq{"court_id": courtID}).
		Where(squirrel.Eq{"status": StatusConfirmed}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start})

	sql, args, err := sub.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build overlap query failed: %w", err)
	}
	return "SELECT EXISTS (" + sql + ")", args, nil
}

func (r *pgxRepository) HasOverlap(ctx context.Context, courtID string, start, end time.Time) (bool, error) {
	sql, args, err := overlapQuery(courtID, start, end)
	if err != nil {
		return false, err
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check overlap failed: %w", err)
	}
	return exists, nil
}

func (r *pgxRepository) CreateConfirmed(ctx context.Context, b *Booking) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	// Serialize admissions per court: concurrent submissions for the same
	// court queue up here, so the overlap re-check below sees every booking
	// committed before ours.
	var lockedID string
	err = tx.QueryRow(ctx, "SELECT id FROM public.courts WHERE id = $1 FOR UPDATE", b.CourtID).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return court.ErrNotFound
		}
		return fmt.Errorf("lock court failed: %w", err)
	}

	sql, args, err := overlapQuery(b.CourtID, b.StartTime, b.EndTime)
	if err != nil {
		return err
	}
	var exists bool
	if err := tx.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return fmt.Errorf("check overlap failed: %w", err)
	}
	if exists {
		return ErrSlotUnavailable
	}

	equipmentJSON, err := json.Marshal(b.Equipment)
	if err != nil {
		return fmt.Errorf("marshal booking equipment failed: %w", err)
	}
	breakdownJSON, err := json.Marshal(b.Breakdown)
	if err != nil {
		return fmt.Errorf("marshal booking breakdown failed: %w", err)
	}

	var coachID *string
	if b.CoachID != "" {
		coachID = &b.CoachID
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	insert, insertArgs, err := psql.Insert("public.bookings").
		Columns("user_id", "court_id", "equipment", "coach_id", "start_time", "end_time", "total_price", "breakdown", "status").
		Values(b.UserID, b.CourtID, equipmentJSON, coachID, b.StartTime, b.EndTime, b.TotalPrice, breakdownJSON, b.Status).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := tx.QueryRow(ctx, insert, insertArgs...).Scan(&b.ID, &b.CreatedAt); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking tx failed: %w", err)
	}
	return nil
}

const bookingSelectColumns = `b.id, b.user_id, b.court_id, c.name, b.equipment,
	COALESCE(b.coach_id::text, ''), COALESCE(co.name, ''),
	b.start_time, b.end_time, b.total_price, b.breakdown, b.status, b.created_at`

func (r *pgxRepository) bookingSelect() squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select(bookingSelectColumns).
		From("public.bookings b").
		Join("public.courts c ON b.court_id = c.id").
		LeftJoin("public.coaches co ON b.coach_id = co.id")
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query, args, err := r.bookingSelect().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) ListByUser(ctx context.Context, userID string) ([]*Booking, error) {
	query, args, err := r.bookingSelect().
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("b.start_time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}
	return r.queryBookings(ctx, query, args)
}

func (r *pgxRepository) ListConfirmedForCourt(ctx context.Context, courtID string, from, to time.Time) ([]*Booking, error) {
	query, args, err := r.bookingSelect().
		Where(squirrel.Eq{"b.court_id": courtID}).
		Where(squirrel.Eq{"b.status": StatusConfirmed}).
		Where(squirrel.Lt{"b.start_time": to}).
		Where(squirrel.Gt{"b.end_time": from}).
		OrderBy("b.start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list court bookings query failed: %w", err)
	}
	return r.queryBookings(ctx, query, args)
}

func (r *pgxRepository) queryBookings(ctx context.Context, query string, args []any) ([]*Booking, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*Booking, error) {
	var (
		b             Booking
		equipmentJSON []byte
		breakdownJSON []byte
	)
	if err := row.Scan(
		&b.ID, &b.UserID, &b.CourtID, &b.CourtName, &equipmentJSON,
		&b.CoachID, &b.CoachName,
		&b.StartTime, &b.EndTime, &b.TotalPrice, &breakdownJSON, &b.Status, &b.CreatedAt,
	); err != nil {
		return nil, err
	}
	if len(equipmentJSON) > 0 {
		if err := json.Unmarshal(equipmentJSON, &b.Equipment); err != nil {
			return nil, fmt.Errorf("unmarshal booking equipment failed: %w", err)
		}
	}
	if len(breakdownJSON) > 0 {
		if err := json.Unmarshal(breakdownJSON, &b.Breakdown); err != nil {
			return nil, fmt.Errorf("unmarshal booking breakdown failed: %w", err)
		}
	}
	return &b, nil
}
