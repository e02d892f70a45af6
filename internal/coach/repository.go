package coach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const coachColumns = "id, name, hourly_rate, specialization, availability, average_rating, rating_count, created_at"

type Repository interface {
	Create(ctx context.Context, co *Coach) error
	GetByID(ctx context.Context, id string) (*Coach, error)
	List(ctx context.Context) ([]*Coach, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, co *Coach) error {
	availability, err := json.Marshal(co.Availability)
	if err != nil {
		return fmt.Errorf("marshal coach availability failed: %w", err)
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.coaches").
		Columns("name", "hourly_rate", "specialization", "availability").
		Values(co.Name, co.HourlyRate, co.Specialization, availability).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create coach query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&co.ID, &co.CreatedAt); err != nil {
		return fmt.Errorf("create coach failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Coach, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(coachColumns).
		From("public.coaches").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get coach query failed: %w", err)
	}

	co, err := scanCoach(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get coach failed: %w", err)
	}
	return co, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Coach, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(coachColumns).
		From("public.coaches").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list coaches query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list coaches failed: %w", err)
	}
	defer rows.Close()

	var coaches []*Coach
	for rows.Next() {
		co, err := scanCoach(rows)
		if err != nil {
			return nil, fmt.Errorf("scan coach failed: %w", err)
		}
		coaches = append(coaches, co)
	}
	return coaches, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCoach(row rowScanner) (*Coach, error) {
	var (
		co           Coach
		availability []byte
	)
	if err := row.Scan(
		&co.ID, &co.Name, &co.HourlyRate, &co.Specialization, &availability,
		&co.AverageRating, &co.RatingCount, &co.CreatedAt,
	); err != nil {
		return nil, err
	}
	if len(availability) > 0 {
		if err := json.Unmarshal(availability, &co.Availability); err != nil {
			return nil, fmt.Errorf("unmarshal coach availability failed: %w", err)
		}
	}
	return &co, nil
}
