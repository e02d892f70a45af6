package equipment

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const equipmentColumns = "id, name, category, price, quantity, status, created_at"

type Repository interface {
	Create(ctx context.Context, e *Equipment) error
	GetByID(ctx context.Context, id string) (*Equipment, error)
	List(ctx context.Context) ([]*Equipment, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, e *Equipment) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.equipment").
		Columns("name", "category", "price", "quantity", "status").
		Values(e.Name, e.Category, e.Price, e.Quantity, e.Status).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create equipment query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&e.ID, &e.CreatedAt); err != nil {
		return fmt.Errorf("create equipment failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Equipment, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(equipmentColumns).
		From("public.equipment").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get equipment query failed: %w", err)
	}

	var e Equipment
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&e.ID, &e.Name, &e.Category, &e.Price, &e.Quantity, &e.Status, &e.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get equipment failed: %w", err)
	}
	return &e, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Equipment, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(equipmentColumns).
		From("public.equipment").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list equipment query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list equipment failed: %w", err)
	}
	defer rows.Close()

	var items []*Equipment
	for rows.Next() {
		var e Equipment
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Category, &e.Price, &e.Quantity, &e.Status, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan equipment failed: %w", err)
		}
		items = append(items, &e)
	}
	return items, rows.Err()
}
