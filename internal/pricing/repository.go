package pricing

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ruleColumns = "id, name, type, value, conditions, priority, enabled, created_at"

type Repository interface {
	// ListEnabledByPriority returns all enabled rules in ascending priority
	// order, which is their evaluation order.
	ListEnabledByPriority(ctx context.Context) ([]*Rule, error)
	List(ctx context.Context) ([]*Rule, error)
	Create(ctx context.Context, r *Rule) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) ListEnabledByPriority(ctx context.Context) ([]*Rule, error) {
	return r.list(ctx, squirrel.Eq{"enabled": true})
}

func (r *pgxRepository) List(ctx context.Context) ([]*Rule, error) {
	return r.list(ctx, nil)
}

func (r *pgxRepository) list(ctx context.Context, pred squirrel.Eq) ([]*Rule, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(ruleColumns).
		From("public.pricing_rules").
		OrderBy("priority ASC", "created_at ASC")

	if pred != nil {
		query = query.Where(pred)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list rules query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list rules failed: %w", err)
	}
	defer rows.Close()

	var rules []*Rule
	for rows.Next() {
		var (
			rule       Rule
			conditions []byte
		)
		if err := rows.Scan(
			&rule.ID, &rule.Name, &rule.Type, &rule.Value, &conditions,
			&rule.Priority, &rule.Enabled, &rule.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan rule failed: %w", err)
		}
		if len(conditions) > 0 {
			if err := json.Unmarshal(conditions, &rule.Conditions); err != nil {
				return nil, fmt.Errorf("unmarshal rule conditions failed: %w", err)
			}
		}
		rules = append(rules, &rule)
	}
	return rules, rows.Err()
}

func (r *pgxRepository) Create(ctx context.Context, rule *Rule) error {
	conditions, err := json.Marshal(rule.Conditions)
	if err != nil {
		return fmt.Errorf("marshal rule conditions failed: %w", err)
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.pricing_rules").
		Columns("name", "type", "value", "conditions", "priority", "enabled").
		Values(rule.Name, rule.Type, rule.Value, conditions, rule.Priority, rule.Enabled).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create rule query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&rule.ID, &rule.CreatedAt); err != nil {
		return fmt.Errorf("create rule failed: %w", err)
	}
	return nil
}
