package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository implements Repository against one table per shape.
// Queries are built once from the shape's Mapping.
type PostgresRepository[T Entity] struct {
	pool    *pgxpool.Pool
	mapping Mapping[T]
	table   string
	columns []string
}

// NewPostgresRepository creates a Repository backed by the given connection
// pool and shape mapping.
func NewPostgresRepository[T Entity](pool *pgxpool.Pool, mapping Mapping[T]) *PostgresRepository[T] {
	return &PostgresRepository[T]{
		pool:    pool,
		mapping: mapping,
		table:   mapping.Table(),
		columns: mapping.Columns(),
	}
}

// Add inserts a new row and returns the stored representation.
func (r *PostgresRepository[T]) Add(ctx context.Context, entity T) (T, error) {
	var zero T

	if entity.EntityID() == "" {
		entity.SetEntityID(uuid.New().String())
	}
	now := time.Now().UTC()
	entity.StampCreated(now)
	entity.StampUpdated(now)

	placeholders := make([]string, len(r.columns))
	for i := range r.columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (%s) VALUES (%s) RETURNING %s`,
		r.table,
		strings.Join(r.columns, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(r.columns, ", "),
	)

	stored, err := r.mapping.Scan(r.pool.QueryRow(ctx, query, r.mapping.Values(entity)...))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return zero, ErrDuplicateID
		}
		return zero, fmt.Errorf("inserting %s: %w", r.mapping.TypeName, err)
	}
	return stored, nil
}

// Update overwrites the row matched by id, stamping the update timestamp.
// Matching zero rows is not an error.
func (r *PostgresRepository[T]) Update(ctx context.Context, entity T) error {
	entity.StampUpdated(time.Now().UTC())

	values := r.mapping.Values(entity)
	var sets []string
	var args []any
	var id any

	argIdx := 1
	for i, col := range r.columns {
		if col == "id" {
			id = values[i]
			continue
		}
		sets = append(sets, fmt.Sprintf("%s = $%d", col, argIdx))
		args = append(args, values[i])
		argIdx++
	}
	args = append(args, id)

	query := fmt.Sprintf(
		`UPDATE %s SET %s WHERE id = $%d`,
		r.table, strings.Join(sets, ", "), argIdx,
	)

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("updating %s: %w", r.mapping.TypeName, err)
	}
	return nil
}

// Delete removes the row with the given id. Deleting an absent id affects
// zero rows and does not error.
func (r *PostgresRepository[T]) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table)
	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("deleting %s: %w", r.mapping.TypeName, err)
	}
	return nil
}

// GetByID returns the row with the given id, or the zero value when absent.
func (r *PostgresRepository[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T

	query := fmt.Sprintf(
		`SELECT %s FROM %s WHERE id = $1`,
		strings.Join(r.columns, ", "), r.table,
	)

	entity, err := r.mapping.Scan(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, nil
		}
		return zero, fmt.Errorf("getting %s by id: %w", r.mapping.TypeName, err)
	}
	return entity, nil
}

// GetAll returns every row of this shape, newest first.
func (r *PostgresRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM %s WHERE type = $1 ORDER BY created_at DESC`,
		strings.Join(r.columns, ", "), r.table,
	)

	rows, err := r.pool.Query(ctx, query, r.mapping.TypeName)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.mapping.TypeName, err)
	}
	defer rows.Close()

	entities := []T{}
	for rows.Next() {
		entity, err := r.mapping.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", r.mapping.TypeName, err)
		}
		entities = append(entities, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s rows: %w", r.mapping.TypeName, err)
	}

	return entities, nil
}
