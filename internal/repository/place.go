package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/places-api/internal/errs"
	"github.com/deppfellow/places-api/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of *pgxpool.Pool the repositories use.
// pgx.Tx and pgxmock satisfy it too.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PlaceNotFoundCode is the error code returned when an id has no row.
const PlaceNotFoundCode = "PLACE_NOT_FOUND"

// PlaceNotFoundError builds the 404 returned for an id with no row.
func PlaceNotFoundError(id int64) error {
	code := PlaceNotFoundCode
	return errs.NewNotFoundError(fmt.Sprintf("Place %d not found", id), true, &code)
}

// PlaceRepository owns the places table.
type PlaceRepository struct {
	db DBTX
}

// NewPlaceRepository binds the repository to an explicit storage handle.
func NewPlaceRepository(db DBTX) *PlaceRepository {
	return &PlaceRepository{db: db}
}

// List returns every place in table order.
func (r *PlaceRepository) List(ctx context.Context) ([]model.Place, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM places`)
	if err != nil {
		return nil, fmt.Errorf("failed to list places: %w", err)
	}
	defer rows.Close()

	places := []model.Place{}
	for rows.Next() {
		var place model.Place
		if err := rows.Scan(&place.ID, &place.Name); err != nil {
			return nil, fmt.Errorf("failed to scan place: %w", err)
		}
		places = append(places, place)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate places: %w", err)
	}

	return places, nil
}

// Create inserts a place and returns it with its assigned id.
func (r *PlaceRepository) Create(ctx context.Context, name string) (*model.Place, error) {
	var place model.Place
	err := r.db.QueryRow(ctx,
		`INSERT INTO places (name) VALUES ($1) RETURNING id, name`,
		name,
	).Scan(&place.ID, &place.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create place: %w", err)
	}

	return &place, nil
}

// Get returns the place with the given id, or a 404 *errs.HTTPError.
func (r *PlaceRepository) Get(ctx context.Context, id int64) (*model.Place, error) {
	var place model.Place
	err := r.db.QueryRow(ctx,
		`SELECT id, name FROM places WHERE id = $1`,
		id,
	).Scan(&place.ID, &place.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, PlaceNotFoundError(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get place %d: %w", id, err)
	}

	return &place, nil
}

// Replace overwrites every mutable column of the row. The id is preserved.
func (r *PlaceRepository) Replace(ctx context.Context, id int64, name string) (*model.Place, error) {
	var place model.Place
	err := r.db.QueryRow(ctx,
		`UPDATE places SET name = $1 WHERE id = $2 RETURNING id, name`,
		name, id,
	).Scan(&place.ID, &place.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, PlaceNotFoundError(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to replace place %d: %w", id, err)
	}

	return &place, nil
}

// Delete removes the row. Deleting an id that does not exist is a 404,
// not a silent success.
func (r *PlaceRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM places WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete place %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return PlaceNotFoundError(id)
	}

	return nil
}
