package service

import (
	"context"

	"github.com/deppfellow/places-api/internal/model"
	"github.com/rs/zerolog"
)

// PlaceStore is the persistence boundary PlaceService depends on.
// *repository.PlaceRepository is the production implementation.
type PlaceStore interface {
	List(ctx context.Context) ([]model.Place, error)
	Create(ctx context.Context, name string) (*model.Place, error)
	Get(ctx context.Context, id int64) (*model.Place, error)
	Replace(ctx context.Context, id int64, name string) (*model.Place, error)
	Delete(ctx context.Context, id int64) error
}

// PlaceService maps validated payloads onto store operations.
type PlaceService struct {
	store PlaceStore
}

func NewPlaceService(store PlaceStore) *PlaceService {
	return &PlaceService{store: store}
}

// logger returns the request-scoped logger placed in ctx by the
// context enhancer middleware, or a disabled logger.
func logger(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

func (s *PlaceService) ListPlaces(ctx context.Context) ([]model.Place, error) {
	return s.store.List(ctx)
}

func (s *PlaceService) CreatePlace(ctx context.Context, payload *model.CreatePlacePayload) (*model.Place, error) {
	place, err := s.store.Create(ctx, *payload.Name)
	if err != nil {
		return nil, err
	}

	logger(ctx).Info().Int64("place_id", place.ID).Msg("place created")
	return place, nil
}

func (s *PlaceService) GetPlace(ctx context.Context, payload *model.GetPlacePayload) (*model.Place, error) {
	return s.store.Get(ctx, payload.ID)
}

// ReplacePlace resets every field of the place to the payload's values.
// Nothing is merged from the stored row.
func (s *PlaceService) ReplacePlace(ctx context.Context, payload *model.ReplacePlacePayload) (*model.Place, error) {
	place, err := s.store.Replace(ctx, payload.ID, *payload.Name)
	if err != nil {
		return nil, err
	}

	logger(ctx).Info().Int64("place_id", place.ID).Msg("place replaced")
	return place, nil
}

func (s *PlaceService) DeletePlace(ctx context.Context, payload *model.DeletePlacePayload) error {
	if err := s.store.Delete(ctx, payload.ID); err != nil {
		return err
	}

	logger(ctx).Info().Int64("place_id", payload.ID).Msg("place deleted")
	return nil
}
