package model

import "github.com/go-playground/validator/v10"

// validate is shared by every payload; validator caches struct metadata.
var validate = validator.New()

// ListPlacesPayload is the (empty) request for GET /place.
type ListPlacesPayload struct{}

func (p *ListPlacesPayload) Validate() error {
	return nil
}

// CreatePlacePayload is the body of POST /place. An "id" in the body is ignored.
//
// Name is a pointer so {"name": ""} (present) can be told apart from {}
// (missing). Only presence is enforced.
type CreatePlacePayload struct {
	Name *string `json:"name" validate:"required"`
}

func (p *CreatePlacePayload) Validate() error {
	return validate.Struct(p)
}

// GetPlacePayload addresses a single place by its path id.
type GetPlacePayload struct {
	ID int64 `param:"id" json:"-" validate:"gt=0"`
}

func (p *GetPlacePayload) Validate() error {
	return validate.Struct(p)
}

// ReplacePlacePayload is PUT /place/:id. The id comes from the path only.
type ReplacePlacePayload struct {
	ID   int64   `param:"id" json:"-" validate:"gt=0"`
	Name *string `json:"name" validate:"required"`
}

func (p *ReplacePlacePayload) Validate() error {
	return validate.Struct(p)
}

// DeletePlacePayload addresses the place removed by DELETE /place/:id.
type DeletePlacePayload struct {
	ID int64 `param:"id" json:"-" validate:"gt=0"`
}

func (p *DeletePlacePayload) Validate() error {
	return validate.Struct(p)
}
