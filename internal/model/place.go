// Package model contains the domain entities and the request
// payloads the HTTP layer binds into.
package model

// Place is the single resource this service manages.
//
// ID is assigned by the database at creation and never changes.
type Place struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
