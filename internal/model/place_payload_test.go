package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestCreatePlacePayloadRequiresName(t *testing.T) {
	assert.Error(t, (&CreatePlacePayload{}).Validate())
	assert.NoError(t, (&CreatePlacePayload{Name: strPtr("Lisbon")}).Validate())

	// presence is all that is checked
	assert.NoError(t, (&CreatePlacePayload{Name: strPtr("")}).Validate())
}

func TestReplacePlacePayload(t *testing.T) {
	assert.NoError(t, (&ReplacePlacePayload{ID: 1, Name: strPtr("Porto")}).Validate())
	assert.Error(t, (&ReplacePlacePayload{ID: 1}).Validate())
	assert.Error(t, (&ReplacePlacePayload{ID: 0, Name: strPtr("Porto")}).Validate())
}

func TestIDPayloadsRejectNonPositiveIDs(t *testing.T) {
	assert.NoError(t, (&GetPlacePayload{ID: 7}).Validate())
	assert.Error(t, (&GetPlacePayload{ID: 0}).Validate())
	assert.Error(t, (&DeletePlacePayload{ID: -1}).Validate())
	assert.NoError(t, (&ListPlacesPayload{}).Validate())
}
