package docsmanifest

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("react[2].id", ErrDuplicateID)

	assert.Equal(t, "validation error for react[2].id: duplicate entry id", err.Error())
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.ErrorIs(t, err, ErrInvalidManifest)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.True(t, IsValidationError(err))
	assert.True(t, IsValidationError(fmt.Errorf("load: %w", err)))
	assert.False(t, IsValidationError(errors.New("other")))
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("svelte")

	assert.Equal(t, `platform "svelte": not found`, err.Error())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrInvalidManifest)
	assert.True(t, IsNotFound(err))
	assert.True(t, IsNotFound(fmt.Errorf("entries: %w", err)))
	assert.False(t, IsNotFound(ErrNotFound))

	var nfErr *NotFoundError
	if assert.ErrorAs(t, fmt.Errorf("wrapped: %w", err), &nfErr) {
		assert.Equal(t, Platform("svelte"), nfErr.Platform)
	}
}
