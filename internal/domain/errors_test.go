package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsufficientDataError(t *testing.T) {
	err := NewInsufficientDataError("xtts")

	assert.ErrorIs(t, err, ErrInsufficientData)
	assert.Contains(t, err.Error(), "xtts")

	wrapped := fmt.Errorf("compute statistics: %w", err)
	assert.ErrorIs(t, wrapped, ErrInsufficientData)

	var ide *InsufficientDataError
	assert.True(t, errors.As(wrapped, &ide))
	assert.Equal(t, "xtts", ide.Model)
}

func TestInsufficientDataError_NoModel(t *testing.T) {
	err := &InsufficientDataError{}
	assert.Equal(t, ErrInsufficientData.Error(), err.Error())
}
