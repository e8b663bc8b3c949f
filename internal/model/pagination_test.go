package model_test

import (
	"testing"

	"evently/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, model.TotalPages(0, 6))
	assert.Equal(t, 1, model.TotalPages(1, 6))
	assert.Equal(t, 1, model.TotalPages(6, 6))
	assert.Equal(t, 2, model.TotalPages(7, 6))
	assert.Equal(t, 3, model.TotalPages(13, 6))
	assert.Equal(t, 0, model.TotalPages(10, 0))
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, model.Offset(1, 6))
	assert.Equal(t, 6, model.Offset(2, 6))
	assert.Equal(t, 12, model.Offset(3, 6))
	// pages below 1 clamp to the first page
	assert.Equal(t, 0, model.Offset(0, 6))
	assert.Equal(t, 0, model.Offset(-4, 6))
}
