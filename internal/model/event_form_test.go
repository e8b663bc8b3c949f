package model_test

import (
	"strings"
	"testing"
	"time"

	"evently/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseForm() model.EventForm {
	return model.EventForm{
		Title:      "Summer Concert",
		ImageURL:   "https://img.example/concert.png",
		CategoryID: 1,
	}
}

func TestEventForm_Validate(t *testing.T) {
	t.Run("valid minimal form", func(t *testing.T) {
		form := baseForm()
		assert.Empty(t, form.Validate())
	})

	t.Run("title too short", func(t *testing.T) {
		form := baseForm()
		form.Title = "ab"

		errs := form.Validate()

		require.Len(t, errs, 1)
		assert.Equal(t, "title", errs[0].Field)
	})

	t.Run("description bounds", func(t *testing.T) {
		form := baseForm()
		long := strings.Repeat("x", 401)
		form.Description = &long

		errs := form.Validate()

		require.Len(t, errs, 1)
		assert.Equal(t, "description", errs[0].Field)

		ok := strings.Repeat("x", 400)
		form.Description = &ok
		assert.Empty(t, form.Validate())
	})

	t.Run("missing image url", func(t *testing.T) {
		form := baseForm()
		form.ImageURL = "  "

		errs := form.Validate()

		require.Len(t, errs, 1)
		assert.Equal(t, "imageUrl", errs[0].Field)
	})

	t.Run("end before start", func(t *testing.T) {
		form := baseForm()
		form.StartDateTime = time.Date(2026, 7, 1, 18, 0, 0, 0, time.UTC)
		form.EndDateTime = form.StartDateTime.Add(-time.Hour)

		errs := form.Validate()

		require.Len(t, errs, 1)
		assert.Equal(t, "endDateTime", errs[0].Field)
	})

	t.Run("malformed url", func(t *testing.T) {
		form := baseForm()
		bad := "not a url"
		form.URL = &bad

		errs := form.Validate()

		require.Len(t, errs, 1)
		assert.Equal(t, "url", errs[0].Field)
	})

	t.Run("missing category", func(t *testing.T) {
		form := baseForm()
		form.CategoryID = 0

		errs := form.Validate()

		require.Len(t, errs, 1)
		assert.Equal(t, "categoryId", errs[0].Field)
	})

	t.Run("multiple failures reported together", func(t *testing.T) {
		form := model.EventForm{}
		errs := form.Validate()
		assert.GreaterOrEqual(t, len(errs), 3)
	})
}
