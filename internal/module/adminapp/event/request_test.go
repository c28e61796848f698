package event

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tsel-ticketmaster/tm-availability/pkg/validator"
)

func validRequest() CreateEventRequest {
	return CreateEventRequest{
		Title:       "Dream Theater Live In Concert",
		Description: "An evening of progressive metal",
		Venue:       "Gelora Bung Karno",
		Location:    "Jakarta",
		ImageURL:    "https://cdn.example.com/events/dream-theater.jpg",
		Date:        "2026-09-01 20:00:00",
		Price:       750000,
		TotalSeats:  1000,
		CategoryID:  1,
	}
}

func TestCreateCategoryRequestValidation(t *testing.T) {
	validate := validator.Get()

	assert.NoError(t, validate.Struct(CreateCategoryRequest{Name: "Concert", Color: "#D93025"}))
	assert.NoError(t, validate.Struct(CreateCategoryRequest{Name: "Festival", Color: "#fff"}))
	assert.Error(t, validate.Struct(CreateCategoryRequest{Name: "Concert", Color: "red"}))
	assert.Error(t, validate.Struct(CreateCategoryRequest{Color: "#D93025"}))
}

func TestCreateEventRequestValidation(t *testing.T) {
	validate := validator.Get()

	assert.NoError(t, validate.Struct(validRequest()))

	t.Run("date without a time of day", func(t *testing.T) {
		req := validRequest()
		req.Date = "2026-09-01"

		assert.Error(t, validate.Struct(req))
	})

	t.Run("image url without a scheme", func(t *testing.T) {
		req := validRequest()
		req.ImageURL = "cdn.example.com/events/dream-theater.jpg"

		assert.Error(t, validate.Struct(req))
	})

	t.Run("empty image url is allowed", func(t *testing.T) {
		req := validRequest()
		req.ImageURL = ""

		assert.NoError(t, validate.Struct(req))
	})

	t.Run("zero seats", func(t *testing.T) {
		req := validRequest()
		req.TotalSeats = 0

		assert.Error(t, validate.Struct(req))
	})
}
