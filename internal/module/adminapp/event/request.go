package event

import (
	"net/http"
	"time"

	"github.com/tsel-ticketmaster/tm-availability/internal/pkg/util"
	"github.com/tsel-ticketmaster/tm-availability/pkg/errors"
	"github.com/tsel-ticketmaster/tm-availability/pkg/status"
)

type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color" validate:"required,hex_color"`
}

func (r CreateCategoryRequest) ToEntityCategory(now time.Time) Category {
	return Category{
		Name:      r.Name,
		Color:     r.Color,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type CreateEventRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Venue       string  `json:"venue" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
	Date        string  `json:"date" validate:"datetime=2006-01-02 15:04:05"`
	EndDate     string  `json:"end_date" validate:"omitempty,datetime=2006-01-02 15:04:05"`
	Price       float64 `json:"price" validate:"min=0"`
	TotalSeats  int64   `json:"total_seats" validate:"required,min=1"`
	CategoryID  int64   `json:"category_id" validate:"required"`
}

func (r CreateEventRequest) ToEntityEvent(location *time.Location, now time.Time) (Event, error) {
	date, _ := time.ParseInLocation(time.DateTime, r.Date, location)

	event := Event{
		ID:             util.GenerateTimestampWithPrefix("EVENT"),
		Title:          r.Title,
		Description:    r.Description,
		Venue:          r.Venue,
		Location:       r.Location,
		ImageURL:       r.ImageURL,
		Date:           date,
		EndDate:        nil,
		Price:          r.Price,
		TotalSeats:     r.TotalSeats,
		AvailableSeats: r.TotalSeats,
		CategoryID:     r.CategoryID,
		Status:         StatusPublished,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if r.EndDate != "" {
		endDate, _ := time.ParseInLocation(time.DateTime, r.EndDate, location)
		if endDate.Before(date) {
			return Event{}, errors.New(http.StatusBadRequest, status.BAD_REQUEST, "end date must not be earlier than start date")
		}
		event.EndDate = &endDate
	}

	return event, nil
}

type UpdateEventSeatsRequest struct {
	EventID        string `json:"-" validate:"required"`
	TotalSeats     int64  `json:"total_seats" validate:"required,min=1"`
	AvailableSeats int64  `json:"available_seats" validate:"min=0"`
}
