package event

import "time"

type CategoryResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type EventResponse struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Venue          string            `json:"venue"`
	Location       string            `json:"location"`
	ImageURL       string            `json:"image_url"`
	Date           time.Time         `json:"date"`
	EndDate        *time.Time        `json:"end_date"`
	Price          float64           `json:"price"`
	TotalSeats     int64             `json:"total_seats"`
	AvailableSeats int64             `json:"available_seats"`
	Category       *CategoryResponse `json:"category"`
	Status         string            `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func (r *EventResponse) PopulateFromEntity(e Event) {
	r.ID = e.ID
	r.Title = e.Title
	r.Description = e.Description
	r.Venue = e.Venue
	r.Location = e.Location
	r.ImageURL = e.ImageURL
	r.Date = e.Date
	r.EndDate = e.EndDate
	r.Price = e.Price
	r.TotalSeats = e.TotalSeats
	r.AvailableSeats = e.AvailableSeats
	r.Status = e.Status
	r.CreatedAt = e.CreatedAt
	r.UpdatedAt = e.UpdatedAt

	if e.Category != nil {
		r.Category = &CategoryResponse{
			ID:    e.Category.ID,
			Name:  e.Category.Name,
			Color: e.Category.Color,
		}
	}
}

type Pagination struct {
	Page  int64 `json:"page"`
	Size  int64 `json:"size"`
	Total int64 `json:"total"`
}

type GetManyEventResponse struct {
	Events     []EventResponse
	Pagination Pagination
}
