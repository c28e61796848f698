package event

import "time"

type CreateCategoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *CreateCategoryResponse) PopulateFromEntity(c Category) {
	r.ID = c.ID
	r.Name = c.Name
	r.Color = c.Color
	r.CreatedAt = c.CreatedAt
	r.UpdatedAt = c.UpdatedAt
}

type CreateEventResponse struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Venue          string     `json:"venue"`
	Location       string     `json:"location"`
	ImageURL       string     `json:"image_url"`
	Date           time.Time  `json:"date"`
	EndDate        *time.Time `json:"end_date"`
	Price          float64    `json:"price"`
	TotalSeats     int64      `json:"total_seats"`
	AvailableSeats int64      `json:"available_seats"`
	CategoryID     int64      `json:"category_id"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (r *CreateEventResponse) PopulateFromEntity(e Event) {
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
	r.CategoryID = e.CategoryID
	r.Status = e.Status
	r.CreatedAt = e.CreatedAt
	r.UpdatedAt = e.UpdatedAt
}

type UpdateEventSeatsResponse struct {
	ID             string    `json:"id"`
	TotalSeats     int64     `json:"total_seats"`
	AvailableSeats int64     `json:"available_seats"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (r *UpdateEventSeatsResponse) PopulateFromEntity(e Event) {
	r.ID = e.ID
	r.TotalSeats = e.TotalSeats
	r.AvailableSeats = e.AvailableSeats
	r.UpdatedAt = e.UpdatedAt
}
