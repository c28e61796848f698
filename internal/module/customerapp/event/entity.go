package event

import "time"

const (
	StatusPublished string = "PUBLISHED"
	StatusArchived  string = "ARCHIVED"
)

type Category struct {
	ID        int64
	Name      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Event struct {
	ID             string
	Title          string
	Description    string
	Venue          string
	Location       string
	ImageURL       string
	Date           time.Time
	EndDate        *time.Time
	Price          float64
	TotalSeats     int64
	AvailableSeats int64
	CategoryID     int64
	Category       *Category
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
