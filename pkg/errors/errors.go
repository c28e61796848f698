package errors

import (
	"net/http"

	"github.com/tsel-ticketmaster/tm-availability/pkg/status"
)

// AppError carries the transport mapping of an application failure so that
// handlers can destructure any error into an HTTP response without knowing
// which layer produced it.
type AppError struct {
	HTTPStatusCode int
	Status         string
	Message        string
}

func (e *AppError) Error() string {
	return e.Message
}

func New(httpStatusCode int, status string, message string) error {
	return &AppError{
		HTTPStatusCode: httpStatusCode,
		Status:         status,
		Message:        message,
	}
}

// Destruct resolves any error into an AppError. Errors that were not built by
// this package are treated as internal faults.
func Destruct(err error) *AppError {
	if ae, ok := err.(*AppError); ok {
		return ae
	}

	return &AppError{
		HTTPStatusCode: http.StatusInternalServerError,
		Status:         status.INTERNAL_SERVER_ERROR,
		Message:        err.Error(),
	}
}
