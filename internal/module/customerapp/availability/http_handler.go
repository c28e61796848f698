package availability

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/tsel-ticketmaster/tm-availability/pkg/errors"
	publicMiddleware "github.com/tsel-ticketmaster/tm-availability/pkg/middleware"
	"github.com/tsel-ticketmaster/tm-availability/pkg/response"
	"github.com/tsel-ticketmaster/tm-availability/pkg/status"
)

type HTTPHandler struct {
	Validate            *validator.Validate
	AvailabilityUseCase AvailabilityUseCase
}

func InitHTTPHandler(router *mux.Router, validate *validator.Validate, availabilityUseCase AvailabilityUseCase) {
	handler := &HTTPHandler{
		Validate:            validate,
		AvailabilityUseCase: availabilityUseCase,
	}

	router.HandleFunc("/tm-availability/v1/customerapp/events/{eventId}/availability", publicMiddleware.SetRouteChain(handler.GetAvailability)).Methods(http.MethodGet)
}

func (handler HTTPHandler) validate(ctx context.Context, payload interface{}) error {
	err := handler.Validate.StructCtx(ctx, payload)
	if err == nil {
		return nil
	}

	errorFields := err.(validator.ValidationErrors)

	errMessages := make([]string, len(errorFields))

	for k, errorField := range errorFields {
		errMessages[k] = fmt.Sprintf("invalid '%s' with value '%v'", errorField.Field(), errorField.Value())
	}

	errorMessage := strings.Join(errMessages, ", ")

	return fmt.Errorf(errorMessage)

}

func (handler HTTPHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	qs := r.URL.Query()

	req := GetAvailabilityRequest{}
	req.EventID = mux.Vars(r)["eventId"]

	if raw := qs.Get("quantity"); raw != "" {
		quantity, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || quantity < 1 {
			response.JSON(w, http.StatusBadRequest, response.RESTEnvelope{
				Status:  status.BAD_REQUEST,
				Message: fmt.Sprintf("invalid 'quantity' with value '%s'", raw),
			})

			return
		}
		req.Quantity = quantity
	}

	if err := handler.validate(ctx, req); err != nil {
		response.JSON(w, http.StatusBadRequest, response.RESTEnvelope{
			Status:  status.BAD_REQUEST,
			Message: err.Error(),
		})

		return
	}

	resp, err := handler.AvailabilityUseCase.GetAvailability(ctx, req)
	if err != nil {
		ae := errors.Destruct(err)
		response.JSON(w, ae.HTTPStatusCode, response.RESTEnvelope{
			Status:  ae.Status,
			Message: ae.Message,
		})

		return
	}
	response.JSON(w, http.StatusOK, response.RESTEnvelope{
		Status:  status.OK,
		Message: "event's availability",
		Data:    resp,
		Meta:    nil,
	})

}
