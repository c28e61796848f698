package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/tsel-ticketmaster/tm-availability/internal/pkg/middleware"
	"github.com/tsel-ticketmaster/tm-availability/pkg/errors"
	publicMiddleware "github.com/tsel-ticketmaster/tm-availability/pkg/middleware"
	"github.com/tsel-ticketmaster/tm-availability/pkg/response"
	"github.com/tsel-ticketmaster/tm-availability/pkg/status"
)

type HTTPHandler struct {
	Validate        *validator.Validate
	CheckoutUseCase CheckoutUseCase
}

func InitHTTPHandler(router *mux.Router, customerSession *middleware.CustomerSession, validate *validator.Validate, checkoutUseCase CheckoutUseCase) {
	handler := &HTTPHandler{
		Validate:        validate,
		CheckoutUseCase: checkoutUseCase,
	}

	router.HandleFunc("/tm-availability/v1/customerapp/checkout-intents", publicMiddleware.SetRouteChain(handler.CreateIntent, customerSession.Verify)).Methods(http.MethodPost)
	router.HandleFunc("/tm-availability/v1/customerapp/checkout-intents", publicMiddleware.SetRouteChain(handler.GetManyIntent, customerSession.Verify)).Methods(http.MethodGet)
	router.HandleFunc("/tm-availability/v1/customerapp/checkout-intents/on-expire", publicMiddleware.SetRouteChain(handler.OnExpireIntent)).Methods(http.MethodPost)
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

func (handler HTTPHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := CreateIntentRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.JSON(w, http.StatusUnprocessableEntity, response.RESTEnvelope{
			Status:  status.UNPROCESSABLE_ENTITY,
			Message: err.Error(),
		})

		return
	}

	if err := handler.validate(ctx, req); err != nil {
		response.JSON(w, http.StatusBadRequest, response.RESTEnvelope{
			Status:  status.BAD_REQUEST,
			Message: err.Error(),
		})

		return
	}

	resp, err := handler.CheckoutUseCase.CreateIntent(ctx, req)
	if err != nil {
		ae := errors.Destruct(err)
		response.JSON(w, ae.HTTPStatusCode, response.RESTEnvelope{
			Status:  ae.Status,
			Message: ae.Message,
		})

		return
	}
	response.JSON(w, http.StatusCreated, response.RESTEnvelope{
		Status:  status.CREATED,
		Message: "checkout intent has been successfully created",
		Data:    resp,
		Meta:    nil,
	})

}

func (handler HTTPHandler) GetManyIntent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp, err := handler.CheckoutUseCase.GetManyIntent(ctx)
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
		Message: "list of checkout intents",
		Data:    resp,
		Meta:    nil,
	})

}

func (handler HTTPHandler) OnExpireIntent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	e := ExpireIntentEvent{}
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		response.JSON(w, http.StatusUnprocessableEntity, response.RESTEnvelope{
			Status:  status.UNPROCESSABLE_ENTITY,
			Message: err.Error(),
		})

		return
	}

	err := handler.CheckoutUseCase.OnExpireIntent(ctx, e)
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
		Message: "checkout intent has been successfully expired",
		Data:    nil,
		Meta:    nil,
	})

}
