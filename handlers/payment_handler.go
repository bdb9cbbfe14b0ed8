package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Rahim00001/AuraStay-server/authorization"
	"github.com/Rahim00001/AuraStay-server/errors"
	application "github.com/Rahim00001/AuraStay-server/service"
)

type PaymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

type PaymentHandler struct {
	service  *application.PaymentService
	validate *validator.Validate
	tracer   trace.Tracer
	logger   *logrus.Logger
}

func NewPaymentHandler(service *application.PaymentService, tracer trace.Tracer, logger *logrus.Logger) *PaymentHandler {
	return &PaymentHandler{
		service:  service,
		validate: validator.New(),
		tracer:   tracer,
		logger:   logger,
	}
}

func (handler *PaymentHandler) Init(router *mux.Router, gate *authorization.AccessGate) {
	router.Handle("/create-payment-intent", gate.RequireAuth(http.HandlerFunc(handler.CreatePaymentIntent))).Methods("POST")
}

// CreatePaymentIntent delegates to the external payment processor. A
// missing or non-positive price is answered with an explicit 400 instead
// of dropping the request.
func (handler *PaymentHandler) CreatePaymentIntent(rw http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "PaymentHandler.CreatePaymentIntent")
	defer span.End()

	var request PaymentIntentRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		http.Error(rw, errors.InvalidRequestFormatError, http.StatusBadRequest)
		return
	}

	if err := handler.validate.Struct(&request); err != nil {
		http.Error(rw, errors.InvalidPriceError, http.StatusBadRequest)
		return
	}

	clientSecret, err := handler.service.CreatePaymentIntent(ctx, request.Price)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(rw, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonResponse(map[string]string{"clientSecret": clientSecret}, rw)
}
