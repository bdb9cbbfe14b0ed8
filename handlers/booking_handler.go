package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Rahim00001/AuraStay-server/authorization"
	"github.com/Rahim00001/AuraStay-server/domain"
	"github.com/Rahim00001/AuraStay-server/errors"
	application "github.com/Rahim00001/AuraStay-server/service"
)

type BookingHandler struct {
	service *application.BookingService
	tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewBookingHandler(service *application.BookingService, tracer trace.Tracer, logger *logrus.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (handler *BookingHandler) Init(router *mux.Router, gate *authorization.AccessGate) {
	router.Handle("/bookings", gate.RequireAuth(http.HandlerFunc(handler.Create))).Methods("POST")
	router.Handle("/bookings", gate.RequireAuth(http.HandlerFunc(handler.GetByGuest))).Methods("GET")
	router.Handle("/bookings/host", gate.RequireAuth(gate.RequireRole(http.HandlerFunc(handler.GetByHost)))).Methods("GET")
	router.Handle("/bookings/{id}", gate.RequireAuth(http.HandlerFunc(handler.Delete))).Methods("DELETE")
}

func (handler *BookingHandler) Create(rw http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.Create")
	defer span.End()

	booking := &domain.Booking{}
	if err := booking.FromJSON(req.Body); err != nil {
		http.Error(rw, errors.InvalidRequestFormatError, http.StatusBadRequest)
		return
	}

	created, err := handler.service.Create(ctx, booking)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		handler.logger.Print("Database exception: ", err)
		http.Error(rw, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonResponse(created, rw)
}

func (handler *BookingHandler) GetByGuest(rw http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.GetByGuest")
	defer span.End()

	email := req.URL.Query().Get("email")

	bookings, err := handler.service.GetByGuest(ctx, email)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(rw, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonResponse(bookings, rw)
}

func (handler *BookingHandler) GetByHost(rw http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.GetByHost")
	defer span.End()

	email := req.URL.Query().Get("email")

	bookings, err := handler.service.GetByHost(ctx, email)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(rw, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonResponse(bookings, rw)
}

func (handler *BookingHandler) Delete(rw http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.Delete")
	defer span.End()

	id, err := primitive.ObjectIDFromHex(mux.Vars(req)["id"])
	if err != nil {
		http.Error(rw, errors.InvalidRequestFormatError, http.StatusBadRequest)
		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(rw, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonResponse(map[string]bool{"success": true}, rw)
}
