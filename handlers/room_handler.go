package handlers

import (
	"encoding/json"
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

type RoomHandler struct {
	service *application.RoomService
	tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewRoomHandler(service *application.RoomService, tracer trace.Tracer, logger *logrus.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (handler *RoomHandler) Init(router *mux.Router, gate *authorization.AccessGate) {
	router.HandleFunc("/rooms", handler.GetAll).Methods("GET")
	router.Handle("/rooms", gate.RequireAuth(http.HandlerFunc(handler.Create))).Methods("POST")
	router.HandleFunc("/rooms/status/{id}", handler.SetBookedStatus).Methods("PATCH")
	router.Handle("/rooms/{email}", gate.RequireAuth(gate.RequireRole(http.HandlerFunc(handler.GetByHost)))).Methods("GET")
	router.Handle("/rooms/{id}", gate.RequireAuth(http.HandlerFunc(handler.Update))).Methods("PUT")
	router.Handle("/rooms/{id}", gate.RequireAuth(http.HandlerFunc(handler.Delete))).Methods("DELETE")
	router.HandleFunc("/room/{id}", handler.Get).Methods("GET")
}

func (handler *RoomHandler) GetAll(rw http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "RoomHandler.GetAll")
	defer span.End()

	rooms, err := handler.service.GetAll(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(rw, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonResponse(rooms, rw)
}

func (handler *RoomHandler) Get(rw http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "RoomHandler.Get")
	defer span.End()

	id, err := primitive.ObjectIDFromHex(mux.Vars(req)["id"])
	if err != nil {
		http.Error(rw, errors.InvalidRequestFormatError, http.StatusBadRequest)
		return
	}

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(rw, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonResponse(room, rw)
}

func (handler *RoomHandler) GetByHost(rw http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "RoomHandler.GetByHost")
	defer span.End()

	email := mux.Vars(req)["email"]

	rooms, err := handler.service.GetByHost(ctx, email)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(rw, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonResponse(rooms, rw)
}

func (handler *RoomHandler) Create(rw http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "RoomHandler.Create")
	defer span.End()

	room := &domain.Room{}
	if err := room.FromJSON(req.Body); err != nil {
		http.Error(rw, errors.InvalidRequestFormatError, http.StatusBadRequest)
		return
	}

	created, err := handler.service.Create(ctx, room)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		handler.logger.Print("Database exception: ", err)
		http.Error(rw, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonResponse(created, rw)
}

func (handler *RoomHandler) Update(rw http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "RoomHandler.Update")
	defer span.End()

	id, err := primitive.ObjectIDFromHex(mux.Vars(req)["id"])
	if err != nil {
		http.Error(rw, errors.InvalidRequestFormatError, http.StatusBadRequest)
		return
	}

	room := &domain.Room{}
	if err := room.FromJSON(req.Body); err != nil {
		http.Error(rw, errors.InvalidRequestFormatError, http.StatusBadRequest)
		return
	}

	if err := handler.service.Update(ctx, id, room); err != nil {
		span.SetStatus(codes.Error, err.Error())
		handler.logger.Print("Database exception: ", err)
		http.Error(rw, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonResponse(room, rw)
}

func (handler *RoomHandler) Delete(rw http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "RoomHandler.Delete")
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

func (handler *RoomHandler) SetBookedStatus(rw http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "RoomHandler.SetBookedStatus")
	defer span.End()

	id, err := primitive.ObjectIDFromHex(mux.Vars(req)["id"])
	if err != nil {
		http.Error(rw, errors.InvalidRequestFormatError, http.StatusBadRequest)
		return
	}

	var body struct {
		Status bool `json:"status"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		http.Error(rw, errors.InvalidRequestFormatError, http.StatusBadRequest)
		return
	}

	if err := handler.service.SetBookedStatus(ctx, id, body.Status); err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(rw, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonResponse(map[string]bool{"success": true}, rw)
}
