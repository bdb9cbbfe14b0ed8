package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Rahim00001/AuraStay-server/authorization"
	"github.com/Rahim00001/AuraStay-server/domain"
	"github.com/Rahim00001/AuraStay-server/errors"
	application "github.com/Rahim00001/AuraStay-server/service"
)

type UserHandler struct {
	service *application.UserService
	tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewUserHandler(service *application.UserService, tracer trace.Tracer, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (handler *UserHandler) Init(router *mux.Router, gate *authorization.AccessGate) {
	router.Handle("/users/update/{email}", gate.RequireAuth(http.HandlerFunc(handler.UpdateRole))).Methods("PUT")
	router.HandleFunc("/users/{email}", handler.UpsertProfile).Methods("PUT")
	router.Handle("/users", gate.RequireAuth(gate.RequireRole(http.HandlerFunc(handler.GetAll)))).Methods("GET")
	router.HandleFunc("/user/{email}", handler.GetProfile).Methods("GET")
}

func (handler *UserHandler) UpsertProfile(rw http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "UserHandler.UpsertProfile")
	defer span.End()

	email := mux.Vars(req)["email"]

	profile := &domain.User{}
	if err := profile.FromJSON(req.Body); err != nil {
		http.Error(rw, errors.InvalidRequestFormatError, http.StatusBadRequest)
		return
	}

	result, err := handler.service.UpsertProfile(ctx, email, profile)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		handler.logger.Print("Database exception: ", err)
		http.Error(rw, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonResponse(result, rw)
}

func (handler *UserHandler) GetProfile(rw http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "UserHandler.GetProfile")
	defer span.End()

	email := mux.Vars(req)["email"]

	user, err := handler.service.GetByEmail(ctx, email)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(rw, err.Error(), http.StatusInternalServerError)
		return
	}

	// unknown email responds with an empty result, not an error
	jsonResponse(user, rw)
}

func (handler *UserHandler) GetAll(rw http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "UserHandler.GetAll")
	defer span.End()

	users, err := handler.service.GetAll(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(rw, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonResponse(users, rw)
}

func (handler *UserHandler) UpdateRole(rw http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "UserHandler.UpdateRole")
	defer span.End()

	email := mux.Vars(req)["email"]

	var update domain.RoleUpdate
	if err := json.NewDecoder(req.Body).Decode(&update); err != nil {
		http.Error(rw, errors.InvalidRequestFormatError, http.StatusBadRequest)
		return
	}

	if err := handler.service.UpdateRole(ctx, email, &update); err != nil {
		span.SetStatus(codes.Error, err.Error())
		handler.logger.Print("Database exception: ", err)
		http.Error(rw, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonResponse(map[string]bool{"success": true}, rw)
}
