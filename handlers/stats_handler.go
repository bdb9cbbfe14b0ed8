package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Rahim00001/AuraStay-server/authorization"
	"github.com/Rahim00001/AuraStay-server/errors"
	application "github.com/Rahim00001/AuraStay-server/service"
)

type StatsHandler struct {
	service *application.StatsService
	tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewStatsHandler(service *application.StatsService, tracer trace.Tracer, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (handler *StatsHandler) Init(router *mux.Router, gate *authorization.AccessGate) {
	router.Handle("/admin-stat", gate.RequireAuth(gate.RequireRole(http.HandlerFunc(handler.AdminStat)))).Methods("GET")
	router.Handle("/host-stat", gate.RequireAuth(gate.RequireRole(http.HandlerFunc(handler.HostStat)))).Methods("GET")
	router.Handle("/guest-stat", gate.RequireAuth(http.HandlerFunc(handler.GuestStat))).Methods("GET")
}

func (handler *StatsHandler) AdminStat(rw http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "StatsHandler.AdminStat")
	defer span.End()

	stat, err := handler.service.AdminStat(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(rw, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonResponse(stat, rw)
}

func (handler *StatsHandler) HostStat(rw http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "StatsHandler.HostStat")
	defer span.End()

	email, ok := authorization.IdentityFromContext(ctx)
	if !ok {
		http.Error(rw, errors.UnauthenticatedError, http.StatusUnauthorized)
		return
	}

	stat, err := handler.service.HostStat(ctx, email)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(rw, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonResponse(stat, rw)
}

func (handler *StatsHandler) GuestStat(rw http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "StatsHandler.GuestStat")
	defer span.End()

	email, ok := authorization.IdentityFromContext(ctx)
	if !ok {
		http.Error(rw, errors.UnauthenticatedError, http.StatusUnauthorized)
		return
	}

	stat, err := handler.service.GuestStat(ctx, email)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(rw, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonResponse(stat, rw)
}
