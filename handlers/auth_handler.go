package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"github.com/Rahim00001/AuraStay-server/errors"
	application "github.com/Rahim00001/AuraStay-server/service"
)

type AuthHandler struct {
	sessions *application.SessionService
	tracer   trace.Tracer
	logger   *logrus.Logger
}

func NewAuthHandler(sessions *application.SessionService, tracer trace.Tracer, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		tracer:   tracer,
		logger:   logger,
	}
}

func (handler *AuthHandler) Init(router *mux.Router) {
	router.HandleFunc("/jwt", handler.IssueToken).Methods("POST")
	router.HandleFunc("/logout", handler.Logout).Methods("GET")
	router.HandleFunc("/", handler.Health).Methods("GET")
}

// IssueToken mints the session token from the posted identity claims and
// sets it as the session cookie.
func (handler *AuthHandler) IssueToken(rw http.ResponseWriter, req *http.Request) {
	_, span := handler.tracer.Start(req.Context(), "AuthHandler.IssueToken")
	defer span.End()

	var claims struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(req.Body).Decode(&claims); err != nil {
		http.Error(rw, errors.InvalidRequestFormatError, http.StatusBadRequest)
		return
	}

	token, err := handler.sessions.Issue(claims.Email)
	if err != nil {
		http.Error(rw, err.Error(), http.StatusInternalServerError)
		return
	}

	http.SetCookie(rw, handler.sessions.CreateCookie(token))
	jsonResponse(map[string]bool{"success": true}, rw)
}

// Logout clears the session cookie. Always succeeds, also for requests
// that carried no cookie at all.
func (handler *AuthHandler) Logout(rw http.ResponseWriter, req *http.Request) {
	_, span := handler.tracer.Start(req.Context(), "AuthHandler.Logout")
	defer span.End()

	http.SetCookie(rw, handler.sessions.ClearCookie())
	jsonResponse(map[string]bool{"success": true}, rw)
}

func (handler *AuthHandler) Health(rw http.ResponseWriter, req *http.Request) {
	rw.Write([]byte("AuraStay is working"))
}
