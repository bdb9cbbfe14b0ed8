package application

import (
	"net/http"
	"time"

	"github.com/cristalhq/jwt/v4"
	"github.com/sirupsen/logrus"

	"github.com/Rahim00001/AuraStay-server/domain"
	"github.com/Rahim00001/AuraStay-server/errors"
)

// SessionCookieName is the cookie carrying the signed identity token.
const SessionCookieName = "token"

// TokenValidity is the 365-day session window.
const TokenValidity = 365 * 24 * time.Hour

type SessionService struct {
	signer     jwt.Signer
	verifier   jwt.Verifier
	production bool
	logger     *logrus.Logger
}

func NewSessionService(secretKey []byte, production bool, logger *logrus.Logger) (*SessionService, error) {
	signer, err := jwt.NewSignerHS(jwt.HS256, secretKey)
	if err != nil {
		return nil, err
	}
	verifier, err := jwt.NewVerifierHS(jwt.HS256, secretKey)
	if err != nil {
		return nil, err
	}
	return &SessionService{
		signer:     signer,
		verifier:   verifier,
		production: production,
		logger:     logger,
	}, nil
}

func (service *SessionService) Issue(email string) (string, error) {
	builder := jwt.NewBuilder(service.signer)

	claims := &domain.Claims{
		Email:     email,
		ExpiresAt: time.Now().Add(TokenValidity),
	}

	token, err := builder.Build(claims)
	if err != nil {
		service.logger.Errorf("%s: %s", errors.ErrorToken, err)
		return "", err
	}

	return token.String(), nil
}

// Verify returns the identity claims carried by the token. A missing
// token, a bad signature and an expired token all collapse into
// ErrInvalidToken; callers must not distinguish further.
func (service *SessionService) Verify(tokenString string) (*domain.Claims, error) {
	if tokenString == "" {
		return nil, errors.ErrInvalidToken
	}

	var claims domain.Claims
	err := jwt.ParseClaims([]byte(tokenString), service.verifier, &claims)
	if err != nil {
		return nil, errors.ErrInvalidToken
	}

	if time.Now().After(claims.ExpiresAt) {
		return nil, errors.ErrInvalidToken
	}

	return &claims, nil
}

// CreateCookie wraps a token in the session cookie. Secure and
// cross-site attributes are only set in the production runtime mode;
// local development keeps SameSite=Strict over plain HTTP.
func (service *SessionService) CreateCookie(token string) *http.Cookie {
	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TokenValidity.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
	if service.production {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	}
	return cookie
}

// ClearCookie revokes the session on the client. There is no server-side
// blacklist: a token the client kept still verifies until it expires.
func (service *SessionService) ClearCookie() *http.Cookie {
	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
	if service.production {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	}
	return cookie
}
