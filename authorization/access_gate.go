package authorization

import (
	"context"
	"net/http"

	"github.com/casbin/casbin"
	"github.com/sirupsen/logrus"

	"github.com/Rahim00001/AuraStay-server/domain"
	"github.com/Rahim00001/AuraStay-server/errors"
	application "github.com/Rahim00001/AuraStay-server/service"
)

type identityKey struct{}

func ContextWithIdentity(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, identityKey{}, email)
}

// IdentityFromContext returns the email RequireAuth attached to the request.
func IdentityFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(identityKey{}).(string)
	return email, ok
}

// AccessGate is the ordered chain of authorization checks attached per
// route. The first failing gate writes the response; later gates and the
// handler never run.
type AccessGate struct {
	sessions *application.SessionService
	users    domain.UserStore
	enforcer *casbin.Enforcer
	logger   *logrus.Logger
}

func NewAccessGate(sessions *application.SessionService, users domain.UserStore, enforcer *casbin.Enforcer, logger *logrus.Logger) *AccessGate {
	return &AccessGate{
		sessions: sessions,
		users:    users,
		enforcer: enforcer,
		logger:   logger,
	}
}

func (gate *AccessGate) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		cookie, err := req.Cookie(application.SessionCookieName)
		if err != nil {
			gate.logger.Warnf("unauthenticated request to %s", req.URL.Path)
			http.Error(rw, errors.UnauthenticatedError, http.StatusUnauthorized)
			return
		}

		claims, err := gate.sessions.Verify(cookie.Value)
		if err != nil {
			gate.logger.Warnf("invalid token on %s", req.URL.Path)
			http.Error(rw, errors.InvalidTokenError, http.StatusUnauthorized)
			return
		}

		ctx := ContextWithIdentity(req.Context(), claims.Email)
		next.ServeHTTP(rw, req.WithContext(ctx))
	})
}

// RequireRole reads the directory entry fresh on every request, so role
// changes take effect immediately without re-issuing the token. The
// stored role, not the token content, decides access. Denials map to 401.
func (gate *AccessGate) RequireRole(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		email, ok := IdentityFromContext(req.Context())
		if !ok {
			http.Error(rw, errors.UnauthenticatedError, http.StatusUnauthorized)
			return
		}

		user, err := gate.users.GetByEmail(req.Context(), email)
		if err != nil {
			gate.logger.Errorf("directory lookup failed for %s: %s", email, err)
			http.Error(rw, err.Error(), http.StatusInternalServerError)
			return
		}
		if user == nil {
			gate.logger.Warnf("no directory entry for %s", email)
			http.Error(rw, errors.ForbiddenAccessError, http.StatusUnauthorized)
			return
		}

		res, err := gate.enforcer.EnforceSafe(string(user.Role), req.URL.Path, req.Method)
		if err != nil {
			gate.logger.Error("Error enforcing authorization policy")
			http.Error(rw, errors.ForbiddenAccessError, http.StatusUnauthorized)
			return
		}

		if !res {
			gate.logger.Warnf("role %q denied on %s %s", user.Role, req.Method, req.URL.Path)
			http.Error(rw, errors.ForbiddenAccessError, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(rw, req)
	})
}
