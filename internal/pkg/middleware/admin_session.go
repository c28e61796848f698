package middleware

import (
	"net/http"

	"github.com/tsel-ticketmaster/tm-availability/internal/pkg/jwt"
	"github.com/tsel-ticketmaster/tm-availability/internal/pkg/session"
	"github.com/tsel-ticketmaster/tm-availability/pkg/errors"
	"github.com/tsel-ticketmaster/tm-availability/pkg/response"
)

type AdminSession struct {
	jsonWebToken *jwt.JSONWebToken
	session      session.Store
}

func NewAdminSessionMiddleware(jsonWebToken *jwt.JSONWebToken, session session.Store) *AdminSession {
	return &AdminSession{
		jsonWebToken: jsonWebToken,
		session:      session,
	}
}

// Verify authenticates the request against the admin session store and puts
// the account on the request context.
func (m *AdminSession) Verify(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, err := bearerToken(r)
		if err != nil {
			ae := errors.Destruct(err)
			response.JSON(w, ae.HTTPStatusCode, response.RESTEnvelope{
				Status:  ae.Status,
				Message: ae.Message,
			})

			return
		}

		claims := &AccessTokenClaims{}
		if err := m.jsonWebToken.Parse(token, claims); err != nil {
			ae := errors.Destruct(err)
			response.JSON(w, ae.HTTPStatusCode, response.RESTEnvelope{
				Status:  ae.Status,
				Message: ae.Message,
			})

			return
		}

		account, err := m.session.Get(ctx, session.Key("adminapp", claims.AccountID))
		if err != nil {
			ae := errors.Destruct(err)
			response.JSON(w, ae.HTTPStatusCode, response.RESTEnvelope{
				Status:  ae.Status,
				Message: ae.Message,
			})

			return
		}

		ctx = session.SetAccountToCtx(ctx, account)
		next(w, r.WithContext(ctx))
	}
}
