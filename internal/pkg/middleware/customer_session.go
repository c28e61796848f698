package middleware

import (
	"net/http"
	"strings"

	jwtgo "github.com/golang-jwt/jwt/v5"

	"github.com/tsel-ticketmaster/tm-availability/internal/pkg/jwt"
	"github.com/tsel-ticketmaster/tm-availability/internal/pkg/session"
	"github.com/tsel-ticketmaster/tm-availability/pkg/errors"
	"github.com/tsel-ticketmaster/tm-availability/pkg/response"
	"github.com/tsel-ticketmaster/tm-availability/pkg/status"
)

// AccessTokenClaims is the payload minted by the account service.
type AccessTokenClaims struct {
	jwtgo.RegisteredClaims
	AccountID int64  `json:"account_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

func bearerToken(r *http.Request) (string, error) {
	authorization := r.Header.Get("Authorization")

	token, found := strings.CutPrefix(authorization, "Bearer ")
	if !found || token == "" {
		return "", errors.New(http.StatusUnauthorized, status.UNAUTHORIZED, "authorization bearer token is required")
	}

	return token, nil
}

type CustomerSession struct {
	jsonWebToken *jwt.JSONWebToken
	session      session.Store
}

func NewCustomerSessionMiddleware(jsonWebToken *jwt.JSONWebToken, session session.Store) *CustomerSession {
	return &CustomerSession{
		jsonWebToken: jsonWebToken,
		session:      session,
	}
}

// Verify authenticates the request against the customer session store and
// puts the account on the request context.
func (m *CustomerSession) Verify(next http.HandlerFunc) http.HandlerFunc {
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

		account, err := m.session.Get(ctx, session.Key("customerapp", claims.AccountID))
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
