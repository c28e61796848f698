package jwt

import (
	"crypto/rsa"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tsel-ticketmaster/tm-availability/pkg/errors"
	"github.com/tsel-ticketmaster/tm-availability/pkg/status"
)

// JSONWebToken signs and verifies the platform's RS256 access tokens. The
// private key may be empty on services that only verify.
type JSONWebToken struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
}

func NewJSONWebToken(privateKeyPEM, publicKeyPEM string) *JSONWebToken {
	j := &JSONWebToken{}

	if privateKeyPEM != "" {
		if key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM)); err == nil {
			j.privateKey = key
		}
	}
	if publicKeyPEM != "" {
		if key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM)); err == nil {
			j.publicKey = key
		}
	}

	return j
}

func (j *JSONWebToken) Sign(claims jwt.Claims) (string, error) {
	if j.privateKey == nil {
		return "", errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "jwt signing key is not configured")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)

	signed, err := token.SignedString(j.privateKey)
	if err != nil {
		return "", errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while signing access token")
	}

	return signed, nil
}

func (j *JSONWebToken) Parse(tokenString string, claims jwt.Claims) error {
	if j.publicKey == nil {
		return errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "jwt verification key is not configured")
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return j.publicKey, nil
	})
	if err != nil || !token.Valid {
		return errors.New(http.StatusUnauthorized, status.UNAUTHORIZED, "access token is invalid")
	}

	return nil
}
