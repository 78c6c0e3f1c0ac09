package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

// adminTokenTTL bounds tokens issued by BuildAdminToken.
const adminTokenTTL = 24 * time.Hour

// AdminClaims are the claims carried by admin bearer tokens.
type AdminClaims struct {
	jwt.RegisteredClaims
	Subject string
}

// BuildAdminToken issues a signed HS256 bearer token for the given subject.
func BuildAdminToken(secret, subject string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AdminClaims{
		Subject: subject,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(adminTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})

	return token.SignedString([]byte(secret))
}

// BearerAuth returns middleware that rejects requests without a valid HS256
// bearer token signed with the given secret.
func BearerAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenString == "" {
				return ctx.JSON(http.StatusUnauthorized, errorResponse{Message: "Missing bearer token"})
			}

			claims := &AdminClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims,
				func(t *jwt.Token) (interface{}, error) {
					if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
						return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
					}
					return []byte(secret), nil
				})
			if err != nil || !token.Valid {
				return ctx.JSON(http.StatusUnauthorized, errorResponse{Message: "Invalid bearer token"})
			}

			return next(ctx)
		}
	}
}
