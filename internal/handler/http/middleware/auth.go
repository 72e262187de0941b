package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/hris-portal-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired accepts verified access tokens that name an employee.
func AuthRequired(svc jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.Unauthorized(w, "Missing token")
				return
			}

			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.Unauthorized(w, "Invalid token type")
				return
			}

			if _, err := svc.EmployeeID(token); err != nil {
				response.HandleError(w, err)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
