package middleware

import (
	"net/http"

	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/auth"
	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/user"
	"github.com/Jaganbehera1/Worker-Management-System/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AdminOnly gates the write paths. A viewer token can read everything
// and export payslips but never mutate the ledgers.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleAdmin) {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
