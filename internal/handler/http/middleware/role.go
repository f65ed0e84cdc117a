package middleware

import (
	"net/http"

	"github.com/edupay/edupay-backend-go/internal/domain/user"
	"github.com/edupay/edupay-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

func roleFromContext(r *http.Request) (user.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	role, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return user.Role(role), true
}

func requireRoles(roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := roleFromContext(r)
			if !ok {
				response.Unauthorized(w, "Invalid or missing token")
				return
			}
			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}
			response.Forbidden(w, "You do not have permission to access this resource")
		})
	}
}

// RequireAdmin restricts a route to administrators.
func RequireAdmin(next http.Handler) http.Handler {
	return requireRoles(user.RoleAdmin)(next)
}

// RequireAccountant restricts a route to payroll operators. Admins are
// allowed through so they can cover for an absent accountant.
func RequireAccountant(next http.Handler) http.Handler {
	return requireRoles(user.RoleAccountant, user.RoleAdmin)(next)
}

// RequireTeacher restricts a route to the teacher self-service portal.
func RequireTeacher(next http.Handler) http.Handler {
	return requireRoles(user.RoleTeacher)(next)
}
