package middleware

import (
	"net/http"

	"github.com/absenta-hr/leave-backend-go/internal/domain/employee"
	"github.com/absenta-hr/leave-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireApprover requires approver or admin role
func RequireApprover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, employee.ErrApproverRoleRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, employee.ErrApproverRoleRequired)
			return
		}

		if !employee.Role(roleStr).CanApprove() {
			response.HandleError(w, employee.ErrApproverRoleRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAdmin requires admin role
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, employee.ErrAdminRoleRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, employee.ErrAdminRoleRequired)
			return
		}

		if employee.Role(roleStr) != employee.RoleAdmin {
			response.HandleError(w, employee.ErrAdminRoleRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
