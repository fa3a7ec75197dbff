package http

import (
	"net/http"

	"github.com/absenta-hr/leave-backend-go/internal/domain/employee"
	"github.com/go-chi/jwtauth/v5"
)

// identity is the caller as asserted by the access token.
type identity struct {
	EmployeeID string
	Role       employee.Role
	Department string
}

func identityFromRequest(r *http.Request) (identity, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return identity{}, false
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return identity{}, false
	}

	roleStr, _ := claims["role"].(string)
	department, _ := claims["department"].(string)

	return identity{
		EmployeeID: employeeID,
		Role:       employee.Role(roleStr),
		Department: department,
	}, true
}
