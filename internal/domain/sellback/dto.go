package sellback

import (
	"time"

	"github.com/absenta-hr/leave-backend-go/internal/pkg/validator"
)

type CreateSellBackRequest struct {
	EmployeeID string  `json:"-"`
	DaysToSell int     `json:"days_to_sell"`
	Reason     *string `json:"reason,omitempty"`
}

func (r *CreateSellBackRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.DaysToSell < 1 || r.DaysToSell > 30 {
		errs = append(errs, validator.ValidationError{
			Field:   "days_to_sell",
			Message: "days_to_sell must be between 1 and 30",
		})
	}

	if r.Reason != nil && len(*r.Reason) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SellBackResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	DaysToSell      int     `json:"days_to_sell"`
	Reason          *string `json:"reason,omitempty"`
	Status          string  `json:"status"`
	EstimatedAmount string  `json:"estimated_amount"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

func ToResponse(r SellBackRequest) SellBackResponse {
	return SellBackResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		EmployeeName:    r.EmployeeName,
		DaysToSell:      r.DaysToSell,
		Reason:          r.Reason,
		Status:          string(r.Status),
		EstimatedAmount: r.EstimatedAmount.StringFixed(2),
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       r.UpdatedAt.Format(time.RFC3339),
	}
}

func ToResponses(rs []SellBackRequest) []SellBackResponse {
	out := make([]SellBackResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, ToResponse(r))
	}
	return out
}
