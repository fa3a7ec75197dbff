package sellback

import "context"

// SellBackRepository - interface for sell_back_requests table
type SellBackRepository interface {
	Create(ctx context.Context, r SellBackRequest) (SellBackRequest, error)
	GetByID(ctx context.Context, id string) (SellBackRequest, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]SellBackRequest, error)
	UpdateStatus(ctx context.Context, id string, from, to Status) error
}
