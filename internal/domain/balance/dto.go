package balance

// BalanceResponse is the read projection returned by the API.
type BalanceResponse struct {
	EmployeeID    string `json:"employee_id"`
	Year          int    `json:"year"`
	TotalDays     int    `json:"total_days"`
	UsedDays      int    `json:"used_days"`
	AvailableDays int    `json:"available_days"`
}

func ToResponse(b LeaveBalance) BalanceResponse {
	return BalanceResponse{
		EmployeeID:    b.EmployeeID,
		Year:          b.Year,
		TotalDays:     b.TotalDays,
		UsedDays:      b.UsedDays,
		AvailableDays: b.AvailableDays(),
	}
}
