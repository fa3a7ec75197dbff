package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/absenta-hr/leave-backend-go/internal/domain/employee"
	balanceService "github.com/absenta-hr/leave-backend-go/internal/service/balance"
)

// RolloverJobs opens the current year's leave balances ahead of demand.
// The ledger also creates balances lazily, so this job is an optimization
// plus an early FK check after the calendar year flips.
type RolloverJobs struct {
	employeeRepo employee.EmployeeRepository
	ledger       *balanceService.Ledger
	interval     time.Duration
}

func NewRolloverJobs(employeeRepo employee.EmployeeRepository, ledger *balanceService.Ledger, interval time.Duration) *RolloverJobs {
	return &RolloverJobs{
		employeeRepo: employeeRepo,
		ledger:       ledger,
		interval:     interval,
	}
}

func (j *RolloverJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("open_annual_balances", j.interval, j.OpenAnnualBalances)
}

// OpenAnnualBalances ensures every active employee has a balance row for
// the current year. Existing rows are untouched.
func (j *RolloverJobs) OpenAnnualBalances(ctx context.Context) error {
	year := time.Now().UTC().Year()

	employees, err := j.employeeRepo.GetActive(ctx)
	if err != nil {
		return err
	}

	opened := 0
	for _, emp := range employees {
		if _, err := j.ledger.EnsureBalance(ctx, emp.ID, year); err != nil {
			slog.Error("Failed to open annual balance",
				"employee_id", emp.ID, "year", year, "error", err)
			continue
		}
		opened++
	}

	slog.Info("Annual balance rollover pass finished",
		"year", year, "employees", len(employees), "ensured", opened)
	return nil
}
