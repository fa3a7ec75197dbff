package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/absenta-hr/leave-backend-go/internal/config"
	appHTTP "github.com/absenta-hr/leave-backend-go/internal/handler/http"
	"github.com/absenta-hr/leave-backend-go/internal/pkg/cron"
	"github.com/absenta-hr/leave-backend-go/internal/pkg/database"
	"github.com/absenta-hr/leave-backend-go/internal/pkg/jwt"
	"github.com/absenta-hr/leave-backend-go/internal/repository/postgresql"
	balanceService "github.com/absenta-hr/leave-backend-go/internal/service/balance"
	calendarService "github.com/absenta-hr/leave-backend-go/internal/service/calendar"
	requestService "github.com/absenta-hr/leave-backend-go/internal/service/request"
	sellbackService "github.com/absenta-hr/leave-backend-go/internal/service/sellback"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Error loading config", "error", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	balanceRepo := postgresql.NewLeaveBalanceRepository(db)
	requestRepo := postgresql.NewLeaveRequestRepository(db)
	sellBackRepo := postgresql.NewSellBackRepository(db)
	eventRepo := postgresql.NewCalendarEventRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	ledger := balanceService.NewLedger(db, balanceRepo, cfg.Leave.DefaultAnnualDays)
	leaveRequests := requestService.NewService(db, requestRepo, employeeRepo, ledger)
	sellBacks := sellbackService.NewService(db, sellBackRepo, employeeRepo, ledger, cfg.Leave.MaxSellBackDays)
	calendars := calendarService.NewService(requestRepo, eventRepo, employeeRepo)

	rolloverInterval, err := time.ParseDuration(cfg.Leave.RolloverCheckEvery)
	if err != nil {
		slog.Error("Invalid rollover interval", "value", cfg.Leave.RolloverCheckEvery, "error", err)
		os.Exit(1)
	}
	scheduler := cron.NewScheduler()
	cron.NewRolloverJobs(employeeRepo, ledger, rolloverInterval).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		jwtService,
		appHTTP.NewBalanceHandler(ledger),
		appHTTP.NewLeaveRequestHandler(leaveRequests),
		appHTTP.NewSellBackHandler(sellBacks),
		appHTTP.NewCalendarHandler(calendars),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server starting", "addr", addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
