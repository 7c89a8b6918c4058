package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "hrms-loan-service/internal/adapter/http"
	"hrms-loan-service/internal/adapter/middleware"
	payrolladp "hrms-loan-service/internal/adapter/payroll"
	"hrms-loan-service/internal/adapter/repository/mysql"
	"hrms-loan-service/internal/config"
	approvalDomain "hrms-loan-service/internal/domain/approval"
	loanDomain "hrms-loan-service/internal/domain/loan"
	policyDomain "hrms-loan-service/internal/domain/policy"
	repaymentDomain "hrms-loan-service/internal/domain/repayment"
	waitlistDomain "hrms-loan-service/internal/domain/waitlist"
	"hrms-loan-service/internal/infrastructure/cache"
	"hrms-loan-service/internal/infrastructure/db"
	"hrms-loan-service/internal/usecase/submission"
	"hrms-loan-service/internal/usecase/workflow"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(
		&loanDomain.LoanRequest{},
		&policyDomain.LoanPolicy{},
		&approvalDomain.ApprovalRecord{},
		&repaymentDomain.Entry{},
		&waitlistDomain.Entry{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	loans := mysql.NewLoanRequestRepository(gdb)
	policies := mysql.NewPolicyRepository(gdb)
	directory := mysql.NewEmployeeDirectory(gdb)
	if err := directory.Migrate(); err != nil {
		log.Fatalf("migrate employee profiles: %v", err)
	}
	uow := mysql.NewGormUoW(gdb)
	sink := payrolladp.NewRedisSink(rdb)

	prioritizer := waitlistDomain.NewPrioritizer(waitlistDomain.Weights{
		Reason:    cfg.WaitlistReasonWeight,
		Amount:    cfg.WaitlistAmountWeight,
		AgePerDay: cfg.WaitlistAgeWeight,
	}, time.Duration(cfg.WaitlistStaleDays)*24*time.Hour)

	submitUC := submission.NewUsecase(loans, policies, directory)
	workflowUC := workflow.NewUsecase(uow, sink, prioritizer)

	h := httpadp.NewHandler()
	loanH := httpadp.NewLoanHandler(submitUC)
	workflowH := httpadp.NewWorkflowHandler(workflowUC)
	waitlistH := httpadp.NewWaitlistHandler(workflowUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	e.Use(middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	e.GET("/health", h.Health)

	e.POST("/loans", loanH.SubmitLoan)
	e.GET("/loans", loanH.ListLoans)
	e.GET("/loans/:request_id", loanH.GetLoan)
	e.POST("/loans/:request_id/decisions", workflowH.Decide)
	e.POST("/loans/:request_id/disburse", workflowH.Disburse)

	e.POST("/repayments/:entry_id/outcome", workflowH.RecordOutcome)

	e.GET("/waiting-list", waitlistH.ListWaiting)
	e.POST("/waiting-list/:entry_id/promote", waitlistH.Promote)
	e.POST("/waiting-list/:entry_id/reconfirm", waitlistH.Reconfirm)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
