package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "loanbook-backend/internal/adapter/http"
	idemp "loanbook-backend/internal/adapter/middleware"
	"loanbook-backend/internal/adapter/repository/mysql"
	"loanbook-backend/internal/config"
	"loanbook-backend/internal/infrastructure/cache"
	"loanbook-backend/internal/infrastructure/db"
	ucLoan "loanbook-backend/internal/usecase/loan"
	ucPayment "loanbook-backend/internal/usecase/payment"
	ucReport "loanbook-backend/internal/usecase/report"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	profiles := mysql.NewLoanRepository(gdb)
	payments := mysql.NewPaymentRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	loanUC := ucLoan.NewUsecase(profiles, payments, uow)
	paymentUC := ucPayment.NewUsecase(uow)
	reportUC := ucReport.NewUsecase(profiles, payments)

	h := httpadp.NewHandler()
	loanH := httpadp.NewLoanHandler(loanUC)
	paymentH := httpadp.NewPaymentHandler(paymentUC, reportUC)
	reportH := httpadp.NewReportHandler(reportUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	guard := idemp.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// routes
	e.GET("/health", h.Health)
	e.GET("/overview", reportH.Overview)

	e.GET("/loans", loanH.ListLoans)
	e.POST("/loans", loanH.CreateLoan, guard)
	e.GET("/loans/history", reportH.LoanHistory)
	e.GET("/loans/:profile_id", loanH.GetLoan)
	e.PUT("/loans/:profile_id", loanH.UpdateLoan, guard)
	e.DELETE("/loans/:profile_id", loanH.DeleteLoan, guard)

	e.GET("/payments/outstanding", paymentH.ListOutstanding)
	e.POST("/payments", paymentH.RecordPayment, guard)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
