package main

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"koperasi-loan-service/internal/adapter/accurate"
	httpadp "koperasi-loan-service/internal/adapter/http"
	"koperasi-loan-service/internal/adapter/middleware"
	"koperasi-loan-service/internal/adapter/repository/mysql"
	"koperasi-loan-service/internal/adapter/session"
	"koperasi-loan-service/internal/config"
	"koperasi-loan-service/internal/infrastructure/cache"
	infradb "koperasi-loan-service/internal/infrastructure/db"
	approvaluc "koperasi-loan-service/internal/usecase/approval"
	authuc "koperasi-loan-service/internal/usecase/auth"
	dashboarduc "koperasi-loan-service/internal/usecase/dashboard"
	loanuc "koperasi-loan-service/internal/usecase/loan"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid config", zap.Error(err))
	}

	db, err := infradb.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal("open mysql", zap.Error(err))
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal("open redis", zap.Error(err))
	}

	accurateClient := accurate.NewClient(cfg.AccurateBaseURL, cfg.AccurateAccessToken, cfg.AccurateSessionID)
	sessions := session.NewRedisStore(rdb, time.Duration(cfg.SessionTTLSecs)*time.Second)

	loanRepo := mysql.NewLoanRepository(db)
	tx := mysql.NewGormUoW(db)
	accounts := approvaluc.Accounts{Receivable: cfg.ReceivableAccountNo, Cash: cfg.CashAccountNo}

	loans := loanuc.NewUsecase(loanRepo, accurateClient, log)
	approvals := approvaluc.NewUsecase(tx, accurateClient, accounts, log)
	dashboards := dashboarduc.NewUsecase(accurateClient, accurateClient, cfg.ReceivableAccountNo, log)
	auths := authuc.NewUsecase(accurateClient, sessions, log)

	h := httpadp.NewHandler()
	loanHandler := httpadp.NewLoanHandler(loans)
	approvalHandler := httpadp.NewApprovalHandler(approvals)
	authHandler := httpadp.NewAuthHandler(auths, dashboards, accurateClient, accurateClient)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	api := e.Group("/api")
	api.POST("/login", authHandler.Login)
	api.GET("/auth-status", authHandler.AuthStatus)

	authd := api.Group("", middleware.Auth(sessions))
	authd.GET("/dashboard-data", authHandler.Dashboard)
	authd.GET("/employees", authHandler.Employees)
	authd.GET("/loan-applications", loanHandler.ListLoans)
	authd.GET("/loan-applications/:loan_id", loanHandler.GetLoan)

	mutating := api.Group("", middleware.Auth(sessions),
		middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	mutating.POST("/loan-applications", loanHandler.SubmitLoan)
	mutating.PATCH("/loan-applications/:loan_id", approvalHandler.ApplyAction)

	addr := ":" + cfg.AppPort
	log.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
