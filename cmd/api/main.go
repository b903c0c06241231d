package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "microloan-backend/internal/adapter/http"
	"microloan-backend/internal/adapter/middleware"
	"microloan-backend/internal/adapter/repository/mysql"
	"microloan-backend/internal/config"
	"microloan-backend/internal/infrastructure/cache"
	"microloan-backend/internal/infrastructure/db"
	ucapproval "microloan-backend/internal/usecase/approval"
	ucclient "microloan-backend/internal/usecase/client"
	ucconfig "microloan-backend/internal/usecase/creditconfig"
	ucjournal "microloan-backend/internal/usecase/journal"
	ucloan "microloan-backend/internal/usecase/loan"
	ucpayment "microloan-backend/internal/usecase/payment"
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

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	loanRepo := mysql.NewLoanRepository(gdb)
	installmentRepo := mysql.NewInstallmentRepository(gdb)
	paymentRepo := mysql.NewPaymentRepository(gdb)
	configRepo := mysql.NewCreditConfigRepository(gdb)
	clientRepo := mysql.NewClientRepository(gdb)
	journalRepo := mysql.NewJournalRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	h := httpadp.Handlers{
		Health:   httpadp.NewHandler(),
		Loans:    httpadp.NewLoanHandler(ucloan.NewUsecase(loanRepo, installmentRepo, configRepo)),
		Approval: httpadp.NewApprovalHandler(ucapproval.NewUsecase(uow)),
		Payments: httpadp.NewPaymentHandler(ucpayment.NewUsecase(uow), ucpayment.NewQueries(paymentRepo, loanRepo, installmentRepo)),
		Configs:  httpadp.NewConfigHandler(ucconfig.NewUsecase(configRepo, uow)),
		Clients:  httpadp.NewClientHandler(ucclient.NewUsecase(clientRepo)),
		Journals: httpadp.NewJournalHandler(ucjournal.NewUsecase(journalRepo)),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())
	e.Validator = httpadp.NewValidator()

	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)
	httpadp.RegisterRoutes(e, h, idemp)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
