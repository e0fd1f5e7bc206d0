package main

import (
	"time"

	"pos/internal/config"
	"pos/internal/domain/model"
	"pos/internal/handler"
	"pos/internal/infra/db"
	infraRepo "pos/internal/infra/repository"
	"pos/internal/server"
	"pos/internal/usecase"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load config failed")
	}

	logger := log.New()
	if cfg.GoEnv == "prod" {
		logger.SetFormatter(&log.JSONFormatter{})
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.WithError(err).Fatal("db connect failed")
	}

	if err := gormDB.AutoMigrate(
		&model.Customer{},
		&model.Product{},
		&model.Transaction{},
		&model.TransactionItem{},
	); err != nil {
		logger.WithError(err).Fatal("migrate failed")
	}

	//初期カタログ（productsが空のときだけ）
	if err := db.SeedCatalog(gormDB); err != nil {
		logger.WithError(err).Fatal("seed failed")
	}

	//Repository（GORM実装）生成
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	transactionRepo := infraRepo.NewTransactionGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//Usecase生成
	customerUC := usecase.NewCustomerUsecase(customerRepo)
	catalogUC := usecase.NewCatalogUsecase(productRepo)
	saleUC := usecase.NewSaleUsecase(txManager, transactionRepo, idGen, clock)

	//Handler生成
	customerH := handler.NewCustomerHandler(customerUC)
	productH := handler.NewProductHandler(catalogUC)
	saleH := handler.NewSaleHandler(saleUC)

	//Server起動
	addr := cfg.Port
	if addr != "" && addr[0] != ':' {
		addr = ":" + addr
	}

	logger.WithField("addr", addr).Info("starting server")
	if err := server.Start(addr, logger, cfg.RequestTimeout, customerH, productH, saleH); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
