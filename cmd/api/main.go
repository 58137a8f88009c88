package main

import (
	"loja/internal/config"
	"loja/internal/domain/model"
	"loja/internal/handler"
	"loja/internal/infra/cache"
	"loja/internal/infra/db"
	infraRepo "loja/internal/infra/repository"
	"loja/internal/logger"
	"loja/internal/server"
	"loja/internal/usecase"
	"loja/internal/validator"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	//.envはローカル開発用。無くても動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//logger初期化（debugはconsole、prodはJSONファイル）
	log := logger.Init(cfg.GoEnv, logger.Options{
		Dir:        cfg.LogDir,
		Filename:   cfg.LogFilename,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
		Compress:   cfg.LogCompress,
	})
	defer func() { _ = log.Sync() }()

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.RefreshToken{},
		&model.Category{},
		&model.Product{},
		&model.CartItem{},
		&model.Address{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatal("auto migrate failed", zap.Error(err))
	}

	//商品キャッシュ（REDIS_ADDRが空なら無効）
	cache.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, "loja")
	if cache.Enabled() {
		log.Info("product cache enabled", zap.String("addr", cfg.RedisAddr))
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	rtRepo := infraRepo.NewRefreshTokenGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	cartRepo := infraRepo.NewCartItemGormRepository(gormDB)
	addressRepo := infraRepo.NewAddressGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(cfg, userRepo, rtRepo, validator.NewAuthValidator(userRepo))
	catalogUC := usecase.NewCatalogUsecase(productRepo, categoryRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, productRepo)
	orderUC := usecase.NewOrderUsecase(txManager, addressRepo)
	addressUC := usecase.NewAddressUsecase(addressRepo)

	//Handler生成
	e := server.New(server.Deps{
		Cfg:      cfg,
		UserRepo: userRepo,
		AuthH:    handler.NewAuthHandler(authUC, cfg),
		ProductH: handler.NewProductHandler(catalogUC),
		CartH:    handler.NewCartHandler(cartUC),
		OrderH:   handler.NewOrderHandler(orderUC),
		AddressH: handler.NewAddressHandler(addressUC),
	})

	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	log.Info("server starting", zap.String("addr", addr))
	if err := server.Start(e, addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
