package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	nats "github.com/nats-io/nats.go"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/legal-connect/backend/config"
	httpadapter "github.com/legal-connect/backend/internal/adapters/http"
	apiv1 "github.com/legal-connect/backend/internal/adapters/http/api/v1"
	"github.com/legal-connect/backend/internal/adapters/http/api/v1/handlers"
	authmw "github.com/legal-connect/backend/internal/adapters/http/middleware"
	natsadapter "github.com/legal-connect/backend/internal/adapters/nats"
	repo "github.com/legal-connect/backend/internal/adapters/postgres"
	"github.com/legal-connect/backend/internal/adapters/storage"
	"github.com/legal-connect/backend/internal/domain"
	"github.com/legal-connect/backend/internal/usecase"
	pkglog "github.com/legal-connect/backend/pkg/log"
)

type App struct {
	cfg      *config.Config
	logger   pkglog.Logger
	db       *gorm.DB
	natsConn *nats.Conn
	echo     *echo.Echo
}

func New(ctx context.Context) (*App, error) {
	cfg := config.MustLoad()
	appLogger := pkglog.New(cfg.AppEnv)

	db, err := gorm.Open(postgres.Open(buildDSN(cfg)), &gorm.Config{
		Logger:         loggerForGorm(cfg),
		NamingStrategy: schema.NamingStrategy{SingularTable: false},
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.AdvocateProfile{}, &domain.InternProfile{}, &domain.ClientProfile{}); err != nil {
		return nil, err
	}

	var nc *nats.Conn
	if cfg.NATSURL != "" {
		nc, err = nats.Connect(cfg.NATSURL)
		if err != nil {
			log.Printf("nats connect failed: %v", err)
		}
	}

	store := repo.NewStore(db)
	docStore, err := storage.NewDiskStore(cfg.UploadDir, cfg.UploadMaxBytes, appLogger)
	if err != nil {
		return nil, err
	}
	var events natsadapter.EventPublisher
	if nc != nil {
		events = natsadapter.NewPublisher(nc, cfg.NATSRegisteredSubject)
	}

	signer, err := usecase.NewJWTSigner(cfg)
	if err != nil {
		return nil, err
	}

	registration := usecase.NewRegistrationService(cfg, appLogger, store, docStore, events, signer)
	auth := usecase.NewAuthService(cfg, appLogger, store, signer)
	users := usecase.NewUserService(appLogger, store)
	advocates := usecase.NewAdvocateService(appLogger, store)
	interns := usecase.NewInternService(appLogger, store)
	clients := usecase.NewClientService(appLogger, store)

	authMW := authmw.NewAuthMiddleware(signer)
	router := httpadapter.NewRouter(cfg, apiv1.NewRouter(
		handlers.NewAuthHandler(registration, auth, docStore),
		handlers.NewUserHandler(users),
		handlers.NewAdvocateHandler(advocates),
		handlers.NewInternHandler(interns),
		handlers.NewClientHandler(clients),
		authMW.Handler,
	))

	e := echo.New()
	router.Setup(e)

	return &App{cfg: cfg, logger: appLogger, db: db, natsConn: nc, echo: e}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = a.echo.Shutdown(shutdownCtx)
	}()
	go func() {
		errCh <- a.echo.Start(fmt.Sprintf("%s:%s", a.cfg.HTTPHost, a.cfg.HTTPPort))
	}()
	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (a *App) Close() {
	if a.natsConn != nil {
		_ = a.natsConn.Drain()
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

func buildDSN(cfg *config.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s", cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)
}

func loggerForGorm(cfg *config.Config) logger.Interface {
	level := logger.Silent
	switch cfg.AppEnv {
	case "local":
		level = logger.Info
	default:
		level = logger.Warn
	}
	return logger.Default.LogMode(level)
}
