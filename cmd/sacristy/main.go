package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/openparish/sacristy/internal/config"
	"github.com/openparish/sacristy/internal/infra/database"
	"github.com/openparish/sacristy/internal/infra/gateway"
	"github.com/openparish/sacristy/internal/infra/jsonfile"
	"github.com/openparish/sacristy/internal/infra/render"
	"github.com/openparish/sacristy/internal/infra/repository"
	"github.com/openparish/sacristy/internal/infra/storage"
	"github.com/openparish/sacristy/internal/infra/tracer"
	"github.com/openparish/sacristy/internal/present/rest"
	"github.com/openparish/sacristy/internal/present/rest/middleware"
	"github.com/openparish/sacristy/internal/service"
	"github.com/openparish/sacristy/internal/usecase"
)

func main() {
	configPath := flag.String("config", "", "path to yaml config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	if conf.Server.EnableTrace {
		shutdown, err := tracer.Setup(ctx, conf.Server.TraceEndpoint)
		if err != nil {
			slog.Error("failed to set up tracing", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer shutdown(ctx)
	}

	var (
		registryRepo     usecase.RegistryRepository
		baptismRepo      usecase.BaptismRepository
		communionRepo    usecase.CommunionRepository
		confirmationRepo usecase.ConfirmationRepository
		marriageRepo     usecase.MarriageRepository
		holyOrderRepo    usecase.HolyOrderRepository
	)

	if conf.Server.PostgresDsn != "" {
		db, err := database.NewPostgres(conf.Server.PostgresDsn)
		if err != nil {
			slog.Error("failed to connect database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := database.MigratePostgres(db); err != nil {
			slog.Error("failed to migrate database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		registryRepo = repository.NewRegistryRepository(db)
		baptismRepo = repository.NewBaptismRepository(db)
		communionRepo = repository.NewCommunionRepository(db)
		confirmationRepo = repository.NewConfirmationRepository(db)
		marriageRepo = repository.NewMarriageRepository(db)
		holyOrderRepo = repository.NewHolyOrderRepository(db)
		slog.Info("using postgres entity store")
	} else {
		store, err := jsonfile.New(conf.Server.DataDir)
		if err != nil {
			slog.Error("failed to open data directory", slog.String("error", err.Error()))
			os.Exit(1)
		}
		registryRepo = store
		baptismRepo = store
		communionRepo = store
		confirmationRepo = store
		marriageRepo = store
		holyOrderRepo = store
		slog.Info("using json file entity store", slog.String("dir", conf.Server.DataDir))
	}

	var blobs usecase.BlobStore
	if conf.Storage.S3.Bucket != "" {
		s3Store, err := storage.NewS3(ctx, conf.Storage.S3)
		if err != nil {
			slog.Error("failed to set up s3 storage", slog.String("error", err.Error()))
			os.Exit(1)
		}
		blobs = s3Store
		slog.Info("using s3 certificate storage", slog.String("bucket", conf.Storage.S3.Bucket))
	} else {
		local, err := storage.NewLocal(conf.Storage.UploadDir)
		if err != nil {
			slog.Error("failed to open upload directory", slog.String("error", err.Error()))
			os.Exit(1)
		}
		blobs = local
	}

	var views usecase.ViewCache = service.NoopViewCache{}
	if conf.Server.RedisAddr != "" {
		views = service.NewRedisViewCache(database.NewRedis(conf.Server.RedisAddr, conf.Server.RedisDB))
	}

	auth := service.NewAuthService(
		conf.Auth.TokenSecret,
		time.Duration(conf.Auth.TokenTTLMinutes)*time.Minute,
		time.Duration(conf.Auth.RefreshTTLDays)*24*time.Hour,
	)
	mailer := gateway.NewResendMailer(conf.Email.ResendAPIKey, conf.Email.FromAddress)
	renderer := render.NewPDFRenderer()

	registryUC := usecase.NewRegistryUsecase(registryRepo)
	baptismUC := usecase.NewBaptismUsecase(registryRepo, baptismRepo, blobs)
	communionUC := usecase.NewCommunionUsecase(registryRepo, baptismRepo, communionRepo, blobs, views, baptismUC)
	confirmationUC := usecase.NewConfirmationUsecase(registryRepo, baptismRepo, communionRepo, confirmationRepo, views)
	marriageUC := usecase.NewMarriageUsecase(registryRepo, baptismRepo, communionRepo, confirmationRepo, marriageRepo, blobs)
	holyOrderUC := usecase.NewHolyOrderUsecase(baptismRepo, communionRepo, confirmationRepo, holyOrderRepo)
	certificateUC := usecase.NewCertificateUsecase(registryRepo, baptismRepo, communionRepo, renderer, blobs, mailer)

	handler := rest.NewHandler(
		auth, registryUC, baptismUC, communionUC, confirmationUC, marriageUC, holyOrderUC, certificateUC,
	)
	authMiddleware := middleware.NewAuthMiddleware(auth)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	if conf.Server.EnableTrace {
		e.Use(otelecho.Middleware("sacristy"))
	}
	e.Use(middleware.Metrics)
	e.Use(authMiddleware.RequireIdentity)

	handler.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(conf.Server.ListenAddr))
}
