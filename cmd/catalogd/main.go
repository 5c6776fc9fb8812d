package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/ksarkisyan/catalog-intake/gen/proto/catalog/v1"
	"github.com/ksarkisyan/catalog-intake/internal/collage"
	"github.com/ksarkisyan/catalog-intake/internal/common"
	"github.com/ksarkisyan/catalog-intake/internal/export"
	"github.com/ksarkisyan/catalog-intake/internal/ocr"
	"github.com/ksarkisyan/catalog-intake/internal/pipeline"
	"github.com/ksarkisyan/catalog-intake/internal/publish"
	"github.com/ksarkisyan/catalog-intake/internal/repository"
	"github.com/ksarkisyan/catalog-intake/internal/resolve"
	"github.com/ksarkisyan/catalog-intake/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	brands := repository.NewBrandRepository(entc, logger)
	products := repository.NewProductRepository(entc, logger)
	images := repository.NewProductImageRepository(entc, logger)
	jobs := repository.NewUploadJobRepository(entc, logger)

	recognizer, err := ocr.NewVisionRecognizer(ctx, cfg.Pipeline.OCRTimeout, logger)
	if err != nil {
		logger.Error("creating vision recognizer", "error", err)
		os.Exit(1)
	}
	defer recognizer.Close()

	compositor, err := collage.NewCompositor(collage.Config{
		Width:    cfg.Collage.CanvasWidth,
		Height:   cfg.Collage.CanvasHeight,
		FontPath: cfg.Collage.FontPath,
	}, logger)
	if err != nil {
		logger.Error("creating compositor", "error", err)
		os.Exit(1)
	}

	notifier, err := publish.NewTelegramNotifier(publish.TelegramConfig{
		BotToken: cfg.Telegram.BotToken,
		ChatID:   cfg.Telegram.ChatID,
		BaseURL:  cfg.Telegram.BaseURL,
		Timeout:  cfg.Telegram.Timeout,
	}, logger)
	if err != nil {
		logger.Error("creating telegram notifier", "error", err)
		os.Exit(1)
	}

	coordinator := pipeline.NewCoordinator(cfg.Pipeline, cfg.Collage, pipeline.CoordinatorDeps{
		Jobs:            jobs,
		Products:        products,
		Images:          images,
		Brands:          brands,
		BrandResolver:   resolve.NewBrandResolver(brands, logger),
		ProductResolver: resolve.NewProductResolver(products, logger),
		Recognizer:      recognizer,
		Composer:        compositor,
		Notifier:        notifier,
		Store:           pipeline.NewMediaStore(cfg.Pipeline.MediaRoot),
		Logger:          logger,
	})

	exporter := export.NewService(products, brands, images, logger)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewIntakeService(coordinator, jobs, brands, exporter, logger)
	v1.RegisterCatalogIntakeServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
