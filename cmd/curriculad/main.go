package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	curriculav1 "github.com/brunoqueiroz/curricula-admin/gen/proto/curricula/v1"
	"github.com/brunoqueiroz/curricula-admin/internal/auth"
	"github.com/brunoqueiroz/curricula-admin/internal/common"
	"github.com/brunoqueiroz/curricula-admin/internal/entity"
	"github.com/brunoqueiroz/curricula-admin/internal/export"
	"github.com/brunoqueiroz/curricula-admin/internal/lifecycle"
	"github.com/brunoqueiroz/curricula-admin/internal/llm/gemini"
	"github.com/brunoqueiroz/curricula-admin/internal/pdf"
	"github.com/brunoqueiroz/curricula-admin/internal/pipeline"
	"github.com/brunoqueiroz/curricula-admin/internal/repository"
	"github.com/brunoqueiroz/curricula-admin/internal/server"
	"github.com/brunoqueiroz/curricula-admin/internal/watch"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
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
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	logger.Info("database health OK")

	// Repositories
	standardsRepo := repository.NewStandardItemRepository(entc, logger)
	institutionsRepo := repository.NewInstitutionRepository(entc, logger)
	typesRepo := repository.NewInstitutionTypeRepository(entc, logger)
	rulesRepo := repository.NewUserRuleRepository(entc, logger)

	// Authorization and lifecycle controllers
	authorizer := auth.NewJWTAuthorizer(cfg.Auth.JWTSecret, logger)
	standardsCtrl := lifecycle.NewController[*entity.StandardItem](standardsRepo, authorizer, logger)
	instCtrl := lifecycle.NewController[*entity.Institution](institutionsRepo, authorizer, logger)
	typeCtrl := lifecycle.NewController[*entity.InstitutionType](typesRepo, authorizer, logger)
	ruleCtrl := lifecycle.NewController[*entity.UserRule](rulesRepo, authorizer, logger)

	// Extraction pipeline
	textExtractor := pdf.NewExtractor(pdf.Config{
		Pdftotext: cfg.PDF.Pdftotext,
		MaxPages:  cfg.PDF.MaxPages,
	}, logger)
	geminiClient := gemini.NewClient(gemini.Config{
		APIKey:      cfg.Extractor.APIKey,
		BaseURL:     cfg.Extractor.BaseURL,
		Model:       cfg.Extractor.Model,
		Temperature: cfg.Extractor.Temperature,
		Timeout:     cfg.Extractor.Timeout,
	}, logger)
	orchestrator := pipeline.NewOrchestrator(textExtractor, geminiClient, logger)

	exporter := export.NewService(standardsRepo, logger)

	// Optional drop-folder ingestion
	if cfg.Watch.Root != "" {
		events, errs, err := watch.Start(ctx, watch.Config{
			Roots:    []string{cfg.Watch.Root},
			Debounce: cfg.Watch.Debounce,
		})
		if err != nil {
			logger.Error("failed to start drop-folder watcher", "root", cfg.Watch.Root, "error", err)
			os.Exit(1)
		}
		processor := watch.NewProcessor(orchestrator, standardsRepo, auth.Static{Admin: true}, logger)
		go processor.Run(ctx, events)
		go func() {
			for err := range errs {
				logger.Error("drop-folder watcher error", "error", err)
			}
		}()
		logger.Info("drop-folder watcher running", "root", cfg.Watch.Root)
	}

	// gRPC server
	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	curriculav1.RegisterCurriculumServiceServer(grpcServer,
		server.NewCurriculumService(standardsRepo, standardsCtrl, exporter, logger))
	curriculav1.RegisterAdminServiceServer(grpcServer,
		server.NewAdminService(institutionsRepo, typesRepo, rulesRepo, instCtrl, typeCtrl, ruleCtrl, logger))
	curriculav1.RegisterIngestionServiceServer(grpcServer,
		server.NewIngestionService(orchestrator, standardsRepo, authorizer, logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
