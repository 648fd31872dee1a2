package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/common/webapi"
	"go.uber.org/zap"

	"github.com/bensedjadrafik-ux/vitube-app/internal/config"
	"github.com/bensedjadrafik-ux/vitube-app/internal/db"
	"github.com/bensedjadrafik-ux/vitube-app/internal/filestore"
	"github.com/bensedjadrafik-ux/vitube-app/internal/handler"
	"github.com/bensedjadrafik-ux/vitube-app/internal/job"
	"github.com/bensedjadrafik-ux/vitube-app/internal/middleware"
	"github.com/bensedjadrafik-ux/vitube-app/internal/repo"
	"github.com/bensedjadrafik-ux/vitube-app/internal/schedule"
	"github.com/bensedjadrafik-ux/vitube-app/internal/service"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "vitube",
		Short: "vitube backend server",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run vitube server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return fmt.Errorf("--config is required")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(
				cfg.LogConfig.File,
				cfg.LogConfig.Level,
				int(cfg.LogConfig.FileCount),
				int(cfg.LogConfig.FileSize),
				int(cfg.LogConfig.KeepDays),
				cfg.LogConfig.Console,
			)
			logutil.GetLogger(context.Background()).Info("config loaded", zap.String("config", configPath))

			database, err := db.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			if err := db.ApplyMigrations(database); err != nil {
				return fmt.Errorf("migrations: %w", err)
			}
			return runServer(cfg, database)
		},
	}

	runCmd.Flags().StringVar(&configPath, "config", "", "path to config.json")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func runServer(cfg *config.Config, database *sql.DB) error {
	logutil.GetLogger(context.Background()).Info(
		"starting server",
		zap.Int("port", cfg.Port),
		zap.String("file_store", cfg.FileStore.Type),
	)

	userRepo := repo.NewUserRepo(database)
	videoRepo := repo.NewVideoRepo(database)
	commentRepo := repo.NewCommentRepo(database)
	uploadRepo := repo.NewUploadRepo(database)

	tokenTTL := time.Hour * time.Duration(cfg.TokenTTLHours)
	authService := service.NewAuthService(userRepo, []byte(cfg.JWTSecret), tokenTTL)
	videoService := service.NewVideoService(
		videoRepo,
		commentRepo,
		uploadRepo,
		userRepo,
		cfg.ListCache.Size,
		time.Duration(cfg.ListCache.TTLSeconds)*time.Second,
	)

	store, err := filestore.New(cfg.FileStore)
	if err != nil {
		return fmt.Errorf("init file store: %w", err)
	}

	deps := handler.RouterDeps{
		Auth:      handler.NewAuthHandler(authService),
		Videos:    handler.NewVideoHandler(videoService),
		Files:     handler.NewFileHandler(store, uploadRepo),
		JWTSecret: []byte(cfg.JWTSecret),
	}

	engine, err := webapi.NewEngine(
		"/api",
		fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(cfg.CORSAllowlist),
			gzip.Gzip(gzip.DefaultCompression),
		),
	)
	if err != nil {
		return fmt.Errorf("init web engine: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := schedule.NewCronScheduler()
	cleanup := job.NewUploadCleanupJob(uploadRepo, store, time.Duration(cfg.UploadMaxAgeHours)*time.Hour)
	if err := scheduler.AddJob(cleanup, cfg.UploadCleanupSpec); err != nil {
		return err
	}
	scheduler.Start(ctx)
	defer scheduler.Stop()

	logutil.GetLogger(context.Background()).Info("http server listening", zap.String("addr", fmt.Sprintf("0.0.0.0:%d", cfg.Port)))
	go func() {
		if err := engine.Run(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(context.Background()).Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logutil.GetLogger(context.Background()).Info("server stopping...")
	return nil
}
