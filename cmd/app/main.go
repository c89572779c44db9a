package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SketchShifter/starwars_backend/internal/config"
	"github.com/SketchShifter/starwars_backend/internal/logging"
	"github.com/SketchShifter/starwars_backend/internal/models"
	"github.com/SketchShifter/starwars_backend/internal/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// 設定をロード
	cfg, err := config.Load()
	if err != nil {
		l := logging.New(logging.Config{})
		l.Fatal().Err(err).Msg("設定の読み込みに失敗しました")
	}

	logger := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	logger.Info().Msg("サーバーを起動しています...")

	// Gin モードの設定（環境変数が設定されていない場合はデバッグモード）
	if cfg.Server.GinMode == "" {
		cfg.Server.GinMode = gin.DebugMode
	}

	// エンドポイント登録をログに出す
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
		logger.Debug().
			Str("method", httpMethod).
			Str("path", absolutePath).
			Str("handler", handlerName).
			Int("handlers", nuHandlers).
			Msg("エンドポイント登録")
	}

	// データベース接続
	db, err := config.InitDB(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("データベース接続に失敗しました")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal().Err(err).Msg("SQLDBインスタンス取得に失敗しました")
	}
	defer sqlDB.Close()

	if cfg.Database.AutoMigrate {
		if err := models.Migrate(db); err != nil {
			logger.Fatal().Err(err).Msg("マイグレーションに失敗しました")
		}
		logger.Info().Msg("スキーマを作成しました")
	}

	// ルーターをセットアップ
	router := routes.SetupRouter(cfg, db, logger)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("サーバーを開始しています")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("サーバーの起動に失敗しました")
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("サーバーを停止しています...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("シャットダウンに失敗しました")
		os.Exit(1)
	}
}
