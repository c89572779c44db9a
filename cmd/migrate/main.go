package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/SketchShifter/starwars_backend/internal/config"
	"github.com/SketchShifter/starwars_backend/internal/logging"
	"github.com/SketchShifter/starwars_backend/internal/mock"
	"github.com/SketchShifter/starwars_backend/internal/models"
	"github.com/SketchShifter/starwars_backend/internal/services"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	logger zerolog.Logger
	db     *gorm.DB
)

var rootCmd = &cobra.Command{
	Use:           "migrate",
	Short:         "スキーマとシードデータの管理",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 設定をロード
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger = logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

		// データベース接続
		db, err = config.InitDB(cfg, logger)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if db == nil {
			return nil
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	},
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "テーブルを作成",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := models.Migrate(db.WithContext(cmd.Context())); err != nil {
			return err
		}
		logger.Info().Msg("マイグレーションが成功しました")
		return nil
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "テーブルを削除（逆順）",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := models.DropAll(db.WithContext(cmd.Context())); err != nil {
			return err
		}
		logger.Info().Msg("テーブルの削除が成功しました")
		return nil
	},
}

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "シードデータを投入（--file 省略時は組み込みデータ）",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds := mock.Default()
		if seedFile != "" {
			var err error
			if ds, err = mock.LoadFile(seedFile); err != nil {
				return err
			}
		}

		inserted, err := services.NewSeedService(db).Seed(cmd.Context(), ds)
		if err != nil {
			return err
		}
		logCounts(logger.Info(), inserted).Msg("シードデータを投入しました")
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "各テーブルの行数を表示",
	RunE: func(cmd *cobra.Command, args []string) error {
		counts, err := services.NewSeedService(db).Counts(cmd.Context())
		if err != nil {
			return err
		}
		logCounts(logger.Info(), counts).Msg("テーブルの行数")
		return nil
	},
}

func logCounts(e *zerolog.Event, c services.TableCounts) *zerolog.Event {
	return e.
		Int64("users", c.Users).
		Int64("planets", c.Planets).
		Int64("characters", c.Characters).
		Int64("films", c.Films).
		Int64("starships", c.Starships).
		Int64("favorites", c.Favorites)
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "シードデータのYAMLファイル")
	rootCmd.AddCommand(upCmd, downCmd, seedCmd, statusCmd)
}

// run 引数を指定してコマンドを実行
func run(ctx context.Context, args []string) error {
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		l := logging.New(logging.Config{})
		l.Error().Err(err).Msg("コマンドの実行に失敗しました")
		stop()
		os.Exit(1)
	}
}
