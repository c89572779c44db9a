package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// HealthStatus ヘルスステータス
type HealthStatus struct {
	Status    string `json:"status"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
	Database  string `json:"database"`
}

// Healthy すべて正常かどうか
func (h HealthStatus) Healthy() bool {
	return h.Status == "ok"
}

// HealthService ヘルスチェックに関するサービスインターフェース
type HealthService interface {
	GetStatus(ctx context.Context) HealthStatus
}

// healthService HealthServiceの実装
type healthService struct {
	db        *gorm.DB
	logger    zerolog.Logger
	startTime time.Time
	version   string
}

// NewHealthService HealthServiceを作成
func NewHealthService(db *gorm.DB, version string, logger zerolog.Logger) HealthService {
	return &healthService{
		db:        db,
		logger:    logger,
		startTime: time.Now(),
		version:   version,
	}
}

// GetStatus サービスとデータベースのステータスを取得
func (s *healthService) GetStatus(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:    "ok",
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
		Timestamp: time.Now().Format(time.RFC3339),
		Version:   s.version,
		Database:  "ok",
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		// 詳細はログのみに出す
		s.logger.Error().Err(err).Msg("データベースに接続できません")
		status.Status = "degraded"
		status.Database = "unavailable"
	}

	return status
}
