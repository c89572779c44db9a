package repository

import (
	"context"

	"github.com/SketchShifter/starwars_backend/internal/models"

	"gorm.io/gorm"
)

// ArchiveRepository APIで公開しない映画・宇宙船テーブルの操作を行うインターフェース
type ArchiveRepository interface {
	CreateFilm(ctx context.Context, film *models.Film) error
	CreateStarship(ctx context.Context, starship *models.Starship) error
	CountFilms(ctx context.Context) (int64, error)
	CountStarships(ctx context.Context) (int64, error)
}

// archiveRepository ArchiveRepositoryの実装
type archiveRepository struct {
	db *gorm.DB
}

// NewArchiveRepository ArchiveRepositoryを作成
func NewArchiveRepository(db *gorm.DB) ArchiveRepository {
	return &archiveRepository{db: db}
}

// CreateFilm 映画を作成
func (r *archiveRepository) CreateFilm(ctx context.Context, film *models.Film) error {
	return r.db.WithContext(ctx).Create(film).Error
}

// CreateStarship 宇宙船を作成
func (r *archiveRepository) CreateStarship(ctx context.Context, starship *models.Starship) error {
	return r.db.WithContext(ctx).Create(starship).Error
}

// CountFilms 映画数を取得
func (r *archiveRepository) CountFilms(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Film{}).Count(&count).Error
	return count, err
}

// CountStarships 宇宙船数を取得
func (r *archiveRepository) CountStarships(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Starship{}).Count(&count).Error
	return count, err
}
