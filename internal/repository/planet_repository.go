package repository

import (
	"context"

	"github.com/SketchShifter/starwars_backend/internal/models"

	"gorm.io/gorm"
)

// PlanetRepository 惑星に関するデータベース操作を行うインターフェース
type PlanetRepository interface {
	Create(ctx context.Context, planet *models.Planet) error
	FindByID(ctx context.Context, id uint) (*models.Planet, error)
	List(ctx context.Context) ([]models.Planet, error)
	Update(ctx context.Context, planet *models.Planet) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// planetRepository PlanetRepositoryの実装
type planetRepository struct {
	db *gorm.DB
}

// NewPlanetRepository PlanetRepositoryを作成
func NewPlanetRepository(db *gorm.DB) PlanetRepository {
	return &planetRepository{db: db}
}

// Create 新しい惑星を作成
func (r *planetRepository) Create(ctx context.Context, planet *models.Planet) error {
	return r.db.WithContext(ctx).Create(planet).Error
}

// FindByID IDで惑星を検索
func (r *planetRepository) FindByID(ctx context.Context, id uint) (*models.Planet, error) {
	var planet models.Planet
	if err := r.db.WithContext(ctx).First(&planet, id).Error; err != nil {
		return nil, err
	}
	return &planet, nil
}

// List 惑星一覧を取得
func (r *planetRepository) List(ctx context.Context) ([]models.Planet, error) {
	planets := []models.Planet{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&planets).Error; err != nil {
		return nil, err
	}
	return planets, nil
}

// Update 惑星の全カラムを保存
func (r *planetRepository) Update(ctx context.Context, planet *models.Planet) error {
	return r.db.WithContext(ctx).Save(planet).Error
}

// Delete 惑星を削除
func (r *planetRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Planet{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count 惑星数を取得
func (r *planetRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Planet{}).Count(&count).Error
	return count, err
}
