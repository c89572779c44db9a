package repository

import (
	"context"

	"github.com/SketchShifter/starwars_backend/internal/models"

	"gorm.io/gorm"
)

// FavoriteRepository お気に入りに関するデータベース操作を行うインターフェース
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *models.Favorite) error
	ListByUser(ctx context.Context, userID uint) ([]models.Favorite, error)
	DeleteByResource(ctx context.Context, userID uint, resource models.Resource) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// favoriteRepository FavoriteRepositoryの実装
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository FavoriteRepositoryを作成
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Create 新しいお気に入りを作成
func (r *favoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

// ListByUser ユーザーのお気に入り一覧を取得
func (r *favoriteRepository) ListByUser(ctx context.Context, userID uint) ([]models.Favorite, error) {
	favorites := []models.Favorite{}
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

// DeleteByResource ユーザーの指定対象へのお気に入りをすべて削除し、削除件数を返す
func (r *favoriteRepository) DeleteByResource(ctx context.Context, userID uint, resource models.Resource) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND resource_type = ? AND resource_id = ?", userID, resource.Type(), resource.ID()).
		Delete(&models.Favorite{})
	return result.RowsAffected, result.Error
}

// Count お気に入り数を取得
func (r *favoriteRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Favorite{}).Count(&count).Error
	return count, err
}
