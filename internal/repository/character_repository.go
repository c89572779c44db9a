package repository

import (
	"context"

	"github.com/SketchShifter/starwars_backend/internal/models"

	"gorm.io/gorm"
)

// CharacterRepository 登場人物に関するデータベース操作を行うインターフェース
type CharacterRepository interface {
	Create(ctx context.Context, character *models.Character) error
	FindByID(ctx context.Context, id uint) (*models.Character, error)
	List(ctx context.Context) ([]models.Character, error)
	Update(ctx context.Context, character *models.Character) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// characterRepository CharacterRepositoryの実装
type characterRepository struct {
	db *gorm.DB
}

// NewCharacterRepository CharacterRepositoryを作成
func NewCharacterRepository(db *gorm.DB) CharacterRepository {
	return &characterRepository{db: db}
}

// Create 新しい登場人物を作成
func (r *characterRepository) Create(ctx context.Context, character *models.Character) error {
	return r.db.WithContext(ctx).Create(character).Error
}

// FindByID IDで登場人物を検索
func (r *characterRepository) FindByID(ctx context.Context, id uint) (*models.Character, error) {
	var character models.Character
	if err := r.db.WithContext(ctx).First(&character, id).Error; err != nil {
		return nil, err
	}
	return &character, nil
}

// List 登場人物一覧を取得
func (r *characterRepository) List(ctx context.Context) ([]models.Character, error) {
	characters := []models.Character{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&characters).Error; err != nil {
		return nil, err
	}
	return characters, nil
}

// Update 登場人物の全カラムを保存
func (r *characterRepository) Update(ctx context.Context, character *models.Character) error {
	return r.db.WithContext(ctx).Save(character).Error
}

// Delete 登場人物を削除
func (r *characterRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Character{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count 登場人物数を取得
func (r *characterRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Character{}).Count(&count).Error
	return count, err
}
