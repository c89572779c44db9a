package services

import (
	"context"
	"fmt"

	"github.com/SketchShifter/starwars_backend/internal/models"
	"github.com/SketchShifter/starwars_backend/internal/repository"
	"github.com/SketchShifter/starwars_backend/internal/utils"
)

// FavoriteService お気に入りに関するサービスインターフェース
type FavoriteService interface {
	Add(ctx context.Context, userID uint, resource models.Resource) (*models.Favorite, error)
	Remove(ctx context.Context, userID uint, resource models.Resource) error
}

// favoriteService FavoriteServiceの実装
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	userRepo     repository.UserRepository
}

// NewFavoriteService FavoriteServiceを作成
func NewFavoriteService(favoriteRepo repository.FavoriteRepository, userRepo repository.UserRepository) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		userRepo:     userRepo,
	}
}

// Add お気に入りを追加
//
// 対象の惑星・登場人物が存在するかは確認しない。
func (s *favoriteService) Add(ctx context.Context, userID uint, resource models.Resource) (*models.Favorite, error) {
	if userID == 0 {
		return nil, utils.BadRequest(MsgUserIDRequired)
	}

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, lookupError(err, MsgUserNotFound, "get user")
	}

	favorite := models.NewFavorite(userID, resource)
	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		return nil, fmt.Errorf("create favorite %s: %w", resource, err)
	}
	return favorite, nil
}

// Remove ユーザーの指定対象へのお気に入りを削除
func (s *favoriteService) Remove(ctx context.Context, userID uint, resource models.Resource) error {
	if userID == 0 {
		return utils.BadRequest(MsgUserIDRequired)
	}

	deleted, err := s.favoriteRepo.DeleteByResource(ctx, userID, resource)
	if err != nil {
		return fmt.Errorf("delete favorite %s: %w", resource, err)
	}
	if deleted == 0 {
		return utils.NotFound(MsgFavoriteNotFound)
	}
	return nil
}
