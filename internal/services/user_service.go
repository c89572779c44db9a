package services

import (
	"context"
	"fmt"

	"github.com/SketchShifter/starwars_backend/internal/models"
	"github.com/SketchShifter/starwars_backend/internal/repository"
	"github.com/SketchShifter/starwars_backend/internal/utils"
)

// UserService ユーザーに関するサービスインターフェース
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	GetFavorites(ctx context.Context, userID uint) ([]models.Favorite, error)
}

// userService UserServiceの実装
type userService struct {
	userRepo     repository.UserRepository
	favoriteRepo repository.FavoriteRepository
}

// NewUserService UserServiceを作成
func NewUserService(userRepo repository.UserRepository, favoriteRepo repository.FavoriteRepository) UserService {
	return &userService{
		userRepo:     userRepo,
		favoriteRepo: favoriteRepo,
	}
}

// List お気に入りを含むユーザー一覧を取得
func (s *userService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetFavorites ユーザーのお気に入り一覧を取得
func (s *userService) GetFavorites(ctx context.Context, userID uint) ([]models.Favorite, error) {
	if userID == 0 {
		return nil, utils.BadRequest(MsgUserIDRequired)
	}

	// ユーザーが存在するか確認
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, lookupError(err, MsgUserNotFound, "get user")
	}

	favorites, err := s.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favorites, nil
}
