package services

import (
	"context"
	"fmt"

	"github.com/SketchShifter/starwars_backend/internal/models"
	"github.com/SketchShifter/starwars_backend/internal/repository"
)

// PlanetService 惑星に関するサービスインターフェース
type PlanetService interface {
	List(ctx context.Context) ([]models.Planet, error)
	GetByID(ctx context.Context, id uint) (*models.Planet, error)
	Create(ctx context.Context, patch models.Patch) (*models.Planet, error)
	Update(ctx context.Context, id uint, patch models.Patch) (*models.Planet, error)
	Delete(ctx context.Context, id uint) error
}

// planetService PlanetServiceの実装
type planetService struct {
	planetRepo repository.PlanetRepository
}

// NewPlanetService PlanetServiceを作成
func NewPlanetService(planetRepo repository.PlanetRepository) PlanetService {
	return &planetService{
		planetRepo: planetRepo,
	}
}

// List 惑星一覧を取得
func (s *planetService) List(ctx context.Context) ([]models.Planet, error) {
	planets, err := s.planetRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list planets: %w", err)
	}
	return planets, nil
}

// GetByID IDで惑星を取得
func (s *planetService) GetByID(ctx context.Context, id uint) (*models.Planet, error) {
	planet, err := s.planetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, MsgPlanetNotFound, "get planet")
	}
	return planet, nil
}

// Create 新しい惑星を作成
func (s *planetService) Create(ctx context.Context, patch models.Patch) (*models.Planet, error) {
	planet, err := models.PlanetFields.New(patch)
	if err != nil {
		return nil, fieldError(err)
	}

	if err := s.planetRepo.Create(ctx, planet); err != nil {
		return nil, fmt.Errorf("create planet: %w", err)
	}
	return planet, nil
}

// Update ボディに含まれるフィールドだけを上書き
func (s *planetService) Update(ctx context.Context, id uint, patch models.Patch) (*models.Planet, error) {
	planet, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := models.PlanetFields.Apply(planet, patch); err != nil {
		return nil, fieldError(err)
	}

	if err := s.planetRepo.Update(ctx, planet); err != nil {
		return nil, fmt.Errorf("update planet: %w", err)
	}
	return planet, nil
}

// Delete 惑星を削除
func (s *planetService) Delete(ctx context.Context, id uint) error {
	if err := s.planetRepo.Delete(ctx, id); err != nil {
		return lookupError(err, MsgPlanetNotFound, "delete planet")
	}
	return nil
}
