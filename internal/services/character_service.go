package services

import (
	"context"
	"fmt"

	"github.com/SketchShifter/starwars_backend/internal/models"
	"github.com/SketchShifter/starwars_backend/internal/repository"
)

// CharacterService 登場人物に関するサービスインターフェース
type CharacterService interface {
	List(ctx context.Context) ([]models.Character, error)
	GetByID(ctx context.Context, id uint) (*models.Character, error)
	Create(ctx context.Context, patch models.Patch) (*models.Character, error)
	Update(ctx context.Context, id uint, patch models.Patch) (*models.Character, error)
	Delete(ctx context.Context, id uint) error
}

// characterService CharacterServiceの実装
type characterService struct {
	characterRepo repository.CharacterRepository
}

// NewCharacterService CharacterServiceを作成
func NewCharacterService(characterRepo repository.CharacterRepository) CharacterService {
	return &characterService{
		characterRepo: characterRepo,
	}
}

// List 登場人物一覧を取得
func (s *characterService) List(ctx context.Context) ([]models.Character, error) {
	characters, err := s.characterRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	return characters, nil
}

// GetByID IDで登場人物を取得
func (s *characterService) GetByID(ctx context.Context, id uint) (*models.Character, error) {
	character, err := s.characterRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, MsgCharacterNotFound, "get character")
	}
	return character, nil
}

// Create 新しい登場人物を作成
func (s *characterService) Create(ctx context.Context, patch models.Patch) (*models.Character, error) {
	character, err := models.CharacterFields.New(patch)
	if err != nil {
		return nil, fieldError(err)
	}

	if err := s.characterRepo.Create(ctx, character); err != nil {
		return nil, fmt.Errorf("create character: %w", err)
	}
	return character, nil
}

// Update ボディに含まれるフィールドだけを上書き
func (s *characterService) Update(ctx context.Context, id uint, patch models.Patch) (*models.Character, error) {
	character, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := models.CharacterFields.Apply(character, patch); err != nil {
		return nil, fieldError(err)
	}

	if err := s.characterRepo.Update(ctx, character); err != nil {
		return nil, fmt.Errorf("update character: %w", err)
	}
	return character, nil
}

// Delete 登場人物を削除
func (s *characterService) Delete(ctx context.Context, id uint) error {
	if err := s.characterRepo.Delete(ctx, id); err != nil {
		return lookupError(err, MsgCharacterNotFound, "delete character")
	}
	return nil
}
