package services

import (
	"context"
	"fmt"

	"github.com/SketchShifter/starwars_backend/internal/mock"
	"github.com/SketchShifter/starwars_backend/internal/models"
	"github.com/SketchShifter/starwars_backend/internal/repository"

	"gorm.io/gorm"
)

// TableCounts テーブルごとの行数
type TableCounts struct {
	Users      int64 `json:"users"`
	Planets    int64 `json:"planets"`
	Characters int64 `json:"characters"`
	Films      int64 `json:"films"`
	Starships  int64 `json:"starships"`
	Favorites  int64 `json:"favorites"`
}

// SeedService シードデータ投入に関するサービスインターフェース
type SeedService interface {
	Seed(ctx context.Context, ds mock.Dataset) (TableCounts, error)
	Counts(ctx context.Context) (TableCounts, error)
}

// seedService SeedServiceの実装
type seedService struct {
	db *gorm.DB
}

// NewSeedService SeedServiceを作成
func NewSeedService(db *gorm.DB) SeedService {
	return &seedService{db: db}
}

// Seed データセットを1トランザクションで投入し、投入件数を返す
func (s *seedService) Seed(ctx context.Context, ds mock.Dataset) (TableCounts, error) {
	var inserted TableCounts

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		userRepo := repository.NewUserRepository(tx)
		planetRepo := repository.NewPlanetRepository(tx)
		characterRepo := repository.NewCharacterRepository(tx)
		archiveRepo := repository.NewArchiveRepository(tx)
		favoriteRepo := repository.NewFavoriteRepository(tx)

		usersByEmail := make(map[string]uint, len(ds.Users))
		for i := range ds.Users {
			u := ds.Users[i]
			if err := userRepo.Create(ctx, &u); err != nil {
				return fmt.Errorf("user %q: %w", u.Email, err)
			}
			usersByEmail[u.Email] = u.ID
			inserted.Users++
		}

		planetsByName := make(map[string]uint, len(ds.Planets))
		for i := range ds.Planets {
			p := ds.Planets[i]
			if err := planetRepo.Create(ctx, &p); err != nil {
				return fmt.Errorf("planet %q: %w", p.Name, err)
			}
			planetsByName[p.Name] = p.ID
			inserted.Planets++
		}

		charactersByName := make(map[string]uint, len(ds.Characters))
		for i := range ds.Characters {
			c := ds.Characters[i]
			if err := characterRepo.Create(ctx, &c); err != nil {
				return fmt.Errorf("character %q: %w", c.Name, err)
			}
			charactersByName[c.Name] = c.ID
			inserted.Characters++
		}

		for i := range ds.Films {
			f := ds.Films[i]
			if err := archiveRepo.CreateFilm(ctx, &f); err != nil {
				return fmt.Errorf("film %q: %w", f.Title, err)
			}
			inserted.Films++
		}

		for i := range ds.Starships {
			st := ds.Starships[i]
			if err := archiveRepo.CreateStarship(ctx, &st); err != nil {
				return fmt.Errorf("starship %q: %w", st.Name, err)
			}
			inserted.Starships++
		}

		for _, fs := range ds.Favorites {
			userID, ok := usersByEmail[fs.UserEmail]
			if !ok {
				return fmt.Errorf("favorite: unknown user %q", fs.UserEmail)
			}

			var resource models.Resource
			switch fs.ResourceType {
			case models.ResourceTypePlanet:
				id, ok := planetsByName[fs.ResourceName]
				if !ok {
					return fmt.Errorf("favorite: unknown planet %q", fs.ResourceName)
				}
				resource = models.PlanetResource(id)
			case models.ResourceTypeCharacter:
				id, ok := charactersByName[fs.ResourceName]
				if !ok {
					return fmt.Errorf("favorite: unknown character %q", fs.ResourceName)
				}
				resource = models.CharacterResource(id)
			default:
				return fmt.Errorf("favorite: unknown resource type %q", fs.ResourceType)
			}

			if err := favoriteRepo.Create(ctx, models.NewFavorite(userID, resource)); err != nil {
				return fmt.Errorf("favorite %s: %w", resource, err)
			}
			inserted.Favorites++
		}

		return nil
	})
	if err != nil {
		return TableCounts{}, err
	}
	return inserted, nil
}

// Counts 各テーブルの行数を取得
func (s *seedService) Counts(ctx context.Context) (TableCounts, error) {
	var counts TableCounts
	var err error

	if counts.Users, err = repository.NewUserRepository(s.db).Count(ctx); err != nil {
		return counts, err
	}
	if counts.Planets, err = repository.NewPlanetRepository(s.db).Count(ctx); err != nil {
		return counts, err
	}
	if counts.Characters, err = repository.NewCharacterRepository(s.db).Count(ctx); err != nil {
		return counts, err
	}
	archive := repository.NewArchiveRepository(s.db)
	if counts.Films, err = archive.CountFilms(ctx); err != nil {
		return counts, err
	}
	if counts.Starships, err = archive.CountStarships(ctx); err != nil {
		return counts, err
	}
	if counts.Favorites, err = repository.NewFavoriteRepository(s.db).Count(ctx); err != nil {
		return counts, err
	}
	return counts, nil
}
