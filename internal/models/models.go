package models

import (
	"gorm.io/gorm"
)

// User ユーザーモデル
type User struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"size:80;not null"`
	Email string `json:"email" gorm:"size:120;uniqueIndex;not null"`

	// リレーション
	Favorites []Favorite `json:"favorites" gorm:"constraint:OnDelete:CASCADE"`
}

// TableName テーブル名指定
func (User) TableName() string {
	return "user"
}

// AfterFind お気に入りが空の場合もJSONでは[]にする
func (u *User) AfterFind(tx *gorm.DB) error {
	if u.Favorites == nil {
		u.Favorites = []Favorite{}
	}
	return nil
}

// Planet 惑星モデル
type Planet struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	Name       string  `json:"name" gorm:"size:80;not null"`
	Climate    *string `json:"climate" gorm:"size:120"`
	Population *int    `json:"population"`
	Terrain    *string `json:"terrain" gorm:"size:120"`
	Diameter   *string `json:"diameter" gorm:"size:50"` // 数値だが文字列で保持
}

// TableName テーブル名指定
func (Planet) TableName() string {
	return "planet"
}

// Character 登場人物モデル
type Character struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	Name      string  `json:"name" gorm:"size:80;not null"`
	Gender    *string `json:"gender" gorm:"size:20"`
	Height    *int    `json:"height"`
	Mass      *int    `json:"mass"`
	HairColor *string `json:"hair_color" gorm:"size:50"`
	EyeColor  *string `json:"eye_color" gorm:"size:50"`
	BirthYear *string `json:"birth_year" gorm:"size:20"`
}

// TableName テーブル名指定
func (Character) TableName() string {
	return "character"
}

// Film 映画モデル（APIでは公開しない）
type Film struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Title       string  `json:"title" gorm:"size:120;not null"`
	EpisodeID   int     `json:"episode_id" gorm:"not null"`
	Director    *string `json:"director" gorm:"size:80"`
	Producer    *string `json:"producer" gorm:"size:120"`
	ReleaseDate *string `json:"release_date" gorm:"size:20"`
}

// TableName テーブル名指定
func (Film) TableName() string {
	return "film"
}

// Starship 宇宙船モデル（APIでは公開しない）
type Starship struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	Name          string  `json:"name" gorm:"size:80;not null"`
	Model         *string `json:"model" gorm:"size:120"`
	Manufacturer  *string `json:"manufacturer" gorm:"size:120"`
	CostInCredits *string `json:"cost_in_credits" gorm:"size:50"`
	Length        *string `json:"length" gorm:"size:50"`
	Crew          *int    `json:"crew"`
	Passengers    *int    `json:"passengers"`
	CargoCapacity *string `json:"cargo_capacity" gorm:"size:50"`
	StarshipClass *string `json:"starship_class" gorm:"size:120"`
}

// TableName テーブル名指定
func (Starship) TableName() string {
	return "starship"
}

// All マイグレーション対象のモデル（作成順）
func All() []interface{} {
	return []interface{}{
		&User{},
		&Planet{},
		&Character{},
		&Film{},
		&Starship{},
		&Favorite{},
	}
}

// Migrate すべてのテーブルを作成・更新
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}

// DropAll すべてのテーブルを削除（逆順）
func DropAll(db *gorm.DB) error {
	all := All()
	for i := len(all) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(all[i]); err != nil {
			return err
		}
	}
	return nil
}
